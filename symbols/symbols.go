// Package symbols keeps tables of interned names and resolves byte sequences
// against them.
package symbols

import (
	"fmt"
	"sync"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/text/encoding/charmap"

	"github.com/spacemeshos/binutil/shared"
	"github.com/spacemeshos/binutil/types"
)

const (
	// MaxNameLength is the longest symbol name, in characters.
	MaxNameLength = 255
	// DefaultTableLimit bounds the number of symbols in a Table.
	DefaultTableLimit = 1 << 20
)

// Symbol is an interned name.
type Symbol string

// Encoding tells how the bytes of a symbol name are to be read.
type Encoding uint8

const (
	UTF8 Encoding = iota
	Latin1
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf8"
	case Latin1:
		return "latin1"
	default:
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
}

// UnmarshalFlag implements flags.Unmarshaler.
func (e *Encoding) UnmarshalFlag(value string) error {
	switch value {
	case "utf8", "unicode":
		*e = UTF8
	case "latin1":
		*e = Latin1
	default:
		return fmt.Errorf("%w: unknown encoding %q", types.ErrInvalidArgument, value)
	}
	return nil
}

// Lookup finds symbols that were interned before.
type Lookup interface {
	Lookup(name string) (Symbol, bool)
}

// name returns the UTF-8 symbol name that b spells in encoding enc.
func name(b []byte, enc Encoding) (string, bool) {
	switch enc {
	case UTF8:
		if !utf8.Valid(b) {
			return "", false
		}
		return string(b), true
	case Latin1:
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
		if err != nil {
			return "", false
		}
		return string(decoded), true
	default:
		return "", false
	}
}

// Existing returns the symbol spelled by b in encoding enc if l already holds it.
func Existing(l Lookup, b []byte, enc Encoding) (Symbol, bool) {
	n, ok := name(b, enc)
	if !ok || utf8.RuneCountInString(n) > MaxNameLength {
		return "", false
	}
	return l.Lookup(n)
}

// TryExisting returns a symbol term if b spells an existing symbol and a
// bytes term holding b otherwise. A missing symbol is not an error.
func TryExisting(l Lookup, b []byte, enc Encoding) shared.Term {
	if sym, ok := Existing(l, b, enc); ok {
		return shared.Sym(string(sym))
	}
	return shared.Bytes(b)
}

func validate(n string) error {
	if !utf8.ValidString(n) {
		return fmt.Errorf("%w: symbol name is not valid UTF-8", types.ErrInvalidArgument)
	}
	if c := utf8.RuneCountInString(n); c > MaxNameLength {
		return fmt.Errorf("%w: symbol name has %d characters, at most %d allowed", types.ErrInvalidArgument, c, MaxNameLength)
	}
	return nil
}

// Table is a bounded symbol table. Symbols are never evicted; interning a
// new name into a full table fails. It is safe for concurrent use.
type Table struct {
	mu    sync.RWMutex
	limit int
	names map[string]Symbol
}

// NewTable returns an empty table holding at most limit symbols.
func NewTable(limit int) *Table {
	return &Table{
		limit: limit,
		names: make(map[string]Symbol),
	}
}

// Intern returns the symbol for n, adding it if needed.
func (t *Table) Intern(n string) (Symbol, error) {
	if sym, ok := t.Lookup(n); ok {
		return sym, nil
	}
	if err := validate(n); err != nil {
		return "", err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if sym, ok := t.names[n]; ok {
		return sym, nil
	}
	if len(t.names) >= t.limit {
		return "", fmt.Errorf("%w: symbol table is full (%d symbols)", types.ErrInvalidArgument, t.limit)
	}
	sym := Symbol(n)
	t.names[n] = sym
	return sym, nil
}

func (t *Table) Lookup(n string) (Symbol, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	sym, ok := t.names[n]
	return sym, ok
}

func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.names)
}

// LRUTable is a symbol table that forgets the least recently used symbol
// once it holds size symbols. It is safe for concurrent use.
type LRUTable struct {
	cache *lru.Cache
}

func NewLRUTable(size int) (*LRUTable, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidArgument, err)
	}
	return &LRUTable{cache: cache}, nil
}

// Intern returns the symbol for n, adding it if needed.
func (t *LRUTable) Intern(n string) (Symbol, error) {
	if sym, ok := t.Lookup(n); ok {
		return sym, nil
	}
	if err := validate(n); err != nil {
		return "", err
	}
	sym := Symbol(n)
	t.cache.Add(n, sym)
	return sym, nil
}

func (t *LRUTable) Lookup(n string) (Symbol, bool) {
	v, ok := t.cache.Get(n)
	if !ok {
		return "", false
	}
	// SAFETY: type assertion will never panic as we insert only `Symbol` values.
	return v.(Symbol), true
}

func (t *LRUTable) Len() int {
	return t.cache.Len()
}
