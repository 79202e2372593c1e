package shared

import (
	"fmt"
	"math"
	"strconv"
)

// Kind tags the variant held by a Term.
type Kind uint8

const (
	KindBytes Kind = iota
	KindSymbol
	KindInt
	KindFloat
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindBytes:
		return "bytes"
	case KindSymbol:
		return "symbol"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindOther:
		return "other"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Term is a value that can be coerced to bytes.
// Only the field matching kind is meaningful.
type Term struct {
	kind  Kind
	raw   []byte
	name  string
	i     int64
	f     float64
	other any
}

func Bytes(b []byte) Term { return Term{kind: KindBytes, raw: b} }
func Sym(name string) Term { return Term{kind: KindSymbol, name: name} }
func Int(i int64) Term { return Term{kind: KindInt, i: i} }
func Float(f float64) Term { return Term{kind: KindFloat, f: f} }
func Other(v any) Term { return Term{kind: KindOther, other: v} }
func (t Term) Kind() Kind { return t.kind }

// Raw returns the byte sequence held by a KindBytes term.
func (t Term) Raw() ([]byte, bool) {
	return t.raw, t.kind == KindBytes
}

// Symbol returns the name held by a KindSymbol term.
func (t Term) Symbol() (string, bool) {
	return t.name, t.kind == KindSymbol
}

func (t Term) String() string {
	return string(ToBytes(t))
}

// ToBytes returns the byte representation of t.
// Bytes are returned as is, symbols as their UTF-8 name, numbers as decimal
// text and anything else in its default fmt form.
func ToBytes(t Term) []byte {
	switch t.kind {
	case KindBytes:
		return t.raw
	case KindSymbol:
		return []byte(t.name)
	case KindInt:
		return strconv.AppendInt(nil, t.i, 10)
	case KindFloat:
		return appendFloat(nil, t.f)
	default:
		return fmt.Append(nil, t.other)
	}
}

// appendFloat writes the shortest decimal text that reads back as f.
// Finite values always carry a fraction so the text parses as a float.
func appendFloat(dst []byte, f float64) []byte {
	start := len(dst)
	dst = strconv.AppendFloat(dst, f, 'f', -1, 64)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return dst
	}
	for _, c := range dst[start:] {
		if c == '.' {
			return dst
		}
	}
	return append(dst, '.', '0')
}
