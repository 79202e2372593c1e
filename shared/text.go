package shared

import (
	"bytes"
	"fmt"
)

// DefaultEllipsis is appended by Abbreviate.
var DefaultEllipsis = []byte("...")

// Abbreviate shortens b to max bytes, marking the cut with DefaultEllipsis.
func Abbreviate(b []byte, max int) []byte {
	return AbbreviateWith(b, max, DefaultEllipsis)
}

// AbbreviateWith returns b unchanged if it is at most max bytes long.
// Otherwise b is cut so that the result, ellipsis included, is max bytes long.
// The ellipsis itself is never cut, so the result exceeds max when the
// ellipsis is longer than max. The cut is byte oriented.
func AbbreviateWith(b []byte, max int, ellipsis []byte) []byte {
	if len(b) <= max {
		return b
	}
	keep := max - len(ellipsis)
	if keep < 0 {
		keep = 0
	}
	out := make([]byte, 0, keep+len(ellipsis))
	out = append(out, b[:keep]...)
	return append(out, ellipsis...)
}

// Rule maps one byte to another in Tr.
type Rule struct {
	From, To byte
}

// Tr substitutes every byte of b that appears as a From in rules.
// When several rules share a From the first one wins.
func Tr(b []byte, rules []Rule) []byte {
	var (
		table [256]byte
		set   [256]bool
	)
	for _, r := range rules {
		if !set[r.From] {
			table[r.From] = r.To
			set[r.From] = true
		}
	}

	out := make([]byte, len(b))
	for i, c := range b {
		if set[c] {
			c = table[c]
		}
		out[i] = c
	}
	return out
}

// Fill returns n copies of c. Non-positive n yields an empty slice. Like
// bytes.Repeat, it panics when n exceeds the largest allocatable slice.
func Fill(c byte, n int) []byte {
	if n <= 0 {
		return []byte{}
	}
	return bytes.Repeat([]byte{c}, n)
}

// Join concatenates list with sep between elements.
func Join(list [][]byte, sep []byte) []byte {
	switch len(list) {
	case 0:
		return []byte{}
	case 1:
		return list[0]
	}
	return bytes.Join(list, sep)
}

// Format renders args into template using fmt verbs.
func Format(template []byte, args ...any) []byte {
	return fmt.Appendf(nil, string(template), args...)
}
