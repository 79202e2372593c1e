// Package strip removes runs of matching bytes from either end of a byte slice.
//
// A target is matched in one of three modes:
//   - Single: the target is exactly one byte, stripped as a run.
//   - Order: the target is a literal block, stripped only as whole repeated copies.
//   - Random: every byte of the target is a member of a set, any run of members is stripped.
//
// Matching is byte oriented and may split multi-byte characters.
package strip

import (
	"bytes"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/spacemeshos/binutil/types"
)

// Direction selects the end(s) of the input that are stripped.
type Direction uint8

const (
	Both Direction = iota
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Both:
		return "both"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// UnmarshalFlag implements flags.Unmarshaler.
func (d *Direction) UnmarshalFlag(value string) error {
	switch value {
	case "both":
		*d = Both
	case "left", "leading":
		*d = Left
	case "right", "trailing":
		*d = Right
	default:
		return fmt.Errorf("%w: unknown direction %q", types.ErrInvalidArgument, value)
	}
	return nil
}

// Mode selects how the target is matched.
type Mode uint8

const (
	Single Mode = iota
	Order
	Random
)

func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case Order:
		return "order"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// UnmarshalFlag implements flags.Unmarshaler.
func (m *Mode) UnmarshalFlag(value string) error {
	switch value {
	case "single":
		*m = Single
	case "order":
		*m = Order
	case "random":
		*m = Random
	default:
		return fmt.Errorf("%w: unknown mode %q", types.ErrInvalidArgument, value)
	}
	return nil
}

var space = []byte{' '}

// Matcher is a validated target and mode pair.
// It holds no mutable state and can be shared between goroutines.
type Matcher struct {
	mode   Mode
	target []byte
	set    [256]bool
}

// Compile validates target against mode.
func Compile(target []byte, mode Mode) (*Matcher, error) {
	switch mode {
	case Single:
		if len(target) != 1 {
			return nil, fmt.Errorf("%w: single mode needs a 1 byte target, got %d bytes", types.ErrInvalidArgument, len(target))
		}
	case Order, Random:
		if len(target) == 0 {
			return nil, fmt.Errorf("%w: empty %s target", types.ErrInvalidArgument, mode)
		}
	default:
		return nil, fmt.Errorf("%w: unknown mode %d", types.ErrInvalidArgument, uint8(mode))
	}

	m := &Matcher{mode: mode, target: slices.Clone(target)}
	for _, c := range target {
		m.set[c] = true
	}
	return m, nil
}

// prefix returns the number of leading bytes of b matched by m.
func (m *Matcher) prefix(b []byte) int {
	if m.mode == Order {
		n := 0
		for bytes.HasPrefix(b[n:], m.target) {
			n += len(m.target)
		}
		return n
	}
	n := 0
	for n < len(b) && m.set[b[n]] {
		n++
	}
	return n
}

// suffix returns the number of trailing bytes of b matched by m.
func (m *Matcher) suffix(b []byte) int {
	if m.mode == Order {
		end := len(b)
		for bytes.HasSuffix(b[:end], m.target) {
			end -= len(m.target)
		}
		return len(b) - end
	}
	end := len(b)
	for end > 0 && m.set[b[end-1]] {
		end--
	}
	return len(b) - end
}

// Strip returns a copy of input with the matching runs removed from the ends
// selected by dir. For Both the left end is stripped first and the right end is
// matched against what remains.
func (m *Matcher) Strip(input []byte, dir Direction) ([]byte, error) {
	from, to := 0, len(input)
	switch dir {
	case Left:
		from = m.prefix(input)
	case Right:
		to -= m.suffix(input)
	case Both:
		from = m.prefix(input)
		to -= m.suffix(input[from:])
	default:
		return nil, fmt.Errorf("%w: unknown direction %d", types.ErrInvalidArgument, uint8(dir))
	}
	return slices.Clone(input[from:to]), nil
}

// Strip removes target from the ends of input selected by dir.
func Strip(input []byte, dir Direction, target []byte, mode Mode) ([]byte, error) {
	m, err := Compile(target, mode)
	if err != nil {
		return nil, err
	}
	return m.Strip(input, dir)
}

// Bytes strips a single target byte from the ends of input selected by dir.
func Bytes(input []byte, dir Direction, target []byte) ([]byte, error) {
	return Strip(input, dir, target, Single)
}

// Byte strips spaces from the ends of input selected by dir.
func Byte(input []byte, dir Direction) ([]byte, error) {
	return Strip(input, dir, space, Single)
}

// Space strips spaces from both ends of input.
func Space(input []byte) []byte {
	// a space target in single mode with a known direction cannot fail
	out, _ := Strip(input, Both, space, Single)
	return out
}
