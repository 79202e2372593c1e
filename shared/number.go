package shared

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/spacemeshos/binutil/types"
)

// Number is the result of parsing numeric text: an integer or a float.
type Number struct {
	i       *big.Int
	f       float64
	isFloat bool
}

func (n Number) IsInt() bool { return !n.isFloat }

// Int64 returns the integer value if n is an integer that fits in an int64.
func (n Number) Int64() (int64, bool) {
	if n.isFloat || !n.i.IsInt64() {
		return 0, false
	}
	return n.i.Int64(), true
}

// BigInt returns the integer value, or nil for floats.
func (n Number) BigInt() *big.Int {
	if n.isFloat {
		return nil
	}
	return new(big.Int).Set(n.i)
}

// Float64 returns n as a float, rounding large integers to the nearest float.
func (n Number) Float64() float64 {
	if n.isFloat {
		return n.f
	}
	f, _ := new(big.Float).SetInt(n.i).Float64()
	return f
}

func (n Number) String() string {
	if n.isFloat {
		return string(appendFloat(nil, n.f))
	}
	return n.i.String()
}

// ToNumber parses b as an integer, or failing that as a float.
func ToNumber(b []byte) (Number, error) {
	if i, ok := parseInt(b); ok {
		return Number{i: i}, nil
	}
	if f, ok := parseFloat(b); ok {
		return Number{f: f, isFloat: true}, nil
	}
	return Number{}, fmt.Errorf("%w: %q", types.ErrInvalidFormat, b)
}

// ToFloat parses b as a float. Integer text is accepted and widened.
func ToFloat(b []byte) (float64, error) {
	if f, ok := parseFloat(b); ok {
		return f, nil
	}
	if i, ok := parseInt(b); ok {
		return Number{i: i}.Float64(), nil
	}
	return 0, fmt.Errorf("%w: %q", types.ErrInvalidFormat, b)
}

// parseInt accepts an optional sign followed by decimal digits.
func parseInt(b []byte) (*big.Int, bool) {
	if !isInt(b) {
		return nil, false
	}
	s := string(b)
	v, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return big.NewInt(v), true
	}
	if !errors.Is(err, strconv.ErrRange) {
		return nil, false
	}
	return new(big.Int).SetString(s, 10)
}

// parseFloat accepts digits on both sides of a '.' and an optional exponent.
func parseFloat(b []byte) (float64, bool) {
	if !isFloat(b) {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func digits(b []byte) int {
	n := 0
	for n < len(b) && b[n] >= '0' && b[n] <= '9' {
		n++
	}
	return n
}

func sign(b []byte) int {
	if len(b) > 0 && (b[0] == '+' || b[0] == '-') {
		return 1
	}
	return 0
}

func isInt(b []byte) bool {
	s := sign(b)
	n := digits(b[s:])
	return n > 0 && s+n == len(b)
}

func isFloat(b []byte) bool {
	pos := sign(b)
	n := digits(b[pos:])
	if n == 0 {
		return false
	}
	pos += n
	if pos == len(b) || b[pos] != '.' {
		return false
	}
	pos++
	if n = digits(b[pos:]); n == 0 {
		return false
	}
	pos += n
	if pos == len(b) {
		return true
	}
	if b[pos] != 'e' && b[pos] != 'E' {
		return false
	}
	pos++
	pos += sign(b[pos:])
	n = digits(b[pos:])
	return n > 0 && pos+n == len(b)
}
