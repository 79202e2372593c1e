// Package fixedpoint converts between numbers and big-endian binary fixed-point values.
//
// A value is laid out as IntegerBits bits of integer part followed by FractionBits
// bits of fraction, most significant bit first. Layouts whose width is not a
// multiple of 8 are padded with zero bits at the end of the last byte.
package fixedpoint

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/binutil/types"
)

// MaxBits is the widest supported layout.
const MaxBits = 64

// Layout describes the bit widths of a fixed-point value.
// The integer part is unsigned unless Signed is set, in which case the
// whole word is two's complement.
type Layout struct {
	IntegerBits  uint8
	FractionBits uint8
	Signed       bool
}

// Bits returns the total width of the layout.
func (l Layout) Bits() uint {
	return uint(l.IntegerBits) + uint(l.FractionBits)
}

// Size returns the number of bytes a value of this layout occupies.
func (l Layout) Size() int {
	return int((l.Bits() + 7) / 8)
}

func (l Layout) padding() uint {
	return uint(l.Size())*8 - l.Bits()
}

// Validate reports layouts wider than MaxBits.
func (l Layout) Validate() error {
	if l.Bits() > MaxBits {
		return fmt.Errorf("%w: layout %s is %d bits wide, at most %d supported",
			types.ErrInvalidArgument, l, l.Bits(), MaxBits)
	}
	return nil
}

func (l Layout) String() string {
	sign := "u"
	if l.Signed {
		sign = "s"
	}
	return fmt.Sprintf("%s%d.%d", sign, l.IntegerBits, l.FractionBits)
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (l Layout) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint8("integer_bits", l.IntegerBits)
	enc.AddUint8("fraction_bits", l.FractionBits)
	enc.AddBool("signed", l.Signed)
	return nil
}

func mask(bits uint) uint64 {
	if bits >= 64 {
		return math.MaxUint64
	}
	return 1<<bits - 1
}

// unpack returns the value bits of b without the padding.
func (l Layout) unpack(b []byte) (uint64, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}
	if len(b) != l.Size() {
		return 0, fmt.Errorf("%w: layout %s needs %d bytes, got %d", types.ErrInvalidArgument, l, l.Size(), len(b))
	}

	var raw uint64
	for _, c := range b {
		raw = raw<<8 | uint64(c)
	}
	return raw >> l.padding(), nil
}

// Decode interprets b as a value of layout l.
// b must be exactly l.Size() bytes long. Padding bits are ignored.
func Decode(l Layout, b []byte) (float64, error) {
	raw, err := l.unpack(b)
	if err != nil {
		return 0, err
	}

	bits := l.Bits()
	if l.Signed && bits > 0 {
		shift := 64 - bits
		return math.Ldexp(float64(int64(raw<<shift)>>shift), -int(l.FractionBits)), nil
	}
	return math.Ldexp(float64(raw), -int(l.FractionBits)), nil
}

// Encode packs x into layout l.
// The fraction is truncated toward zero to FractionBits bits of precision.
// Values that do not fit the layout are rejected rather than wrapped.
func Encode(l Layout, x float64) ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, fmt.Errorf("%w: %v is not a finite number", types.ErrInvalidArgument, x)
	}

	bits := l.Bits()
	scaled := math.Trunc(math.Ldexp(x, int(l.FractionBits)))
	var raw uint64
	if l.Signed {
		limit := math.Ldexp(1, int(bits)-1)
		if scaled < -limit || scaled >= limit {
			return nil, fmt.Errorf("%w: %v overflows layout %s", types.ErrInvalidArgument, x, l)
		}
		raw = uint64(int64(scaled)) & mask(bits)
	} else {
		if scaled < 0 || scaled >= math.Ldexp(1, int(bits)) {
			return nil, fmt.Errorf("%w: %v overflows layout %s", types.ErrInvalidArgument, x, l)
		}
		raw = uint64(scaled)
	}

	raw <<= l.padding()
	out := make([]byte, l.Size())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = byte(raw)
		raw >>= 8
	}
	return out, nil
}

// DecodeBits decodes b as an unsigned value with the given integer and fraction widths.
func DecodeBits(integerBits, fractionBits uint8, b []byte) (float64, error) {
	return Decode(Layout{IntegerBits: integerBits, FractionBits: fractionBits}, b)
}

// EncodeBits encodes x as an unsigned value with the given integer and fraction widths.
func EncodeBits(integerBits, fractionBits uint8, x float64) ([]byte, error) {
	return Encode(Layout{IntegerBits: integerBits, FractionBits: fractionBits}, x)
}

// BitString renders b, a value of layout l, as binary digits with a '.'
// between the integer and the fraction bits, e.g. "0001.1000" for 1.5 in u4.4.
// Leading zeros are kept.
func BitString(l Layout, b []byte) (string, error) {
	raw, err := l.unpack(b)
	if err != nil {
		return "", err
	}

	var digits string
	if l.Bits() > 0 {
		digits = strconv.FormatUint(raw, 2)
		digits = strings.Repeat("0", int(l.Bits())-len(digits)) + digits
	}
	return digits[:l.IntegerBits] + "." + digits[l.IntegerBits:], nil
}
