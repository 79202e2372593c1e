package fixedpoint

import (
	"fmt"

	"github.com/spacemeshos/go-scale"

	"github.com/spacemeshos/binutil/types"
)

// Value is an encoded fixed-point number together with its layout.
// Scale encoding is implemented by hand to validate the layout and
// the byte length on decode.
type Value struct {
	Layout Layout
	Bytes  []byte `scale:"max=8"`
}

// NewValue encodes x with layout l.
func NewValue(l Layout, x float64) (*Value, error) {
	b, err := Encode(l, x)
	if err != nil {
		return nil, err
	}
	return &Value{Layout: l, Bytes: b}, nil
}

// Float decodes the value.
func (v *Value) Float() (float64, error) {
	return Decode(v.Layout, v.Bytes)
}

func (v *Value) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := scale.EncodeCompact8(enc, v.Layout.IntegerBits)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeCompact8(enc, v.Layout.FractionBits)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeBool(enc, v.Layout.Signed)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeByteSliceWithLimit(enc, v.Bytes, MaxBits/8)
		if err != nil {
			return total, fmt.Errorf("EncodeByteSliceWithLimit failed: %w", err)
		}
		total += n
	}
	return total, nil
}

func (v *Value) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		field, n, err := scale.DecodeCompact8(dec)
		if err != nil {
			return total, err
		}
		total += n
		v.Layout.IntegerBits = field
	}
	{
		field, n, err := scale.DecodeCompact8(dec)
		if err != nil {
			return total, err
		}
		total += n
		v.Layout.FractionBits = field
	}
	{
		field, n, err := scale.DecodeBool(dec)
		if err != nil {
			return total, err
		}
		total += n
		v.Layout.Signed = field
	}
	if err := v.Layout.Validate(); err != nil {
		return total, err
	}
	{
		field, n, err := scale.DecodeByteSliceWithLimit(dec, MaxBits/8)
		if err != nil {
			return total, fmt.Errorf("DecodeByteSliceWithLimit failed: %w", err)
		}
		total += n
		v.Bytes = field
	}
	if len(v.Bytes) != v.Layout.Size() {
		return total, fmt.Errorf("%w: layout %s needs %d bytes, got %d",
			types.ErrInvalidArgument, v.Layout, v.Layout.Size(), len(v.Bytes))
	}
	return total, nil
}
