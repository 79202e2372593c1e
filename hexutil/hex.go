// Package hexutil converts between raw bytes and their hexadecimal text.
package hexutil

import (
	"encoding/hex"
	"fmt"

	"github.com/spacemeshos/binutil/types"
)

// Encode returns the lowercase hex text of b, two characters per byte.
func Encode(b []byte) []byte {
	out := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(out, b)
	return out
}

// Decode returns the bytes described by the hex text h.
// Upper and lower case digits are accepted. Text of odd length is read
// as if it had a leading '0'.
func Decode(h []byte) ([]byte, error) {
	if len(h)%2 != 0 {
		padded := make([]byte, len(h)+1)
		padded[0] = '0'
		copy(padded[1:], h)
		h = padded
	}
	out := make([]byte, hex.DecodedLen(len(h)))
	if _, err := hex.Decode(out, h); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidHex, err)
	}
	return out, nil
}

// DecodeString is Decode for string input.
func DecodeString(h string) ([]byte, error) {
	return Decode([]byte(h))
}
