package hexutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/binutil/types"
)

func TestEncode(t *testing.T) {
	t.Parallel()
	require.Equal(t, "00ff10ab", string(Encode([]byte{0x00, 0xff, 0x10, 0xab})))
	require.Empty(t, Encode(nil))
}

func TestDecode(t *testing.T) {
	t.Parallel()

	b, err := DecodeString("00FF10ab")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0xff, 0x10, 0xab}, b)

	// odd length is left padded
	b, err = DecodeString("abc")
	require.NoError(t, err)
	require.Equal(t, []byte{0x0a, 0xbc}, b)

	b, err = DecodeString("")
	require.NoError(t, err)
	require.Empty(t, b)
}

func TestDecodeInvalid(t *testing.T) {
	t.Parallel()
	for _, h := range []string{"zz", "0g", "12 4", "x"} {
		_, err := DecodeString(h)
		require.ErrorIs(t, err, types.ErrInvalidHex, h)
	}
}

func TestEncodeLowercasesDecodedInput(t *testing.T) {
	t.Parallel()
	b, err := DecodeString("DEADBEEF")
	require.NoError(t, err)
	require.Equal(t, "deadbeef", string(Encode(b)))
}

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte("hello"))
	f.Add([]byte{0, 1, 2, 0xff})
	f.Fuzz(func(t *testing.T, b []byte) {
		got, err := Decode(Encode(b))
		require.NoError(t, err)
		require.True(t, bytes.Equal(b, got))
	})
}
