package shared

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/binutil/types"
)

func TestToNumber(t *testing.T) {
	t.Parallel()

	n, err := ToNumber([]byte("42"))
	require.NoError(t, err)
	require.True(t, n.IsInt())
	i, ok := n.Int64()
	require.True(t, ok)
	require.Equal(t, int64(42), i)

	n, err = ToNumber([]byte("4.2"))
	require.NoError(t, err)
	require.False(t, n.IsInt())
	require.Equal(t, 4.2, n.Float64())
	require.Nil(t, n.BigInt())

	n, err = ToNumber([]byte("-1.5e3"))
	require.NoError(t, err)
	require.Equal(t, -1500.0, n.Float64())

	n, err = ToNumber([]byte("+7"))
	require.NoError(t, err)
	require.Equal(t, "7", n.String())
}

func TestToNumberBigInt(t *testing.T) {
	t.Parallel()
	text := "123456789012345678901234567890"
	n, err := ToNumber([]byte(text))
	require.NoError(t, err)
	require.True(t, n.IsInt())
	_, ok := n.Int64()
	require.False(t, ok)
	require.Equal(t, text, n.BigInt().String())
	require.InDelta(t, 1.2345678901234568e29, n.Float64(), 1e14)
}

func TestToNumberInvalid(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"abc", "", "-", "4.", ".5", "1e3", "1.0e", "1.0e+", " 42", "42 ", "0x10", "1_000", "1.0e999"} {
		_, err := ToNumber([]byte(s))
		require.ErrorIs(t, err, types.ErrInvalidFormat, s)
	}
}

func TestToFloat(t *testing.T) {
	t.Parallel()

	f, err := ToFloat([]byte("4.25"))
	require.NoError(t, err)
	require.Equal(t, 4.25, f)

	f, err = ToFloat([]byte("-3"))
	require.NoError(t, err)
	require.Equal(t, -3.0, f)

	_, err = ToFloat([]byte("three"))
	require.ErrorIs(t, err, types.ErrInvalidFormat)
}
