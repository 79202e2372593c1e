package strip

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/binutil/types"
)

func TestStrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		dir    Direction
		target string
		mode   Mode
		want   string
	}{
		{"order both", "ababbabcabcabbab", Both, "ab", Order, "babcabcabb"},
		{"random both", "ababbabcabcabbab", Both, "ab", Random, "cabc"},
		{"order left", "ababbab", Left, "ab", Order, "bab"},
		{"order right", "babab", Right, "ab", Order, "b"},
		{"order keeps out of order bytes", "baba", Both, "ab", Order, "baba"},
		{"order never takes a partial copy", "abcab", Both, "abc", Order, "ab"},
		{"order target longer than input", "ab", Both, "abc", Order, "ab"},
		{"random duplicates collapse", "aabxbaa", Both, "aab", Random, "x"},
		{"single left", "aaa", Left, "a", Single, ""},
		{"single right", "xaa", Right, "a", Single, "x"},
		{"single both", "aaxaa", Both, "a", Single, "x"},
		{"no match", "xyz", Both, "a", Single, "xyz"},
		{"empty input", "", Both, "a", Single, ""},
		{"all matching both", "abab", Both, "ab", Order, ""},
		{"all matching random", "baab", Both, "ab", Random, ""},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, err := Strip([]byte(tc.input), tc.dir, []byte(tc.target), tc.mode)
			require.NoError(t, err)
			require.Equal(t, tc.want, string(out))
		})
	}
}

func TestStripDefaults(t *testing.T) {
	t.Parallel()
	require.Equal(t, "hi", string(Space([]byte("  hi  "))))
	require.Empty(t, Space(nil))

	out, err := Byte([]byte("  hi  "), Left)
	require.NoError(t, err)
	require.Equal(t, "hi  ", string(out))

	out, err = Bytes([]byte("--hi--"), Right, []byte("-"))
	require.NoError(t, err)
	require.Equal(t, "--hi", string(out))
}

func TestStripDoesNotAliasInput(t *testing.T) {
	t.Parallel()
	input := []byte(" hi ")
	out := Space(input)
	out[0] = 'H'
	require.Equal(t, " hi ", string(input))
}

func TestStripInvalidArguments(t *testing.T) {
	t.Parallel()

	_, err := Strip([]byte("ab"), Both, []byte("ab"), Single)
	require.ErrorIs(t, err, types.ErrInvalidArgument)

	_, err = Strip([]byte("ab"), Both, nil, Single)
	require.ErrorIs(t, err, types.ErrInvalidArgument)

	_, err = Strip([]byte("ab"), Both, nil, Order)
	require.ErrorIs(t, err, types.ErrInvalidArgument)

	_, err = Strip([]byte("ab"), Both, []byte{}, Random)
	require.ErrorIs(t, err, types.ErrInvalidArgument)

	_, err = Strip([]byte("ab"), Both, []byte("a"), Mode(42))
	require.ErrorIs(t, err, types.ErrInvalidArgument)

	_, err = Strip([]byte("ab"), Direction(42), []byte("a"), Single)
	require.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestMatcherReuse(t *testing.T) {
	t.Parallel()
	m, err := Compile([]byte("\r\n"), Random)
	require.NoError(t, err)

	for _, line := range []string{"a\r\n", "\nb\r", "c"} {
		out, err := m.Strip([]byte(line), Both)
		require.NoError(t, err)
		require.Len(t, out, 1)
	}
}

func TestUnmarshalFlag(t *testing.T) {
	t.Parallel()

	var d Direction
	require.NoError(t, d.UnmarshalFlag("leading"))
	require.Equal(t, Left, d)
	require.NoError(t, d.UnmarshalFlag("right"))
	require.Equal(t, Right, d)
	require.ErrorIs(t, d.UnmarshalFlag("up"), types.ErrInvalidArgument)

	var m Mode
	require.NoError(t, m.UnmarshalFlag("random"))
	require.Equal(t, Random, m)
	require.Equal(t, "random", m.String())
	require.ErrorIs(t, m.UnmarshalFlag("regex"), types.ErrInvalidArgument)
}

func FuzzStripNeverGrows(f *testing.F) {
	f.Add([]byte("ababbabcabcabbab"), []byte("ab"), uint8(Order), uint8(Both))
	f.Add([]byte("  hi  "), []byte(" "), uint8(Single), uint8(Left))
	f.Fuzz(func(t *testing.T, input, target []byte, mode, dir uint8) {
		out, err := Strip(input, Direction(dir%3), target, Mode(mode%3))
		if err != nil {
			return
		}
		require.LessOrEqual(t, len(out), len(input))
		require.Contains(t, string(input), string(out))
	})
}

func BenchmarkStripOrder(b *testing.B) {
	input := []byte("abababababababababab the middle abababababababab")
	m, err := Compile([]byte("ab"), Order)
	require.NoError(b, err)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Strip(input, Both)
	}
}
