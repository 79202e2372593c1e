package shared

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAbbreviate(t *testing.T) {
	t.Parallel()

	require.Equal(t, "hel...", string(Abbreviate([]byte("hello world"), 6)))

	input := []byte("hello world")
	out := Abbreviate(input, 100)
	require.Equal(t, "hello world", string(out))
	require.Same(t, &input[0], &out[0])

	require.Equal(t, "hello world", string(Abbreviate(input, len(input))))

	// the ellipsis is never cut
	require.Equal(t, "...", string(Abbreviate(input, 2)))
	require.Equal(t, "h~", string(AbbreviateWith(input, 2, []byte("~"))))
	require.Equal(t, "hello", string(AbbreviateWith(input, 5, nil)))
}

func TestTr(t *testing.T) {
	t.Parallel()
	require.Equal(t, "1b3def", string(Tr([]byte("abcdef"), []Rule{{'a', '1'}, {'c', '3'}})))

	// first matching rule wins
	require.Equal(t, "1b", string(Tr([]byte("ab"), []Rule{{'a', '1'}, {'a', '2'}})))

	// rules are applied once, not chained
	require.Equal(t, "ba", string(Tr([]byte("ab"), []Rule{{'a', 'b'}, {'b', 'a'}})))

	require.Empty(t, Tr(nil, []Rule{{'a', 'b'}}))
}

func TestTrDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	input := []byte("aaa")
	_ = Tr(input, []Rule{{'a', 'b'}})
	require.Equal(t, "aaa", string(input))
}

func TestFill(t *testing.T) {
	t.Parallel()
	require.Equal(t, "aaaaaaaaaa", string(Fill('a', 10)))
	require.Empty(t, Fill('x', 0))
	require.Empty(t, Fill('x', -1))
	require.Len(t, Fill('x', 1<<16), 1<<16)
	require.Panics(t, func() { Fill('x', math.MaxInt) })
}

func TestJoin(t *testing.T) {
	t.Parallel()
	sep := []byte("-")
	require.Equal(t, "a-b-c", string(Join([][]byte{[]byte("a"), []byte("b"), []byte("c")}, sep)))
	require.Empty(t, Join(nil, sep))
	require.Equal(t, "x", string(Join([][]byte{[]byte("x")}, sep)))
	require.Equal(t, "ab", string(Join([][]byte{[]byte("a"), []byte("b")}, nil)))
	require.Equal(t, "-", string(Join([][]byte{{}, {}}, sep)))
}

func TestFormat(t *testing.T) {
	t.Parallel()
	require.Equal(t, "id=7 name=bob", string(Format([]byte("id=%d name=%s"), 7, "bob")))
	require.Equal(t, "%!d(string=x)", string(Format([]byte("%d"), "x")))
}
