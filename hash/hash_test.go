package hash

import (
	"encoding/binary"
	"io"
	"testing"

	"github.com/minio/sha256-simd"
	"github.com/stretchr/testify/require"
)

func TestStreamIsDeterministic(t *testing.T) {
	t.Parallel()

	aSeed, bSeed := []byte("a"), []byte("b")

	// same seed -> same bytes
	a1, a2 := make([]byte, 100), make([]byte, 100)
	_, err := io.ReadFull(NewStream(aSeed), a1)
	require.NoError(t, err)
	_, err = io.ReadFull(NewStream(aSeed), a2)
	require.NoError(t, err)
	require.Equal(t, a1, a2)

	// different seed -> different bytes
	b := make([]byte, 100)
	_, err = io.ReadFull(NewStream(bSeed), b)
	require.NoError(t, err)
	require.NotEqual(t, a1, b)
}

func TestStreamBlocks(t *testing.T) {
	t.Parallel()
	seed := []byte("seed")

	expected := make([]byte, 0, 2*sha256.Size)
	for i := uint64(0); i < 2; i++ {
		ib := make([]byte, 8)
		binary.BigEndian.PutUint64(ib, i)
		block := sha256.Sum256(append(append([]byte{}, seed...), ib...))
		expected = append(expected, block[:]...)
	}

	// chunked reads crossing a block boundary see the same bytes as one read
	s := NewStream(seed)
	got := make([]byte, 0, len(expected))
	for _, size := range []int{5, 30, 29} {
		chunk := make([]byte, size)
		n, err := s.Read(chunk)
		require.NoError(t, err)
		require.Equal(t, size, n)
		got = append(got, chunk...)
	}
	require.Equal(t, expected, got)
}

func TestStreamCopiesSeed(t *testing.T) {
	t.Parallel()
	seed := []byte("seed")
	s := NewStream(seed)
	seed[0] = 'x'

	got := make([]byte, sha256.Size)
	_, err := s.Read(got)
	require.NoError(t, err)

	want := sha256.Sum256(append([]byte("seed"), make([]byte, 8)...))
	require.Equal(t, want[:], got)
}

func BenchmarkStream(b *testing.B) {
	s := NewStream([]byte("bench"))
	buf := make([]byte, 1024)
	for i := 0; i < b.N; i++ {
		_, _ = s.Read(buf)
	}
}
