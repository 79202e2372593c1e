package hash

import (
	"encoding/binary"
	"hash"

	"github.com/minio/sha256-simd"
)

// Stream is a deterministic source of pseudo random bytes.
// Block i of the stream is sha256(seed || i), with i as a big-endian uint64.
//
// ⚠️ A Stream is NOT thread-safe, however different instances are independent.
type Stream struct {
	seed    []byte
	counter uint64
	hasher  hash.Hash
	ib      [8]byte
	block   [sha256.Size]byte
	offset  int
}

// NewStream returns a stream seeded with seed. Streams with equal seeds
// produce equal bytes.
func NewStream(seed []byte) *Stream {
	return &Stream{
		seed:   append([]byte(nil), seed...),
		hasher: sha256.New(),
		offset: sha256.Size,
	}
}

// Read fills p with the next len(p) bytes of the stream. It never fails.
func (s *Stream) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if s.offset == sha256.Size {
			s.next()
		}
		copied := copy(p[n:], s.block[s.offset:])
		n += copied
		s.offset += copied
	}
	return n, nil
}

func (s *Stream) next() {
	binary.BigEndian.PutUint64(s.ib[:], s.counter)
	s.counter++
	s.hasher.Reset()
	s.hasher.Write(s.seed)
	s.hasher.Write(s.ib[:])
	s.hasher.Sum(s.block[:0])
	s.offset = 0
}
