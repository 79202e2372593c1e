package shared

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/spacemeshos/binutil/types"
)

// maxPrealloc bounds the capacity reserved up front for a result list.
const maxPrealloc = 1 << 16

// DefaultSource reads from the operating system's CSPRNG.
var DefaultSource types.RandomSource = rand.Reader

// RandomList returns count pairwise distinct byte strings of length bytes each,
// read from src. Candidates that repeat an earlier value are discarded, so the
// call never returns if fewer than count distinct values exist (e.g. length 0
// and count > 1).
func RandomList(src types.RandomSource, length, count int) ([][]byte, error) {
	if length < 0 || count < 0 {
		return nil, fmt.Errorf("%w: negative length %d or count %d", types.ErrInvalidArgument, length, count)
	}

	hint := count
	if hint > maxPrealloc {
		hint = maxPrealloc
	}
	seen := make(map[string]struct{}, hint)
	list := make([][]byte, 0, hint)
	for len(list) < count {
		candidate := make([]byte, length)
		if _, err := io.ReadFull(src, candidate); err != nil {
			return nil, fmt.Errorf("reading random bytes: %w", err)
		}
		if _, ok := seen[string(candidate)]; ok {
			continue
		}
		seen[string(candidate)] = struct{}{}
		list = append(list, candidate)
	}
	return list, nil
}
