package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPersistList(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), "list.xdr")
	items := [][]byte{{1, 2, 3}, {4, 5, 6}}

	require.NoError(t, PersistList(file, 3, items))

	l, err := LoadList(file)
	require.NoError(t, err)
	require.Equal(t, uint32(3), l.Length)
	require.Equal(t, items, l.Items)
}

func TestLoadListRejectsWrongLength(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), "list.xdr")
	require.NoError(t, Persist(file, &List{Length: 2, Items: [][]byte{{1}}}))

	_, err := LoadList(file)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, err := LoadList(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
