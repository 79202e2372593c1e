package util

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
	xdr "github.com/nullstyle/go-xdr/xdr3"
)

// List is the on-disk form of a generated list of byte strings.
type List struct {
	Length uint32
	Items  [][]byte
}

// Persist atomically writes v to filename in XDR form.
func Persist(filename string, v any) error {
	var w bytes.Buffer
	_, err := xdr.Marshal(&w, v)
	if err != nil {
		return fmt.Errorf("serializing: %w", err)
	}

	err = atomic.WriteFile(filename, &w)
	if err != nil {
		return fmt.Errorf("writing to disk: %w", err)
	}

	return nil
}

// Load reads an XDR value written by Persist into v.
func Load(filename string, v any) error {
	data, err := os.ReadFile(filename) //#nosec G304
	if err != nil {
		return fmt.Errorf("loading file: %w", err)
	}

	_, err = xdr.Unmarshal(bytes.NewReader(data), v)
	if err != nil {
		return fmt.Errorf("deserializing: %w", err)
	}

	return nil
}

// PersistList writes items, each length bytes long, to filename.
func PersistList(filename string, length int, items [][]byte) error {
	return Persist(filename, &List{Length: uint32(length), Items: items})
}

// LoadList reads a list written by PersistList.
func LoadList(filename string) (*List, error) {
	var l List
	if err := Load(filename, &l); err != nil {
		return nil, err
	}
	for i, item := range l.Items {
		if len(item) != int(l.Length) {
			return nil, fmt.Errorf("item %d is %d bytes, expected %d", i, len(item), l.Length)
		}
	}
	return &l, nil
}
