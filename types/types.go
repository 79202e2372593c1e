package types

import "io"

//go:generate mockgen -package mocks -destination mocks/random_source.go . RandomSource

// RandomSource supplies the bytes random lists are generated from.
type RandomSource interface {
	io.Reader
}
