package types

import "errors"

var (
	// ErrInvalidArgument is returned for malformed mode, target or width combinations.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidFormat is returned when a byte sequence is not a textual number.
	ErrInvalidFormat = errors.New("invalid number format")
	// ErrInvalidHex is returned when hex input contains a non hex digit.
	ErrInvalidHex = errors.New("invalid hex")
)
