package ir

import "errors"

var (
	ErrNotAnObject = errors.New("not an object")
	ErrNotAnArray  = errors.New("not an array")
	ErrNotAString  = errors.New("not a string")
	ErrNotANumber  = errors.New("not a number")
	ErrNotABool    = errors.New("not a boolean")

	// ErrNotFinite rejects NaN and infinities at construction time.
	ErrNotFinite = errors.New("number is not finite")

	// ErrRange reports an integer accessor called on a number whose
	// serialized form has a fraction, an exponent, or exceeds the
	// target width.
	ErrRange = errors.New("number out of integer range")

	ErrIndex = errors.New("index out of range")
)
