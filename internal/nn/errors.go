package nn

import "errors"

// Common errors.
var (
	ErrInputSize         = errors.New("input size does not match module fan-in")
	ErrEmptyInput        = errors.New("empty input")
	ErrLengthMismatch    = errors.New("predictions and targets differ in length")
	ErrUnknownActivation = errors.New("unknown activation")
	ErrInvalidSize       = errors.New("layer sizes must be positive")
)
