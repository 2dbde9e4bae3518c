package revision

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is returned when the code is not a 32-bit hex number.
	ErrMalformedInput = errors.New("malformed revision code")
	// ErrInvalidMemoryField is returned when a new-style memory index has no
	// entry in the memory table.
	ErrInvalidMemoryField = errors.New("invalid memory field")
	// ErrUnknownLegacyCode is returned when an old-style code is not in the
	// legacy table.
	ErrUnknownLegacyCode = errors.New("unknown legacy revision code")
)

// DecodeError reports which revision code failed and why.
type DecodeError struct {
	Code string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode revision %q: %v", e.Code, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
