package pcm

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is matched by every *UnsupportedFormatError.
	ErrUnsupportedFormat = errors.New("pcm: unsupported format")

	// ErrInsufficientInput reports a payload that decodes to zero samples.
	ErrInsufficientInput = errors.New("pcm: insufficient input length")
)

// UnsupportedFormatError names the format parameter that was rejected.
type UnsupportedFormatError struct {
	Param string
	Value int
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("pcm: unsupported %s: %d", e.Param, e.Value)
}

// Is reports whether target is ErrUnsupportedFormat.
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}
