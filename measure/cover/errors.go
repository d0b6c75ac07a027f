package cover

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientInput reports a series or duration too short for the
	// requested computation.
	ErrInsufficientInput = errors.New("cover: insufficient input length")

	// ErrDegenerateFrame is matched by every *DegenerateFrameError.
	ErrDegenerateFrame = errors.New("cover: degenerate frame")
)

// DegenerateFrameError reports a frame whose total magnitude is zero while
// [DegenerateError] is in effect.
type DegenerateFrameError struct {
	Frame int
}

func (e *DegenerateFrameError) Error() string {
	return fmt.Sprintf("cover: frame %d has zero total magnitude", e.Frame)
}

// Is reports whether target is ErrDegenerateFrame.
func (e *DegenerateFrameError) Is(target error) bool {
	return target == ErrDegenerateFrame
}
