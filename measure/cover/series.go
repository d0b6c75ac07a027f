package cover

import "fmt"

// Series is a scalar time series derived from a recording whose duration,
// truncated to whole seconds, is DurationSeconds.
type Series struct {
	Values          []float64
	DurationSeconds int
}

// NewSeries validates values and duration.
func NewSeries(values []float64, durationSeconds int) (Series, error) {
	if len(values) == 0 {
		return Series{}, fmt.Errorf("%w: empty series", ErrInsufficientInput)
	}
	if durationSeconds <= 0 {
		return Series{}, fmt.Errorf("%w: duration %d s", ErrInsufficientInput, durationSeconds)
	}
	return Series{Values: values, DurationSeconds: durationSeconds}, nil
}

// Len returns the number of values.
func (s Series) Len() int { return len(s.Values) }

// Rate returns the effective sample rate len/duration in values per second.
func (s Series) Rate() float64 {
	if s.DurationSeconds <= 0 {
		return 0
	}
	return float64(len(s.Values)) / float64(s.DurationSeconds)
}

// TimeIn returns the start time in seconds of value i.
func (s Series) TimeIn(i int) float64 {
	return float64(i) / s.Rate()
}

// TimeOut returns the end time in seconds of value i.
func (s Series) TimeOut(i int) float64 {
	return float64(i+1) / s.Rate()
}
