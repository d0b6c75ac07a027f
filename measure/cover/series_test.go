package cover

import (
	"errors"
	"testing"
)

func TestSeriesTiming(t *testing.T) {
	s, err := NewSeries(make([]float64, 61), 1)
	if err != nil {
		t.Fatalf("NewSeries() error = %v", err)
	}
	if s.Rate() != 61 {
		t.Fatalf("rate = %v, want 61", s.Rate())
	}
	if s.TimeIn(0) != 0 {
		t.Fatalf("TimeIn(0) = %v, want 0", s.TimeIn(0))
	}
	if s.TimeOut(60) != 1 {
		t.Fatalf("TimeOut(60) = %v, want 1", s.TimeOut(60))
	}
	for i := 0; i < s.Len(); i++ {
		if s.TimeOut(i) <= s.TimeIn(i) {
			t.Fatalf("value %d: time_out %v <= time_in %v", i, s.TimeOut(i), s.TimeIn(i))
		}
		if i > 0 && s.TimeIn(i) != s.TimeOut(i-1) {
			t.Fatalf("value %d: time_in %v != previous time_out %v", i, s.TimeIn(i), s.TimeOut(i-1))
		}
	}

	s3, _ := NewSeries(make([]float64, 186), 3)
	if s3.Rate() != 62 {
		t.Fatalf("rate = %v, want 62", s3.Rate())
	}
}

func TestNewSeriesErrors(t *testing.T) {
	if _, err := NewSeries(nil, 1); !errors.Is(err, ErrInsufficientInput) {
		t.Fatalf("empty values error = %v, want ErrInsufficientInput", err)
	}
	if _, err := NewSeries([]float64{1}, 0); !errors.Is(err, ErrInsufficientInput) {
		t.Fatalf("zero duration error = %v, want ErrInsufficientInput", err)
	}
}
