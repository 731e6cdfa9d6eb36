package model

import "time"

// Sample is one spreadsheet row: a timestamp and the value recorded for the
// configured grid-area column at that time.
type Sample struct {
	At    time.Time
	Value float64
}

// Series is an ordered, time-indexed value series for a single grid-area code.
// The three reference profiles (production, consumption, wholesale price) are
// all loaded into this shape. A Series is immutable after loading and safe to
// share across concurrent calculations.
type Series struct {
	// Area is the grid-area code the values belong to (column header in the
	// source spreadsheet).
	Area    string
	Samples []Sample
}

func (s Series) Len() int { return len(s.Samples) }

// Sum returns the sum of all sample values.
func (s Series) Sum() float64 {
	total := 0.0
	for _, smp := range s.Samples {
		total += smp.Value
	}
	return total
}

// Mean returns the arithmetic mean of all sample values, or 0 for an empty series.
func (s Series) Mean() float64 {
	if len(s.Samples) == 0 {
		return 0
	}
	return s.Sum() / float64(len(s.Samples))
}

// Window returns the first and last sample timestamps. Both are zero for an
// empty series.
func (s Series) Window() (start, end time.Time) {
	if len(s.Samples) == 0 {
		return time.Time{}, time.Time{}
	}
	return s.Samples[0].At, s.Samples[len(s.Samples)-1].At
}
