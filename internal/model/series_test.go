package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeries(t *testing.T) {
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	s := Series{
		Area: "5414492999998",
		Samples: []Sample{
			{At: base, Value: 1.5},
			{At: base.Add(15 * time.Minute), Value: 2.5},
			{At: base.Add(30 * time.Minute), Value: -1.0},
		},
	}

	assert.Equal(t, 3, s.Len())
	assert.InDelta(t, 3.0, s.Sum(), 1e-9)
	assert.InDelta(t, 1.0, s.Mean(), 1e-9)

	start, end := s.Window()
	assert.Equal(t, base, start)
	assert.Equal(t, base.Add(30*time.Minute), end)
}

func TestEmptySeries(t *testing.T) {
	var s Series
	assert.Zero(t, s.Len())
	assert.Zero(t, s.Sum())
	assert.Zero(t, s.Mean())
	start, end := s.Window()
	assert.True(t, start.IsZero())
	assert.True(t, end.IsZero())
}
