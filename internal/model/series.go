package model

import "time"

// SeriesPoint is a single monthly observation of an index.
type SeriesPoint struct {
	Date  time.Time
	Value float64
}

// Series holds monthly observations ordered oldest first, strictly
// increasing by month. Built fresh on every load cycle and never
// mutated after construction.
type Series []SeriesPoint

// Len returns the number of observations.
func (s Series) Len() int { return len(s) }

// Values returns the observation values oldest first.
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Value
	}
	return values
}

// LastDate returns the date of the newest observation, or a zero time
// for an empty series.
func (s Series) LastDate() time.Time {
	if len(s) == 0 {
		return time.Time{}
	}
	return s[len(s)-1].Date
}

// SeriesSet groups the three parsed index series of one load cycle.
type SeriesSet struct {
	HeadlineNSA Series
	HeadlineSA  Series
	CoreSA      Series
}
