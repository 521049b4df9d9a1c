package calculator

// YearOverYear returns the percentage change between the latest value and the
// value twelve months earlier. Requires at least 13 points; ok is false when
// history is insufficient or the base value is zero. Input is assumed to be
// strictly monthly oldest first; a gap in the underlying data shifts which
// two points are compared.
func YearOverYear(values []float64) (pct float64, ok bool) {
	if len(values) < 13 {
		return 0, false
	}
	return percentChange(values[len(values)-1], values[len(values)-13])
}

// MonthOverMonth returns the percentage change between the latest value and
// the one before it. Requires at least 2 points; ok is false otherwise.
func MonthOverMonth(values []float64) (pct float64, ok bool) {
	if len(values) < 2 {
		return 0, false
	}
	return percentChange(values[len(values)-1], values[len(values)-2])
}

// percentChange guards the zero denominator explicitly: a zero base yields
// absent rather than Inf or NaN.
func percentChange(latest, base float64) (float64, bool) {
	if base == 0 {
		return 0, false
	}
	return (latest - base) / base * 100, true
}
