package calculator

import "InflationPulse/internal/model"

// Derive recomputes the headline indicators from a ready series set. YoY uses
// the not-seasonally-adjusted headline series, MoM the seasonally adjusted
// one; both core metrics come from the seasonally adjusted core series.
// Pure projection: called after every ready commit, never cached.
func Derive(set *model.SeriesSet) model.DerivedMetrics {
	var m model.DerivedMetrics
	m.HeadlineYoY = optional(YearOverYear(set.HeadlineNSA.Values()))
	m.HeadlineMoM = optional(MonthOverMonth(set.HeadlineSA.Values()))
	m.CoreYoY = optional(YearOverYear(set.CoreSA.Values()))
	m.CoreMoM = optional(MonthOverMonth(set.CoreSA.Values()))
	if d := set.HeadlineNSA.LastDate(); !d.IsZero() {
		m.LastObserved = d.Format("2006-01")
	}
	return m
}

func optional(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}
