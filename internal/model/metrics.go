package model

// DerivedMetrics holds the headline indicators recomputed from the
// parsed series on every READY transition. Nil means the metric could
// not be computed (insufficient history or zero denominator) and is
// rendered as a neutral placeholder, never as zero.
type DerivedMetrics struct {
	HeadlineYoY  *float64 `json:"headline_yoy"`
	HeadlineMoM  *float64 `json:"headline_mom"`
	CoreYoY      *float64 `json:"core_yoy"`
	CoreMoM      *float64 `json:"core_mom"`
	LastObserved string   `json:"last_observed,omitempty"` // "YYYY-MM"
}

// ChartRow is one month of the unified chart table. The headline NSA
// series is the reference: one row exists per reference point, and the
// auxiliary fields are nil where the auxiliary series has no value at
// that position.
type ChartRow struct {
	Month       string   `json:"month"` // "YYYY-MM"
	HeadlineNSA float64  `json:"headline_nsa"`
	HeadlineSA  *float64 `json:"headline_sa"`
	CoreSA      *float64 `json:"core_sa"`
}
