package calculator

import "InflationPulse/internal/model"

// BuildChartRows merges the three series into one row per headline NSA
// observation. Alignment is positional: row i takes index i from each
// auxiliary series, not the matching calendar month. Positional pairing goes
// wrong when one series has a gap the others lack; rows are keyed by the
// reference month only. An auxiliary series shorter than the reference
// leaves the trailing fields nil, never zero.
func BuildChartRows(set *model.SeriesSet) []model.ChartRow {
	rows := make([]model.ChartRow, len(set.HeadlineNSA))
	for i, p := range set.HeadlineNSA {
		rows[i] = model.ChartRow{
			Month:       p.Date.Format("2006-01"),
			HeadlineNSA: p.Value,
			HeadlineSA:  valueAt(set.HeadlineSA, i),
			CoreSA:      valueAt(set.CoreSA, i),
		}
	}
	return rows
}

func valueAt(s model.Series, i int) *float64 {
	if i >= len(s) {
		return nil
	}
	v := s[i].Value
	return &v
}
