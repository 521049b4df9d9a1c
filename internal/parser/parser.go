// Package parser converts raw BLS timeseries payloads into sorted series.
package parser

import (
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"InflationPulse/internal/model"
)

// blsResponse mirrors the relevant portion of the BLS v2 timeseries payload.
type blsResponse struct {
	Status  string `json:"status"`
	Results struct {
		Series []struct {
			SeriesID string `json:"seriesID"`
			Data     []struct {
				Year   string `json:"year"`
				Period string `json:"period"`
				Value  string `json:"value"`
			} `json:"data"`
		} `json:"series"`
	} `json:"Results"`
}

// ParseSeries extracts the first series from a raw payload and returns its
// observations sorted ascending by month. Any shape mismatch (missing series
// array, unparsable year, period, or value) yields an empty series rather
// than an error, so one malformed payload cannot abort a whole load cycle.
// Callers must treat an empty series as "no data", not as zero.
//
// Annual-average observations (period M13) are dropped; only M01..M12 become
// points. Duplicate months surviving the sort are dropped, first occurrence
// wins.
func ParseSeries(raw []byte) model.Series {
	var resp blsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return model.Series{}
	}
	if len(resp.Results.Series) == 0 {
		return model.Series{}
	}

	data := resp.Results.Series[0].Data
	points := make(model.Series, 0, len(data))
	for _, d := range data {
		month, ok := parseMonth(d.Period)
		if !ok {
			return model.Series{}
		}
		if month == 13 {
			continue // annual average
		}
		year, err := strconv.Atoi(d.Year)
		if err != nil {
			return model.Series{}
		}
		value, err := strconv.ParseFloat(d.Value, 64)
		if err != nil {
			return model.Series{}
		}
		points = append(points, model.SeriesPoint{
			Date:  time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
			Value: value,
		})
	}

	// BLS returns observations newest first. Stable sort so the first
	// occurrence in payload order wins when months collide.
	sort.SliceStable(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return dedupe(points)
}

// parseMonth decodes a period code "Mnn". M13 is valid input but filtered by
// the caller; anything else non-monthly is a shape mismatch.
func parseMonth(period string) (int, bool) {
	if len(period) != 3 || period[0] != 'M' {
		return 0, false
	}
	n, err := strconv.Atoi(period[1:])
	if err != nil || n < 1 || n > 13 {
		return 0, false
	}
	return n, true
}

func dedupe(points model.Series) model.Series {
	out := make(model.Series, 0, len(points))
	for _, p := range points {
		if len(out) > 0 && out[len(out)-1].Date.Equal(p.Date) {
			continue
		}
		out = append(out, p)
	}
	return out
}
