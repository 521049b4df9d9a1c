package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// MockFetcher returns canned or generated payloads for development and
// testing.
type MockFetcher struct {
	Payloads map[string][]byte
	Errs     map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) Fetch(_ context.Context, seriesID string, startYear int) ([]byte, error) {
	if err, ok := m.Errs[seriesID]; ok {
		return nil, err
	}
	if p, ok := m.Payloads[seriesID]; ok {
		return p, nil
	}
	return GenerateMockPayload(seriesID, startYear), nil
}

// GenerateMockPayload builds a BLS-shaped payload with a gently drifting
// index from January of startYear through the current month. Observations
// are emitted newest first, mirroring the real API.
func GenerateMockPayload(seriesID string, startYear int) []byte {
	type observation struct {
		Year   string `json:"year"`
		Period string `json:"period"`
		Value  string `json:"value"`
	}

	now := time.Now()
	months := (now.Year()-startYear)*12 + int(now.Month())
	var data []observation
	for i := months - 1; i >= 0; i-- {
		y := startYear + i/12
		m := i%12 + 1
		data = append(data, observation{
			Year:   strconv.Itoa(y),
			Period: fmt.Sprintf("M%02d", m),
			Value:  strconv.FormatFloat(300*(1+0.002*float64(i)), 'f', 3, 64),
		})
	}

	payload := map[string]any{
		"status": "REQUEST_SUCCEEDED",
		"Results": map[string]any{
			"series": []map[string]any{
				{"seriesID": seriesID, "data": data},
			},
		},
	}
	b, _ := json.Marshal(payload)
	return b
}
