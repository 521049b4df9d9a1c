package collector

import "context"

// Fetcher retrieves the raw payload for one index series. Series IDs are
// opaque tokens passed through to the data source unchanged.
type Fetcher interface {
	Fetch(ctx context.Context, seriesID string, startYear int) ([]byte, error)
	Name() string
}
