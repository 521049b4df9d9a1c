package collector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// BLSFetcher implements Fetcher against the BLS public timeseries API.
type BLSFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewBLSFetcher creates a new fetcher with optional proxy support.
func NewBLSFetcher(baseURL, apiKey, proxyURL string) *BLSFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &BLSFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *BLSFetcher) Name() string { return "bls" }

// Fetch issues one GET per series covering startYear through the current
// year. A non-success status or transport fault fails the whole load cycle;
// payload shape problems are the parser's concern.
func (f *BLSFetcher) Fetch(ctx context.Context, seriesID string, startYear int) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/timeseries/data/%s?startyear=%d&endyear=%d",
		f.BaseURL, url.PathEscape(seriesID), startYear, time.Now().Year())
	if f.APIKey != "" {
		endpoint += "&registrationkey=" + url.QueryEscape(f.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", seriesID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", seriesID, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d, body: %s", seriesID, resp.StatusCode, string(body))
	}
	return body, nil
}
