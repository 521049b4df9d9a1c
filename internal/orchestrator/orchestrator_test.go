package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"InflationPulse/internal/collector"
	"InflationPulse/internal/model"
	"InflationPulse/internal/recorder"
)

var testIDs = SeriesIDs{HeadlineNSA: "NSA", HeadlineSA: "SA", CoreSA: "CORE"}

// seriesPayload builds a BLS-shaped payload with the given values assigned to
// consecutive months starting January of startYear, emitted newest first.
func seriesPayload(startYear int, values []float64) []byte {
	var observations []string
	for i := len(values) - 1; i >= 0; i-- {
		observations = append(observations, fmt.Sprintf(
			`{"year":"%d","period":"M%02d","value":"%s"}`,
			startYear+i/12, i%12+1, strconv.FormatFloat(values[i], 'f', -1, 64)))
	}
	return []byte(`{"status":"REQUEST_SUCCEEDED","Results":{"series":[{"seriesID":"X","data":[` +
		strings.Join(observations, ",") + `]}]}}`)
}

func fourteenMonths() []float64 {
	return []float64{99.5, 100, 100.5, 101, 101.5, 102, 102.4, 102.8, 103.2, 103.6, 104, 104.3, 104.6, 105}
}

func readyFetcher(startYear int) *collector.MockFetcher {
	v := fourteenMonths()
	return &collector.MockFetcher{Payloads: map[string][]byte{
		"NSA":  seriesPayload(startYear, v),
		"SA":   seriesPayload(startYear, v),
		"CORE": seriesPayload(startYear, v),
	}}
}

func TestRunCycle_AllSucceed(t *testing.T) {
	o := New(readyFetcher(2023), testIDs, 2023, recorder.NewNoopRecorder())
	epoch, year, ctx := o.begin(context.Background(), 0)
	o.runCycle(ctx, epoch, year)

	state, metrics, rows := o.Snapshot()
	if state.Status != model.StatusReady {
		t.Fatalf("expected READY, got %s (%s)", state.Status, state.Message)
	}
	if state.Data == nil || state.Data.HeadlineNSA.Len() != 14 {
		t.Fatal("expected 14 parsed points in the ready data")
	}
	if metrics.HeadlineYoY == nil || *metrics.HeadlineYoY != 5.0 {
		t.Errorf("expected headline YoY 5.0, got %v", metrics.HeadlineYoY)
	}
	if metrics.LastObserved != "2024-02" {
		t.Errorf("expected last observed 2024-02, got %q", metrics.LastObserved)
	}
	if len(rows) != 14 {
		t.Errorf("expected 14 chart rows, got %d", len(rows))
	}
}

func TestRunCycle_OneFailureFailsAll(t *testing.T) {
	fetcher := readyFetcher(2023)
	fetcher.Errs = map[string]error{"SA": errors.New("status 500")}

	o := New(fetcher, testIDs, 2023, recorder.NewNoopRecorder())
	epoch, year, ctx := o.begin(context.Background(), 0)
	o.runCycle(ctx, epoch, year)

	state, metrics, rows := o.Snapshot()
	if state.Status != model.StatusError {
		t.Fatalf("expected ERROR when one fetch fails, got %s", state.Status)
	}
	if !strings.Contains(state.Message, "SA") {
		t.Errorf("expected failing series in message, got %q", state.Message)
	}
	if state.Data != nil || metrics.HeadlineYoY != nil || rows != nil {
		t.Error("expected no partial data on a failed cycle")
	}
}

func TestRunCycle_MalformedPayloadFailSoft(t *testing.T) {
	fetcher := readyFetcher(2023)
	fetcher.Payloads["NSA"] = []byte("<html>rate limited</html>")

	o := New(fetcher, testIDs, 2023, recorder.NewNoopRecorder())
	epoch, year, ctx := o.begin(context.Background(), 0)
	o.runCycle(ctx, epoch, year)

	state, metrics, rows := o.Snapshot()
	if state.Status != model.StatusReady {
		t.Fatalf("expected READY despite malformed payload, got %s", state.Status)
	}
	if state.Data.HeadlineNSA.Len() != 0 {
		t.Errorf("expected empty reference series, got %d points", state.Data.HeadlineNSA.Len())
	}
	if metrics.HeadlineYoY != nil {
		t.Error("expected absent headline YoY for empty reference series")
	}
	if len(rows) != 0 {
		t.Errorf("expected no chart rows for empty reference series, got %d", len(rows))
	}
}

func TestRunCycle_StaleCycleDiscarded(t *testing.T) {
	fetcher := readyFetcher(2024)
	o := New(fetcher, testIDs, 2023, recorder.NewNoopRecorder())

	staleEpoch, staleYear, staleCtx := o.begin(context.Background(), 0)
	epoch, year, ctx := o.begin(context.Background(), 2024)
	o.runCycle(ctx, epoch, year)

	// The superseded cycle fails, but must not overwrite the newer state.
	fetcher.Errs = map[string]error{"CORE": errors.New("timeout")}
	o.runCycle(staleCtx, staleEpoch, staleYear)

	state, metrics, _ := o.Snapshot()
	if state.Status != model.StatusReady {
		t.Fatalf("stale cycle overwrote newer state: %s (%s)", state.Status, state.Message)
	}
	if state.Epoch != epoch || state.StartYear != 2024 {
		t.Errorf("expected state from cycle %d (2024), got cycle %d (%d)", epoch, state.Epoch, state.StartYear)
	}
	if metrics.HeadlineYoY == nil {
		t.Error("expected metrics from the newer cycle to survive")
	}
}

func TestBegin_PublishesLoading(t *testing.T) {
	o := New(readyFetcher(2023), testIDs, 2023, recorder.NewNoopRecorder())

	state, _, _ := o.Snapshot()
	if state.Status != model.StatusIdle {
		t.Fatalf("expected IDLE before first cycle, got %s", state.Status)
	}

	epoch, year, _ := o.begin(context.Background(), 2025)
	if year != 2025 {
		t.Errorf("expected start year switched to 2025, got %d", year)
	}
	state, _, _ = o.Snapshot()
	if state.Status != model.StatusLoading || state.Epoch != epoch {
		t.Errorf("expected LOADING at epoch %d, got %s at %d", epoch, state.Status, state.Epoch)
	}
}
