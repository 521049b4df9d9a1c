// Package orchestrator drives load cycles: concurrent fetch of the three
// index series, parsing, and commit of a single observable load state with
// its derived projections.
package orchestrator

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"InflationPulse/internal/calculator"
	"InflationPulse/internal/collector"
	"InflationPulse/internal/model"
	"InflationPulse/internal/parser"
	"InflationPulse/internal/recorder"
)

// SeriesIDs selects which three index variants to retrieve. Opaque tokens
// passed through to the fetcher.
type SeriesIDs struct {
	HeadlineNSA string
	HeadlineSA  string
	CoreSA      string
}

// Orchestrator owns the current LoadState and the projections recomputed on
// every ready commit. All mutation happens at cycle boundaries under mu; the
// epoch comparison in commit is the only defense against a superseded cycle
// overwriting a newer state.
type Orchestrator struct {
	fetcher collector.Fetcher
	ids     SeriesIDs
	rec     recorder.Recorder

	mu        sync.Mutex
	epoch     int64
	startYear int
	cancel    context.CancelFunc
	state     model.LoadState
	metrics   model.DerivedMetrics
	rows      []model.ChartRow
}

// New creates an Orchestrator in the idle state. No cycle runs until Reload
// or SetStartYear is called.
func New(fetcher collector.Fetcher, ids SeriesIDs, startYear int, rec recorder.Recorder) *Orchestrator {
	return &Orchestrator{
		fetcher:   fetcher,
		ids:       ids,
		rec:       rec,
		startYear: startYear,
		state:     model.LoadState{Status: model.StatusIdle, StartYear: startYear},
	}
}

// Reload starts a new load cycle for the current start year. Any in-flight
// cycle is cancelled and its eventual completion discarded.
func (o *Orchestrator) Reload(ctx context.Context) {
	epoch, year, cctx := o.begin(ctx, 0)
	go o.runCycle(cctx, epoch, year)
}

// SetStartYear switches the start year and begins a fresh cycle.
func (o *Orchestrator) SetStartYear(ctx context.Context, year int) {
	epoch, y, cctx := o.begin(ctx, year)
	go o.runCycle(cctx, epoch, y)
}

// Snapshot returns the current LoadState together with its projections.
// Exactly one state is observable at any time.
func (o *Orchestrator) Snapshot() (model.LoadState, model.DerivedMetrics, []model.ChartRow) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state, o.metrics, o.rows
}

// begin opens a new cycle under the lock: bumps the epoch, cancels the
// previous cycle, and publishes the loading state. year == 0 keeps the
// current start year.
func (o *Orchestrator) begin(ctx context.Context, year int) (epoch int64, startYear int, cctx context.Context) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if year != 0 {
		o.startYear = year
	}
	if o.cancel != nil {
		o.cancel()
	}
	o.epoch++
	cctx, o.cancel = context.WithCancel(ctx)
	o.state = model.LoadState{Status: model.StatusLoading, Epoch: o.epoch, StartYear: o.startYear}
	return o.epoch, o.startYear, cctx
}

// runCycle fans out the three fetch-and-parse operations and joins them.
// All-or-nothing: one transport failure voids the cycle. Parse failures do
// not fail the cycle; they surface as empty series.
func (o *Orchestrator) runCycle(ctx context.Context, epoch int64, startYear int) {
	log.Printf("[INFO] load cycle %d starting (start year %d)", epoch, startYear)

	var set model.SeriesSet
	g, gctx := errgroup.WithContext(ctx)
	fetchInto := func(seriesID string, dst *model.Series) func() error {
		return func() error {
			raw, err := o.fetcher.Fetch(gctx, seriesID, startYear)
			if err != nil {
				return fmt.Errorf("series %s: %w", seriesID, err)
			}
			*dst = parser.ParseSeries(raw)
			return nil
		}
	}
	g.Go(fetchInto(o.ids.HeadlineNSA, &set.HeadlineNSA))
	g.Go(fetchInto(o.ids.HeadlineSA, &set.HeadlineSA))
	g.Go(fetchInto(o.ids.CoreSA, &set.CoreSA))

	o.commit(epoch, startYear, &set, g.Wait())
}

// commit publishes the cycle result unless a newer cycle started since.
func (o *Orchestrator) commit(epoch int64, startYear int, set *model.SeriesSet, err error) {
	o.mu.Lock()
	if epoch != o.epoch {
		o.mu.Unlock()
		log.Printf("[INFO] load cycle %d superseded, result discarded", epoch)
		return
	}
	if err != nil {
		o.state = model.LoadState{Status: model.StatusError, Message: err.Error(), Epoch: epoch, StartYear: startYear}
		o.metrics = model.DerivedMetrics{}
		o.rows = nil
	} else {
		o.state = model.LoadState{Status: model.StatusReady, Data: set, Epoch: epoch, StartYear: startYear}
		o.metrics = calculator.Derive(set)
		o.rows = calculator.BuildChartRows(set)
	}
	state, metrics := o.state, o.metrics
	o.mu.Unlock()

	if err != nil {
		log.Printf("[ERROR] load cycle %d failed: %v", epoch, err)
	} else {
		log.Printf("[INFO] load cycle %d ready: %d/%d/%d points",
			epoch, set.HeadlineNSA.Len(), set.HeadlineSA.Len(), set.CoreSA.Len())
	}

	if rerr := o.rec.RecordCycle(&recorder.CycleRecord{
		Epoch:             epoch,
		StartYear:         startYear,
		Status:            string(state.Status),
		Message:           state.Message,
		HeadlineNSAPoints: set.HeadlineNSA.Len(),
		HeadlineSAPoints:  set.HeadlineSA.Len(),
		CoreSAPoints:      set.CoreSA.Len(),
		HeadlineYoY:       metrics.HeadlineYoY,
		HeadlineMoM:       metrics.HeadlineMoM,
		CoreYoY:           metrics.CoreYoY,
		CoreMoM:           metrics.CoreMoM,
		LastObserved:      metrics.LastObserved,
	}); rerr != nil {
		log.Printf("[ERROR] record cycle %d: %v", epoch, rerr)
	}
}
