package recorder

// CycleRecord is the persisted outcome of one completed load cycle. Metric
// pointers are nil when the metric was absent; they land as NULL columns.
type CycleRecord struct {
	Epoch             int64
	StartYear         int
	Status            string // "READY" or "ERROR"
	Message           string
	HeadlineNSAPoints int
	HeadlineSAPoints  int
	CoreSAPoints      int
	HeadlineYoY       *float64
	HeadlineMoM       *float64
	CoreYoY           *float64
	CoreMoM           *float64
	LastObserved      string
}

// Recorder persists load-cycle history for analysis.
type Recorder interface {
	RecordCycle(rec *CycleRecord) error
	Close() error
}
