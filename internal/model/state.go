package model

// Status indicates where a load cycle stands.
type Status string

const (
	StatusIdle    Status = "IDLE"
	StatusLoading Status = "LOADING"
	StatusReady   Status = "READY"
	StatusError   Status = "ERROR"
)

// LoadState is the single externally observable state of the
// orchestrator. Data is set only when Status is READY; Message only
// when Status is ERROR. Epoch identifies the load cycle that produced
// the state so stale cycles can be detected at commit time.
type LoadState struct {
	Status    Status `json:"status"`
	Message   string `json:"message,omitempty"`
	Epoch     int64  `json:"epoch"`
	StartYear int    `json:"start_year"`

	Data *SeriesSet `json:"-"`
}
