package benchmark

import (
	"sync"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// Report collects the results of one benchmark session.
type Report struct {
	mu        sync.Mutex
	runID     uuid.UUID
	startedAt time.Time
	results   []Result
}

type reportJSON struct {
	RunID     string    `json:"run_id"`
	StartedAt time.Time `json:"started_at"`
	Results   []Result  `json:"results"`
}

// NewReport starts a report with a fresh run id.
func NewReport(clock Clock) *Report {
	return &Report{
		runID:     uuid.New(),
		startedAt: clock.Now().UTC(),
	}
}

// RunID identifies the session.
func (r *Report) RunID() uuid.UUID {
	return r.runID
}

// Add appends result. Safe for concurrent use.
func (r *Report) Add(result Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.results = append(r.results, result)
}

// Results returns a copy of the collected results in insertion order.
func (r *Report) Results() []Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Result(nil), r.results...)
}

// JSON encodes the report.
func (r *Report) JSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(reportJSON{
		RunID:     r.runID.String(),
		StartedAt: r.startedAt,
		Results:   r.Results(),
	}, "", "  ")
}
