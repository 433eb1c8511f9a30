package domain

import "time"

// RunStatus is the terminal state of one adapter within a run.
type RunStatus string

const (
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

// AdapterResult summarizes one adapter's execution inside a run.
type AdapterResult struct {
	SupermarketCode string
	Status          RunStatus
	Succeeded       int
	Skipped         int
	ErrorMessage    string
	Elapsed         time.Duration
}

// RunSummary aggregates per-adapter results for one orchestrator invocation.
type RunSummary struct {
	StartedAt time.Time
	Elapsed   time.Duration
	Results   []AdapterResult
}

// Failed reports whether at least one adapter ended in RunFailed. Per-item
// skips alone never make a run failed.
func (s *RunSummary) Failed() bool {
	for _, r := range s.Results {
		if r.Status == RunFailed {
			return true
		}
	}
	return false
}

// TotalSucceeded sums persisted items across adapters.
func (s *RunSummary) TotalSucceeded() int {
	var n int
	for _, r := range s.Results {
		n += r.Succeeded
	}
	return n
}
