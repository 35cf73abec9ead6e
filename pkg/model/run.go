package model

import "time"

// Algorithm identifies a scheduling discipline.
type Algorithm string

const (
	AlgorithmFCFS Algorithm = "fcfs"
	AlgorithmRR   Algorithm = "rr"
)

// Valid reports whether the algorithm is one schedsim implements.
func (a Algorithm) Valid() bool {
	return a == AlgorithmFCFS || a == AlgorithmRR
}

// Slice is one contiguous stretch of CPU time granted to a process.
type Slice struct {
	PID      int `json:"pid"`
	Start    int `json:"start"`
	Duration int `json:"duration"`
}

// ProcessResult is the per-process summary row of a finished simulation.
type ProcessResult struct {
	PID        int `json:"pid"`
	Burst      int `json:"burst"`
	Wait       int `json:"wait"`
	Turnaround int `json:"turnaround"` // burst + wait for processes present at time 0
}

// Run is one completed simulation, as returned by the engine and persisted
// in the run history.
type Run struct {
	ID          string          `json:"id"`
	Algorithm   Algorithm       `json:"algorithm"`
	Quantum     int             `json:"quantum,omitempty"` // RR only
	Bursts      []int           `json:"bursts"`
	Processes   []ProcessResult `json:"processes"`
	Timeline    []Slice         `json:"timeline"`
	TotalTime   int             `json:"total_time"`
	AverageWait float64         `json:"average_wait"`
	CreatedAt   time.Time       `json:"created_at"`
}
