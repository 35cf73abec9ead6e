package model

import (
	"fmt"
	"strings"
)

// PCB is the process control block for one simulated process.
type PCB struct {
	PID       int `json:"pid"`        // zero-based input order, immutable
	BurstLeft int `json:"burst_left"` // remaining CPU demand, floored at 0
	Wait      int `json:"wait"`       // time spent ready-but-not-running
}

// Finished reports whether the process has no CPU demand left.
func (p PCB) Finished() bool {
	return p.BurstLeft <= 0
}

// Table is the ordered set of PCBs for one simulation. Indices are stable
// for the table's lifetime and equal each PCB's PID at construction.
type Table []PCB

// NewTable builds a Table from an ordered list of CPU burst times.
// Each PCB starts with PID = index, BurstLeft = bursts[index], Wait = 0.
// Returns nil for an empty or nil input. Negative burst values are kept
// as given; the executor treats them as already finished.
func NewTable(bursts []int) Table {
	if len(bursts) == 0 {
		return nil
	}
	t := make(Table, len(bursts))
	for i, b := range bursts {
		t[i] = PCB{PID: i, BurstLeft: b}
	}
	return t
}

// AllDone reports whether every process has finished.
func (t Table) AllDone() bool {
	for i := range t {
		if t[i].BurstLeft > 0 {
			return false
		}
	}
	return true
}

// Remaining returns the sum of all outstanding burst time.
func (t Table) Remaining() int {
	total := 0
	for i := range t {
		if t[i].BurstLeft > 0 {
			total += t[i].BurstLeft
		}
	}
	return total
}

// TotalWait returns the sum of all accumulated wait times.
func (t Table) TotalWait() int {
	total := 0
	for i := range t {
		total += t[i].Wait
	}
	return total
}

// AverageWait returns the mean wait time across all processes,
// or 0 for an empty table.
func (t Table) AverageWait() float64 {
	if len(t) == 0 {
		return 0
	}
	return float64(t.TotalWait()) / float64(len(t))
}

// String renders one line per PCB, for debug output.
func (t Table) String() string {
	var b strings.Builder
	for i := range t {
		fmt.Fprintf(&b, "P%d: burst_left=%d wait=%d\n", t[i].PID, t[i].BurstLeft, t[i].Wait)
	}
	return b.String()
}
