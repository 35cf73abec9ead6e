package sim

import "github.com/me/schedsim/pkg/model"

// RunStep runs the process at index current for up to amount time units.
//
// The running process's BurstLeft is reduced by the time actually used
// (never below zero). Every other process that is still unfinished has its
// Wait increased by that same amount. If amount exceeds the remaining burst,
// only the remaining burst is used.
//
// Invalid calls (empty table, index out of range, amount <= 0, process
// already finished) are silent no-ops; the drivers never produce them.
func RunStep(t model.Table, current, amount int) {
	if len(t) == 0 || current < 0 || current >= len(t) || amount <= 0 {
		return
	}

	remaining := t[current].BurstLeft
	if remaining <= 0 {
		return
	}

	used := amount
	if used > remaining {
		used = remaining
	}

	t[current].BurstLeft -= used
	if t[current].BurstLeft < 0 {
		t[current].BurstLeft = 0
	}

	// Everyone else who is still not finished waits for 'used' time units.
	for i := range t {
		if i == current {
			continue
		}
		if t[i].BurstLeft > 0 {
			t[i].Wait += used
		}
	}
}
