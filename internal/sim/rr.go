package sim

import "github.com/me/schedsim/pkg/model"

// None is the terminal signal from NextRR: every process has finished.
const None = -1

// NextRR picks the next process to run in Round-Robin order.
//
// prev is the index of the process that ran most recently; pass None on the
// first call. The scan starts at prev+1 and wraps, returning the first
// unfinished index found. If no other process is runnable but prev still is,
// prev keeps the CPU. Returns None exactly when all processes have finished.
func NextRR(prev int, t model.Table) int {
	if len(t) == 0 {
		return None
	}

	if t.AllDone() {
		return None
	}

	// First call or invalid prev: pick the first runnable process.
	if prev < 0 || prev >= len(t) {
		for i := range t {
			if t[i].BurstLeft > 0 {
				return i
			}
		}
		return None
	}

	// Look for the next runnable process after prev, wrapping around.
	i := (prev + 1) % len(t)
	for i != prev {
		if t[i].BurstLeft > 0 {
			return i
		}
		i = (i + 1) % len(t)
	}

	// No other runnable process. If prev is still runnable, stay on it.
	if t[prev].BurstLeft > 0 {
		return prev
	}

	// Safety fallback; unreachable given the AllDone check above.
	for j := range t {
		if t[j].BurstLeft > 0 {
			return j
		}
	}

	return None
}

// RunRR runs a Round-Robin schedule over the table with the given quantum.
//
// Each iteration NextRR selects the next runnable process, which then runs
// for min(quantum, remaining burst) time units. The table is mutated in
// place. A quantum <= 0 is a no-op. Termination is guaranteed: every
// iteration that runs consumes positive burst time, and NextRR returns None
// once all bursts reach zero.
//
// Returns the total elapsed time and the execution timeline.
func RunRR(t model.Table, quantum int) (int, []model.Slice) {
	if len(t) == 0 || quantum <= 0 {
		return 0, nil
	}

	elapsed := 0
	var timeline []model.Slice
	current := None

	for {
		current = NextRR(current, t)
		if current == None {
			break
		}

		remaining := t[current].BurstLeft
		if remaining <= 0 {
			continue
		}

		amount := quantum
		if remaining < quantum {
			amount = remaining
		}
		RunStep(t, current, amount)
		timeline = append(timeline, model.Slice{PID: t[current].PID, Start: elapsed, Duration: amount})
		elapsed += amount
	}

	return elapsed, timeline
}
