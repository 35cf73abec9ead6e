package sim

import "github.com/me/schedsim/pkg/model"

// RunFCFS runs a First-Come-First-Served schedule over the table.
//
// Starting with P0, each process runs to completion before the next one
// starts. Already-finished entries (possible with non-positive input
// bursts) are skipped. The table is mutated in place.
//
// Returns the total elapsed time and the execution timeline.
func RunFCFS(t model.Table) (int, []model.Slice) {
	if len(t) == 0 {
		return 0, nil
	}

	elapsed := 0
	var timeline []model.Slice

	for i := range t {
		if t[i].BurstLeft <= 0 {
			continue
		}

		amount := t[i].BurstLeft
		RunStep(t, i, amount)
		timeline = append(timeline, model.Slice{PID: t[i].PID, Start: elapsed, Duration: amount})
		elapsed += amount
	}

	return elapsed, timeline
}
