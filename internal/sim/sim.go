// Package sim implements the scheduling simulation engine: the process
// table executor and the FCFS and Round-Robin drivers. All processes are
// present at time 0; the only preemption is Round-Robin quantum expiry.
package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/me/schedsim/pkg/model"
)

// ErrNoProcesses is returned when a simulation is requested with no bursts.
var ErrNoProcesses = errors.New("no processes to schedule")

// Request describes one simulation to run.
type Request struct {
	Algorithm model.Algorithm
	Quantum   int // RR only
	Bursts    []int
}

// Simulate builds a process table from the request, runs the named
// algorithm to completion, and returns the finished run summary.
func Simulate(req Request) (*model.Run, error) {
	t := model.NewTable(req.Bursts)
	if t == nil {
		return nil, ErrNoProcesses
	}

	var (
		total    int
		timeline []model.Slice
	)

	switch req.Algorithm {
	case model.AlgorithmFCFS:
		total, timeline = RunFCFS(t)
	case model.AlgorithmRR:
		total, timeline = RunRR(t, req.Quantum)
	default:
		return nil, fmt.Errorf("unknown algorithm %q", req.Algorithm)
	}

	run := &model.Run{
		ID:          "run_" + uuid.New().String(),
		Algorithm:   req.Algorithm,
		Bursts:      append([]int(nil), req.Bursts...),
		Timeline:    timeline,
		TotalTime:   total,
		AverageWait: t.AverageWait(),
		CreatedAt:   time.Now().UTC(),
	}
	if req.Algorithm == model.AlgorithmRR {
		run.Quantum = req.Quantum
	}

	for i := range t {
		run.Processes = append(run.Processes, model.ProcessResult{
			PID:        t[i].PID,
			Burst:      req.Bursts[i],
			Wait:       t[i].Wait,
			Turnaround: req.Bursts[i] + t[i].Wait,
		})
	}

	return run, nil
}
