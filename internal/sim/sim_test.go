package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/me/schedsim/pkg/model"
)

func TestSimulateFCFS(t *testing.T) {
	run, err := Simulate(Request{Algorithm: model.AlgorithmFCFS, Bursts: []int{5, 3, 8}})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	if run.ID == "" {
		t.Error("run has no ID")
	}
	if run.TotalTime != 16 {
		t.Errorf("total time = %d, want 16", run.TotalTime)
	}
	if run.Quantum != 0 {
		t.Errorf("fcfs run stored quantum %d", run.Quantum)
	}
	if math.Abs(run.AverageWait-13.0/3.0) > 1e-9 {
		t.Errorf("average wait = %f, want %f", run.AverageWait, 13.0/3.0)
	}

	want := []model.ProcessResult{
		{PID: 0, Burst: 5, Wait: 0, Turnaround: 5},
		{PID: 1, Burst: 3, Wait: 5, Turnaround: 8},
		{PID: 2, Burst: 8, Wait: 8, Turnaround: 16},
	}
	for i, w := range want {
		if run.Processes[i] != w {
			t.Errorf("process %d = %+v, want %+v", i, run.Processes[i], w)
		}
	}
}

func TestSimulateRR(t *testing.T) {
	run, err := Simulate(Request{Algorithm: model.AlgorithmRR, Quantum: 4, Bursts: []int{5, 3, 8}})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	if run.Quantum != 4 {
		t.Errorf("quantum = %d, want 4", run.Quantum)
	}
	if run.TotalTime != 16 {
		t.Errorf("total time = %d, want 16", run.TotalTime)
	}
	if math.Abs(run.AverageWait-19.0/3.0) > 1e-9 {
		t.Errorf("average wait = %f, want %f", run.AverageWait, 19.0/3.0)
	}
	if len(run.Timeline) != 5 {
		t.Errorf("timeline has %d slices, want 5", len(run.Timeline))
	}
}

func TestSimulateNoProcesses(t *testing.T) {
	for _, bursts := range [][]int{nil, {}} {
		_, err := Simulate(Request{Algorithm: model.AlgorithmFCFS, Bursts: bursts})
		if !errors.Is(err, ErrNoProcesses) {
			t.Errorf("bursts %v: err = %v, want ErrNoProcesses", bursts, err)
		}
	}
}

func TestSimulateUnknownAlgorithm(t *testing.T) {
	_, err := Simulate(Request{Algorithm: "sjf", Bursts: []int{1}})
	if err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
}
