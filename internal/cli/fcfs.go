package cli

import (
	"fmt"
	"io"

	"github.com/me/schedsim/internal/sim"
	"github.com/me/schedsim/pkg/model"
	"github.com/spf13/cobra"
)

func newFCFSCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "fcfs <burst>...",
		Short: "Run a First-Come-First-Served schedule",
		Args:  requireArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			bursts := parseInts(args)

			fmt.Fprintf(out, "Using FCFS\n\n")
			printAccepted(out, bursts)

			run, err := sim.Simulate(sim.Request{Algorithm: model.AlgorithmFCFS, Bursts: bursts})
			if err != nil {
				return err
			}
			reportRun(cmd, run)

			if save {
				return saveRun(cmd, run)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Record the run in the history database")
	return cmd
}

// printAccepted prints one line per admitted process, in input order.
func printAccepted(out io.Writer, bursts []int) {
	for i, b := range bursts {
		fmt.Fprintf(out, "Accepted P%d: Burst %d\n", i, b)
	}
}

// reportRun prints the average wait line and logs the run details.
func reportRun(cmd *cobra.Command, run *model.Run) {
	fmt.Fprintf(cmd.OutOrStdout(), "Average wait time: %.2f\n", run.AverageWait)

	logger.Debug("simulation finished",
		"run_id", run.ID,
		"algorithm", run.Algorithm,
		"total_time", run.TotalTime,
		"slices", len(run.Timeline),
	)
	for _, p := range run.Processes {
		logger.Debug("process", "pid", p.PID, "burst", p.Burst, "wait", p.Wait, "turnaround", p.Turnaround)
	}
}

// saveRun records the run in the local history database.
func saveRun(cmd *cobra.Command, run *model.Run) error {
	ctx := cmd.Context()
	st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.CreateRun(ctx, run); err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	logger.Info("run saved", "run_id", run.ID, "db", flagDB)
	return nil
}
