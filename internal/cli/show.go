package cli

import (
	"fmt"

	"github.com/me/schedsim/pkg/model"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <run_id>",
		Short: "Show one saved run, including its execution timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			run, err := st.GetRun(ctx, id)
			if err != nil {
				return fmt.Errorf("get run: %w", err)
			}
			if run == nil {
				return fmt.Errorf("run %s not found", id)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run:        %s\n", run.ID)
			fmt.Fprintf(out, "Algorithm:  %s\n", run.Algorithm)
			if run.Algorithm == model.AlgorithmRR {
				fmt.Fprintf(out, "Quantum:    %d\n", run.Quantum)
			}
			fmt.Fprintf(out, "Created:    %s\n", run.CreatedAt.Local().Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "Total time: %d\n", run.TotalTime)
			fmt.Fprintf(out, "Avg wait:   %.2f\n\n", run.AverageWait)

			fmt.Fprintf(out, "%4s %6s %6s %10s\n", "PID", "BURST", "WAIT", "TURNAROUND")
			for _, p := range run.Processes {
				fmt.Fprintf(out, "%4d %6d %6d %10d\n", p.PID, p.Burst, p.Wait, p.Turnaround)
			}

			if len(run.Timeline) > 0 {
				fmt.Fprintln(out, "\nTimeline:")
				for _, sl := range run.Timeline {
					fmt.Fprintf(out, "  t=%-4d P%d runs %d\n", sl.Start, sl.PID, sl.Duration)
				}
			}
			return nil
		},
	}
}
