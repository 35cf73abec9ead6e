package cli

import (
	"fmt"

	"github.com/me/schedsim/pkg/model"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var (
		limit     int
		offset    int
		algorithm string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved simulation runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			opts := model.ListOptions{
				Limit:     limit,
				Offset:    offset,
				Algorithm: model.Algorithm(algorithm),
			}
			runs, total, err := st.ListRuns(ctx, opts)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}

			out := cmd.OutOrStdout()
			if total == 0 {
				fmt.Fprintln(out, "No saved runs.")
				return nil
			}

			fmt.Fprintf(out, "%-42s %-6s %-8s %6s %6s %10s  %s\n",
				"ID", "ALG", "QUANTUM", "PROCS", "TIME", "AVG WAIT", "CREATED")
			for _, r := range runs {
				quantum := "-"
				if r.Algorithm == model.AlgorithmRR {
					quantum = fmt.Sprintf("%d", r.Quantum)
				}
				fmt.Fprintf(out, "%-42s %-6s %-8s %6d %6d %10.2f  %s\n",
					r.ID, r.Algorithm, quantum, len(r.Processes), r.TotalTime,
					r.AverageWait, r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
			}
			fmt.Fprintf(out, "\nShowing %d of %d runs\n", len(runs), total)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to list")
	cmd.Flags().IntVar(&offset, "offset", 0, "Runs to skip")
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "Filter by algorithm (fcfs, rr)")
	return cmd
}
