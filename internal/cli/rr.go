package cli

import (
	"fmt"

	"github.com/me/schedsim/internal/sim"
	"github.com/me/schedsim/pkg/model"
	"github.com/spf13/cobra"
)

func newRRCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "rr <quantum> <burst>...",
		Short: "Run a Round-Robin schedule with the given quantum",
		Args:  requireArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			quantum := parseInt(args[0])
			bursts := parseInts(args[1:])

			fmt.Fprintf(out, "Using RR(%d).\n\n", quantum)
			printAccepted(out, bursts)

			run, err := sim.Simulate(sim.Request{Algorithm: model.AlgorithmRR, Quantum: quantum, Bursts: bursts})
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
