// Package cli implements the schedsim command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/me/schedsim/internal/logging"
	"github.com/me/schedsim/internal/store"
	"github.com/spf13/cobra"
)

// ErrUsage signals a bad invocation. The error message has already been
// printed to stdout; main only needs to exit non-zero.
var ErrUsage = errors.New("missing arguments")

var (
	flagDB        string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
)

// defaultDBPath returns the default history database location,
// checking the SCHEDSIM_DB env var first.
func defaultDBPath() string {
	if p := os.Getenv("SCHEDSIM_DB"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "schedsim.db"
	}
	return filepath.Join(home, ".schedsim", "schedsim.db")
}

// NewRootCmd creates the root cobra command for the schedsim CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "schedsim",
		Short: "schedsim — CPU scheduling simulator",
		Long:  "schedsim simulates FCFS and Round-Robin scheduling over a fixed set of CPU bursts and reports per-process wait times.",
		Args:  cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.New(logging.ParseLevel(flagLogLevel), flagLogFormat)
		},
		// Unknown verbs and bare invocations fall through to here.
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "ERROR: Missing arguments")
			return ErrUsage
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagDB, "db", defaultDBPath(), "History database path (or SCHEDSIM_DB env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newFCFSCmd(),
		newRRCmd(),
		newHistoryCmd(),
		newShowCmd(),
		newServeCmd(),
	)

	return root
}

// requireArgs validates a minimum argument count, printing the fixed
// error message to stdout on failure.
func requireArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			fmt.Fprintln(cmd.OutOrStdout(), "ERROR: Missing arguments")
			return ErrUsage
		}
		return nil
	}
}

// parseInt parses a decimal integer, falling back to 0 on bad input.
func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// parseInts parses a list of decimal integers with the 0 fallback.
func parseInts(args []string) []int {
	out := make([]int, len(args))
	for i, a := range args {
		out[i] = parseInt(a)
	}
	return out
}

// openStore opens the history database at flagDB, creating its parent
// directory and running migrations.
func openStore(ctx context.Context) (*store.SQLiteStore, error) {
	path := flagDB
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}
	st, err := store.NewSQLiteStore(path, logger)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return st, nil
}
