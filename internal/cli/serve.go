package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/me/schedsim/internal/config"
	"github.com/me/schedsim/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		addr       string
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the schedsim HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultServerConfig()
			if configFile != "" {
				loaded, err := config.Load(configFile)
				if err != nil {
					return err
				}
				cfg = loaded
				if cfg.DBPath != "" && !cmd.Flags().Changed("db") {
					flagDB = cfg.DBPath
				}
			}

			// Flags override file values.
			if cmd.Flags().Changed("addr") || cfg.Addr == "" {
				cfg.Addr = addr
			}
			cfg.DBPath = flagDB
			cfg.LogLevel = flagLogLevel
			cfg.LogFormat = flagLogFormat

			st, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()
			logger.Info("database ready", "path", cfg.DBPath)

			srv := server.New(cfg, st, logger)
			httpServer := &http.Server{
				Addr:    cfg.Addr,
				Handler: srv.Handler(),
			}

			// Graceful shutdown
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server starting", "addr", cfg.Addr)
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return fmt.Errorf("server failed: %w", err)
			case <-ctx.Done():
			}
			logger.Info("shutting down")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&configFile, "config", "", "Path to YAML server config file")
	return cmd
}
