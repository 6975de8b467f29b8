package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/njchilds90/polysolve/internal/cli/config"
	"github.com/njchilds90/polysolve/internal/logging"
	"github.com/njchilds90/polysolve/internal/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP tool server",
		Long: `Serve the solver over HTTP until interrupted.

Endpoints:
  POST /tool    execute a tool call {"tool": "...", "params": {...}}
  POST /solve   solve {"equation": "..."}
  GET  /schema  tool schema for agent registration
  GET  /health  liveness check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(server.Config{
				Addr:         cfg.Server.Addr,
				MaxBodyBytes: cfg.Server.MaxBodyBytes,
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
				Logger:       logging.FromContext(cmd.Context()),
			})
			return srv.Serve(ctx)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default \":8080\")")
	return cmd
}
