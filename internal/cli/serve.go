package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/elbow/internal/server"
	"github.com/matzehuels/elbow/pkg/buildinfo"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the routing HTTP API",
		Long: `Serve the routing HTTP API.

Endpoints:
  POST /v1/route   route one connector
  POST /v1/routes  route a batch document
  GET  /healthz    liveness probe

The server shuts down gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.settings()
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Server.Addr
			}

			srv := server.New(server.Config{
				Addr:         addr,
				ReadTimeout:  cfg.Server.ReadTimeout.Duration,
				WriteTimeout: cfg.Server.WriteTimeout.Duration,
				MaxBodyBytes: cfg.Server.MaxBodyBytes,
				Defaults:     routeDefaults(cfg),
				Workers:      cfg.Batch.Workers,
				Version:      buildinfo.Version,
			}, loggerFromContext(cmd.Context()))

			printNextStep(cmd.OutOrStdout(), "Try", "curl -s http://"+displayAddr(addr)+"/healthz")
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

// displayAddr fills in localhost for addresses that omit the host.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
