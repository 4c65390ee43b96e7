package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/chainviz/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render, smooth and crop operations over HTTP",
		Long: `Run the HTTP API.

Endpoints:
  GET  /healthz
  POST /v1/render?format=svg&engine=native   body: chain JSON
  POST /v1/smooth                            body: {"signal": [...], "window_len": 11, "window": "hanning"}
  POST /v1/crop                              body: {"arrays": [...], "axis": 0}

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := c.cfg
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			printInfo("Listening on %s", StyleNumber.Render(cfg.Server.Addr))
			return server.New(runner, cfg, c.Logger).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}
