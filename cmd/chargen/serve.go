package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ersonp/chargen/internal/infrastructure/httpapi"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long:  "Serves POST /v1/generate, GET /v1/listing/{kind}, /healthz and /metrics until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides server.addr)")

	return cmd
}

func runServe(cmd *cobra.Command, addr string) error {
	ctx := cmd.Context()

	return withInternalDeps(ctx, func(d *internalDeps) error {
		serverCfg := d.Config.Server
		if addr != "" {
			serverCfg.Addr = addr
		}

		server := httpapi.NewServer(serverCfg, httpapi.Deps{
			Generate: d.GenerateHandler,
			List:     d.ListHandler,
			Store:    d.repo,
		}, d.Logger)

		d.Logger.Info("starting chargen", zap.String("version", version), zap.String("driver", d.Config.Database.Driver))
		return server.Run(ctx)
	})
}
