package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	platformcmd "github.com/hxlabs/courseware/internal/platform/cmd"
	"github.com/hxlabs/courseware/internal/web"
)

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the lesson catalog over HTTP",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTPAddr = addr
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := platformcmd.SignalContext()
			defer stop()

			options := platformcmd.RunOptions{OTelEndpoint: cfg.OTelEndpoint}
			return platformcmd.RunWithTelemetry(ctx, "courseware-web", logger, options, func(ctx context.Context) error {
				server, err := web.NewServer(web.Config{Addr: cfg.HTTPAddr}, logger)
				if err != nil {
					return err
				}
				logger.Info("starting courseware", zap.String("addr", cfg.HTTPAddr))
				return server.Run(ctx)
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides COURSEWARE_HTTP_ADDR)")
	return cmd
}
