package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hxlabs/courseware/internal/platform/config"
	"github.com/hxlabs/courseware/internal/platform/logging"
)

// appConfig holds everything the commands read from the environment.
// Flags override these values when set.
type appConfig struct {
	HTTPAddr     string `env:"COURSEWARE_HTTP_ADDR" envDefault:":8080"`
	DBPath       string `env:"COURSEWARE_DB_PATH" envDefault:"courseware.db"`
	OTelEndpoint string `env:"COURSEWARE_OTEL_ENDPOINT"`
	Verbose      bool   `env:"COURSEWARE_VERBOSE"`
}

func loadConfig() (appConfig, error) {
	var cfg appConfig
	if err := config.FromEnv(&cfg); err != nil {
		return appConfig{}, err
	}
	return cfg, nil
}

func newLogger(cfg appConfig) (*zap.Logger, error) {
	logger, err := logging.New(cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "courseware",
		Short:         "HTMX courseware lessons and their bug-report archive",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand())
	root.AddCommand(newModulesCommand())
	root.AddCommand(newReportsCommand())
	return root
}
