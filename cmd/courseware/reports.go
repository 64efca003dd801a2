package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hxlabs/courseware/internal/bugreport"
	"github.com/hxlabs/courseware/internal/catalog"
)

func newReportsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Validate and archive lesson bug reports",
	}
	cmd.AddCommand(newReportsValidateCommand())
	cmd.AddCommand(newReportsImportCommand())
	cmd.AddCommand(newReportsListCommand())
	return cmd
}

// loadReports decodes and validates every fixture path, reporting all
// failures rather than stopping at the first.
func loadReports(paths []string) ([]bugreport.Report, error) {
	c, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var reports []bugreport.Report
	var errs []error
	for _, path := range paths {
		r, err := bugreport.DecodeFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := r.Validate(c); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		reports = append(reports, r)
	}
	return reports, errors.Join(errs...)
}

func newReportsValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <report.json>...",
		Short: "Check report fixtures against the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := loadReports(args)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d report(s) valid\n", len(reports))
			return nil
		},
	}
}

func newReportsImportCommand() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "import <report.json>...",
		Short: "Validate report fixtures and archive them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if dbPath != "" {
				cfg.DBPath = dbPath
			}

			reports, err := loadReports(args)
			if err != nil {
				return err
			}

			store, err := bugreport.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			for _, r := range reports {
				if err := store.Import(cmd.Context(), r); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d report(s) into %s\n", len(reports), cfg.DBPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "archive path (overrides COURSEWARE_DB_PATH)")
	return cmd
}

func newReportsListCommand() *cobra.Command {
	var dbPath string
	var module string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if dbPath != "" {
				cfg.DBPath = dbPath
			}

			store, err := bugreport.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			reports, err := store.List(cmd.Context(), module)
			if err != nil {
				return err
			}
			for _, r := range reports {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-12s %-20s %-6s %s\n",
					r.ID, r.Module, r.RootCause, r.Severity, r.Symptom)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d report(s)\n", len(reports))
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "archive path (overrides COURSEWARE_DB_PATH)")
	cmd.Flags().StringVar(&module, "module", "", "only reports for this lesson slug")
	return cmd
}
