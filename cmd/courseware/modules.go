package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hxlabs/courseware/internal/catalog"
)

func newModulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List the lessons in the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := catalog.Load()
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			for _, lesson := range c.Lessons() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s [%s]\n",
					lesson.Slug, lesson.Title, strings.Join(lesson.Patterns, ", "))
			}
			return nil
		},
	}
}
