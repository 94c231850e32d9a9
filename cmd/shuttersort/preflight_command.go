package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"shuttersort/internal/config"
	"shuttersort/internal/preflight"
)

func newPreflightCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "preflight <source-dir>",
		Short: "Check that a sort run could start",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sourceDir, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve source directory: %w", err)
			}

			cfg, _, _, err := config.Load(*configFlag, sourceDir)
			if err != nil {
				return err
			}

			results := preflight.Run(cfg, sourceDir, true)
			out := cmd.OutOrStdout()
			for _, result := range results {
				status := "ok  "
				if !result.Passed {
					status = "FAIL"
				}
				fmt.Fprintf(out, "%s %-16s %s\n", status, result.Name, result.Detail)
			}
			return preflight.FirstFailure(results)
		},
	}
}
