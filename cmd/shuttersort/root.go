package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "shuttersort",
		Short:         "Organize photos and videos by their metadata",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newSortCommand(&configFlag))
	rootCmd.AddCommand(newConfigCommand(&configFlag))
	rootCmd.AddCommand(newPreflightCommand(&configFlag))

	return rootCmd
}
