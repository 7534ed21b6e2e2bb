package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var storeFlag string
	var formatFlag string

	ctx := newCommandContext(&configFlag, &storeFlag, &formatFlag)

	rootCmd := &cobra.Command{
		Use:           "shelf",
		Short:         "Track a personal book collection and who has what checked out",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, ctx)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&storeFlag, "store", "s", "", "Catalog file path (overrides store.path)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "Catalog format: json, yaml, or sqlite (overrides store.format)")

	rootCmd.AddCommand(newMenuCommand(ctx))
	for _, cmd := range newBookCommands(ctx) {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newBackupCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
