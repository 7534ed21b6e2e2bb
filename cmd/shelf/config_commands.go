package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shelf/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:         "config",
		Short:       "Configuration utilities",
		Annotations: map[string]string{"skipConfigLoad": "true"},
	}
	configCmd.AddCommand(newConfigInitCommand(), newConfigValidateCommand(ctx))
	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := config.ExpandPath(strings.TrimSpace(targetPath))
			if resolved == "" && err == nil {
				resolved, err = config.DefaultConfigPath()
			}
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}
			if err := config.WriteSample(resolved, overwrite); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", resolved)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file (default ~/.config/shelf/config.toml)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing configuration file")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the configuration and show the settings shelf will use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, exists, err := config.Load(flagValue(ctx.configFlag))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cfg.ApplyStoreOverrides(flagValue(ctx.storeFlag), flagValue(ctx.formatFlag)); err != nil {
				return fmt.Errorf("store overrides: %w", err)
			}

			source := path
			if !exists {
				source = path + " (not found, using defaults)"
			}
			rows := [][2]string{
				{"Config", source},
				{"Store", fmt.Sprintf("%s (%s)", cfg.Store.Path, cfg.StoreFormat())},
				{"Backups", cfg.Store.BackupDir},
				{"Save on exit", fmt.Sprint(cfg.Session.SaveOnExit)},
				{"Autosave", fmt.Sprint(cfg.Session.Autosave)},
				{"Logs", fmt.Sprintf("%s (%s, %s)", cfg.Logging.Dir, cfg.Logging.Format, cfg.Logging.Level)},
			}
			out := cmd.OutOrStdout()
			for _, row := range rows {
				fmt.Fprintf(out, "%-13s %s\n", row[0]+":", row[1])
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}
