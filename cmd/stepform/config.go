package main

import (
	"fmt"

	"github.com/mark3labs/stepform/internal/config"
	"github.com/spf13/cobra"
)

var configFlags struct {
	global bool
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage stepform configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the current effective values",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if configFlags.global {
			if err := config.WriteGlobal(cfg); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", config.GlobalPath())
			return nil
		}

		if err := config.WriteProject(cfg); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", config.ProjectPath())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		fmt.Printf("draft_dir: %s\n", cfg.DraftDir)
		fmt.Printf("log_level: %s\n", cfg.LogLevel)
		fmt.Printf("log_file: %s\n", cfg.LogFile)
		fmt.Printf("disable_backdrop_close: %t\n", cfg.DisableBackdropClose)
		fmt.Printf("cancel_label: %s\n", cfg.CancelLabel)
		fmt.Printf("submit_label: %s\n", cfg.SubmitLabel)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configFlags.global, "global", false, "Write to the global XDG config instead of ./stepform.yml")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
