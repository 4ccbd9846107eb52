// Package cli wires configuration, storage, the query engine and its front
// ends into the menu-explainer command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"menu-explainer/config"
	"menu-explainer/logging"
)

const name = "menu-explainer"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   name,
		Short: "Browse and search restaurant menus",
		Long: "menu-explainer imports restaurant menus into SQLite or Postgres and serves them " +
			"through a read-only HTTP API and an optional Telegram bot.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flags().Changed("log-level") {
				logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
				return
			}
			logging.SetDefaultStructuredLogger(name, version)
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newBuildCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	return cmd
}

// loadConfig reads the environment and applies LOG_LEVEL from it unless
// --log-level was given.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if !cmd.Flags().Changed("log-level") {
		logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.Log.Level)
	}
	return cfg, nil
}

func Execute() error {
	return newRootCmd().Execute()
}
