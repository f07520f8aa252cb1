// Package cli wires the besthair commands: serve (the default), build and
// routes.
package cli

import (
	"fmt"

	"besthair/internal/config"
	"besthair/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "besthair",
	Short:         "BestHair Gold Coast website",
	Long:          "Serves the BestHair Gold Coast marketing site or renders it to static files.",
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runServe,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func newLogger(cfg config.Config, component string) (*zap.Logger, error) {
	logger, err := logging.NewLogger(logging.Config{
		Component:   component,
		Level:       cfg.LogLevel,
		Development: cfg.Development,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return logger, nil
}
