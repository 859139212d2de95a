package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vitos/crypto_scenario/internal/infrastructure/logger"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "scenario",
		Short:         "Classify market indicator states into trading scenarios",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.NewLogger(logLevel)
			if err != nil {
				return fmt.Errorf("failed to init logger: %w", err)
			}
			zap.ReplaceGlobals(log)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level")

	root.AddCommand(newResolveCmd(), newListCmd(), newValidateCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
