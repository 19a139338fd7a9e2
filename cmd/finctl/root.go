package main

import (
	"log"
	"time"

	"github.com/spf13/cobra"

	"restoration-financials/internal/config"
)

func newRootCmd(logger *log.Logger) *cobra.Command {
	cfg, cfgErr := config.FromEnv()
	if cfgErr != nil {
		cfg = config.Config{DataDir: "./data"}
	}

	root := &cobra.Command{
		Use:           "finctl",
		Short:         "Generate and report on restoration job financials",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfgErr
		},
	}
	root.AddCommand(GenerateCmd(cfg, logger, time.Now))
	root.AddCommand(ReportCmd(cfg, time.Now))
	return root
}
