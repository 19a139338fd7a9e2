package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"restoration-financials/internal/config"
	"restoration-financials/internal/fixtures"
	"restoration-financials/internal/generator"
)

// GenerateCmd writes a fresh mock dataset to the output directory.
func GenerateCmd(cfg config.Config, logger *log.Logger, now func() time.Time) *cobra.Command {
	var (
		out       string
		seed      uint64
		customers int
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate mock customers and jobs as JSON fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if customers <= 0 {
				return fmt.Errorf("--customers must be positive, got %d", customers)
			}
			if seed == 0 {
				seed = uint64(now().UnixNano())
			}
			genCfg := generator.DefaultConfig()
			genCfg.CustomerCount = customers

			logger.Printf("generating dataset seed=%d", seed)
			ds := generator.NewSeeded(genCfg, seed, now, logger).Generate()
			if err := fixtures.Write(out, ds); err != nil {
				return fmt.Errorf("write fixtures: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d customers and %d jobs\n", len(ds.Customers), len(ds.Jobs))
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n  %s\n", filepath.Join(out, fixtures.CustomersFile), filepath.Join(out, fixtures.JobsFile))
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", cfg.DataDir, "directory the fixture files are written to")
	cmd.Flags().Uint64Var(&seed, "seed", cfg.GeneratorSeed, "random seed; 0 seeds from the clock")
	cmd.Flags().IntVar(&customers, "customers", generator.DefaultConfig().CustomerCount, "number of customers to generate")
	return cmd
}
