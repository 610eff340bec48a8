package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/callback-slot-go/example/benchmark"
	"github.com/AntonStoeckl/callback-slot-go/example/shared/config"
	"github.com/AntonStoeckl/callback-slot-go/example/zoo"
)

func newBenchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure FeedAll of every manager and print a JSON report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := a.runBench(cmd)
			if err != nil {
				return err
			}

			encoded, err := report.JSON()
			if err != nil {
				return fmt.Errorf("failed to encode report: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))

			return err
		},
	}

	cmd.Flags().Int("iterations", 1_000_000, "FeedAll calls per run")
	cmd.Flags().Int("workers", 4, "goroutines for the parallel runs")
	_ = a.v.BindPFlag(config.KeyBenchIterations, cmd.Flags().Lookup("iterations"))
	_ = a.v.BindPFlag(config.KeyBenchWorkers, cmd.Flags().Lookup("workers"))

	return cmd
}

func (a *app) runBench(cmd *cobra.Command) (*benchmark.Report, error) {
	harness, err := benchmark.NewHarness()
	if err != nil {
		return nil, err
	}

	// The untrained pig keeper would log on every single call.
	quiet := slog.New(slog.DiscardHandler)
	managers := []zoo.Manager{
		zoo.NewTigerKingManager(quiet),
		zoo.NewPhoenixManager(quiet),
		zoo.NewHogleManager(quiet),
	}

	ctx := cmd.Context()
	iterations := a.cfg.Bench.Iterations
	report := benchmark.NewReport(benchmark.SystemClock{})

	for _, m := range managers {
		result, err := harness.Run(ctx, m.Name(), m, iterations)
		if err != nil {
			return nil, err
		}

		report.Add(result)
		a.logger.InfoContext(ctx, "benchmark finished", "name", result.Name, "mode", result.Mode, "per_op", result.PerOp)

		result, err = harness.RunParallel(ctx, m.Name(), m, iterations, a.cfg.Bench.Workers)
		if err != nil {
			return nil, err
		}

		report.Add(result)
		a.logger.InfoContext(ctx, "benchmark finished", "name", result.Name, "mode", result.Mode, "per_op", result.PerOp)
	}

	return report, nil
}
