package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/AntonStoeckl/callback-slot-go/callback"
	"github.com/AntonStoeckl/callback-slot-go/callback/observable"
	"github.com/AntonStoeckl/callback-slot-go/example/shared/config"
	"github.com/AntonStoeckl/callback-slot-go/example/zoo"
)

const (
	logMsgClientLost = "handling lost client"
	logMsgRound      = "round finished"

	// foodStockMetric is the gauge of units left per zoo after each round.
	foodStockMetric = "zoo_food_stock"
	labelZoo        = "zoo"
)

func newDemoCmd(a *app) *cobra.Command {
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Open the three zoos and feed until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if duration > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}

			return a.runDemo(ctx)
		},
	}

	cmd.Flags().DurationVar(&duration, "duration", 0, "stop after this long; 0 runs until SIGINT or SIGTERM")
	cmd.Flags().Duration("interval", 500*time.Millisecond, "time between feeding rounds")
	_ = a.v.BindPFlag(config.KeyFeedInterval, cmd.Flags().Lookup("interval"))

	return cmd
}

func (a *app) runDemo(ctx context.Context) error {
	clientLost, err := observable.NewHook(
		callback.NewHandler(func(ctx context.Context, clientID string) (struct{}, error) {
			a.logger.InfoContext(ctx, logMsgClientLost, "client_id", clientID)
			return struct{}{}, nil
		}),
		a.hookOptions("client_lost")...,
	)
	if err != nil {
		return err
	}

	if _, err := clientLost.Invoke(ctx, uuid.NewString()); err != nil {
		return err
	}

	limiter := rate.NewLimiter(rate.Every(a.cfg.FeedInterval), a.cfg.FeedBurst)
	z := zoo.NewZoo(limiter, a.logger,
		zoo.NewTigerKingManager(a.logger),
		zoo.NewPhoenixManager(a.logger),
		zoo.NewHogleManager(a.logger),
	)

	z.AfterRound().Register(a.reportRound)

	return z.Run(ctx)
}

// reportRound logs a finished round and, with metrics enabled, records the food stock per zoo.
func (a *app) reportRound(ctx context.Context, report zoo.RoundReport) (struct{}, error) {
	a.logger.InfoContext(ctx, logMsgRound, "round", report.Round, "remaining", report.Remaining)

	if a.metrics == nil {
		return struct{}{}, nil
	}

	contextual, isContextual := a.metrics.(callback.ContextualMetricsCollector)
	for name, units := range report.Remaining {
		labels := map[string]string{labelZoo: name}
		if isContextual {
			contextual.RecordValueContext(ctx, foodStockMetric, float64(units), labels)
			continue
		}

		a.metrics.RecordValue(foodStockMetric, float64(units), labels)
	}

	return struct{}{}, nil
}
