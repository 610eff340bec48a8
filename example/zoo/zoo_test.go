package zoo_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/AntonStoeckl/callback-slot-go/example/zoo"
)

func newManagers(logger *slog.Logger) (*zoo.TigerKingManager, *zoo.PhoenixManager, *zoo.HogleManager) {
	return zoo.NewTigerKingManager(logger), zoo.NewPhoenixManager(logger), zoo.NewHogleManager(logger)
}

func Test_Zoo_Run_WithoutManagers(t *testing.T) {
	z := zoo.NewZoo(rate.NewLimiter(rate.Inf, 1), slog.New(slog.DiscardHandler))

	err := z.Run(context.Background())

	assert.ErrorIs(t, err, zoo.ErrNoManagers)
}

func Test_Zoo_Run_NilLimiter(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	tigerKing := zoo.NewTigerKingManager(logger)
	z := zoo.NewZoo(nil, logger, tigerKing)

	var err error
	assert.NotPanics(t, func() { err = z.Run(context.Background()) })

	assert.ErrorIs(t, err, zoo.ErrNilLimiter)
	assert.Equal(t, zoo.DefaultFoodStock, tigerKing.Stock().Remaining(), "no zoo is opened")
}

func Test_Zoo_Run_LimiterThatNeverFires(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	z := zoo.NewZoo(rate.NewLimiter(1, 0), logger, zoo.NewTigerKingManager(logger))

	err := z.Run(context.Background())

	assert.ErrorIs(t, err, zoo.ErrLimiterNeverFires)
}

func Test_Zoo_Run_StopsOnCancel(t *testing.T) {
	logger, buf := newBufferLogger()
	tigerKing, phoenix, hogle := newManagers(logger)
	z := zoo.NewZoo(rate.NewLimiter(rate.Inf, 1), logger, tigerKing, phoenix, hogle)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reports []zoo.RoundReport
	z.AfterRound().Register(func(_ context.Context, report zoo.RoundReport) (struct{}, error) {
		reports = append(reports, report)
		if report.Round == 3 {
			cancel()
		}

		return struct{}{}, nil
	})

	err := z.Run(ctx)
	require.NoError(t, err)

	require.Len(t, reports, 3)
	assert.Equal(t, 1, reports[0].Round)
	assert.Equal(t, 100-2, reports[0].Remaining[tigerKing.Name()])
	assert.Equal(t, 100-6, reports[0].Remaining[phoenix.Name()])
	assert.Equal(t, 100-12, reports[0].Remaining[hogle.Name()])

	// opening feeds once, then three rounds
	assert.Equal(t, 100-4, tigerKing.Stock().Remaining())
	assert.Equal(t, 100-12, phoenix.Stock().Remaining())
	assert.Equal(t, 100-24, hogle.Stock().Remaining())

	assert.Contains(t, buf.String(), "opening zoo")
	assert.Contains(t, buf.String(), "closing zoo")
}

func Test_Zoo_Run_AlreadyCanceled(t *testing.T) {
	logger, buf := newBufferLogger()
	tigerKing := zoo.NewTigerKingManager(logger)
	z := zoo.NewZoo(rate.NewLimiter(rate.Inf, 1), logger, tigerKing)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	z.AfterRound().Register(func(context.Context, zoo.RoundReport) (struct{}, error) {
		called = true
		return struct{}{}, nil
	})

	err := z.Run(ctx)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, 100-1, tigerKing.Stock().Remaining())
	assert.Contains(t, buf.String(), "closing zoo")
}

func Test_Zoo_Run_StopsBeforeDeadline(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	z := zoo.NewZoo(rate.NewLimiter(rate.Every(time.Hour), 1), logger, zoo.NewPhoenixManager(logger))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	rounds := 0
	z.AfterRound().Register(func(context.Context, zoo.RoundReport) (struct{}, error) {
		rounds++
		return struct{}{}, nil
	})

	err := z.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, rounds, "the burst token allows exactly one round before the deadline")
}

func Test_Zoo_Run_AfterRoundErrorIsLogged(t *testing.T) {
	logger, buf := newBufferLogger()
	z := zoo.NewZoo(rate.NewLimiter(rate.Inf, 1), logger, zoo.NewTigerKingManager(logger))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	z.AfterRound().Register(func(context.Context, zoo.RoundReport) (struct{}, error) {
		cancel()
		return struct{}{}, errors.New("visitor count unavailable")
	})

	err := z.Run(ctx)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "after round callback failed")
	assert.Contains(t, buf.String(), "visitor count unavailable")
}

func Test_Zoo_AfterRound_EmptyByDefault(t *testing.T) {
	z := zoo.NewZoo(rate.NewLimiter(rate.Inf, 1), slog.New(slog.DiscardHandler))

	assert.False(t, z.AfterRound().IsSet())
}
