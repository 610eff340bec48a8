package zoo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/AntonStoeckl/callback-slot-go/callback"
)

var (
	// ErrNoManagers is returned by Run when the zoo has nothing to run.
	ErrNoManagers = errors.New("zoo has no managers")

	// ErrNilLimiter is returned by Run when the zoo was created without a limiter.
	ErrNilLimiter = errors.New("zoo limiter must not be nil")

	// ErrLimiterNeverFires is returned by Run for a finite limiter with a zero burst.
	ErrLimiterNeverFires = errors.New("zoo limiter has a finite rate and zero burst")
)

const (
	logMsgRoundDone       = "feeding round done"
	logMsgAfterRoundError = "after round callback failed"

	logAttrRound = "round"
	logAttrError = "error"
)

// RoundReport is passed to the after round callback.
type RoundReport struct {
	Round     int
	Remaining map[string]int
}

// Zoo runs a set of managers on a shared feeding cadence.
type Zoo struct {
	managers   []Manager
	limiter    *rate.Limiter
	logger     *slog.Logger
	afterRound callback.Handler[RoundReport, struct{}]
}

// NewZoo creates a Zoo. The limiter decides how often a feeding round starts.
func NewZoo(limiter *rate.Limiter, logger *slog.Logger, managers ...Manager) *Zoo {
	return &Zoo{
		managers: managers,
		limiter:  limiter,
		logger:   logger,
	}
}

// AfterRound exposes the slot called once after every feeding round.
// It is empty by default and may be re-registered while Run is active.
func (z *Zoo) AfterRound() *callback.Handler[RoundReport, struct{}] {
	return &z.afterRound
}

// Run opens all zoos, feeds in rounds until ctx is done, then closes all zoos.
//
// Cancellation of ctx is the regular way to stop and yields a nil error.
func (z *Zoo) Run(ctx context.Context) error {
	if len(z.managers) == 0 {
		return ErrNoManagers
	}

	if z.limiter == nil {
		return ErrNilLimiter
	}

	if z.limiter.Limit() != rate.Inf && z.limiter.Burst() < 1 {
		return ErrLimiterNeverFires
	}

	for _, m := range z.managers {
		m.OpenZoo(ctx)
	}

	defer func() {
		closeCtx := context.WithoutCancel(ctx)
		for _, m := range z.managers {
			m.CloseZoo(closeCtx)
		}
	}()

	for round := 1; ; round++ {
		if err := z.limiter.Wait(ctx); err != nil {
			if stopped(ctx) {
				return nil
			}

			return fmt.Errorf("zoo: waiting for round %d: %w", round, err)
		}

		report := RoundReport{Round: round, Remaining: make(map[string]int, len(z.managers))}
		for _, m := range z.managers {
			m.FeedAll()
			report.Remaining[m.Name()] = m.Stock().Remaining()
		}

		z.logger.DebugContext(ctx, logMsgRoundDone, logAttrRound, round)

		if _, err := z.afterRound.Invoke(ctx, report); err != nil {
			z.logger.WarnContext(ctx, logMsgAfterRoundError, logAttrRound, round, logAttrError, err.Error())
		}
	}
}

// stopped reports whether ctx is done or will be by the time the limiter could grant a token.
func stopped(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}

	_, hasDeadline := ctx.Deadline()

	return hasDeadline
}
