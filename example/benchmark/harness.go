package benchmark

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// ModeSequential marks a Result produced by Run.
	ModeSequential = "sequential"

	// ModeParallel marks a Result produced by RunParallel.
	ModeParallel = "parallel"
)

// ctx is checked once per this many iterations.
const ctxCheckInterval = 1024

var (
	// ErrInvalidIterations is returned for a zero or negative iteration count.
	ErrInvalidIterations = errors.New("iterations must be positive")

	// ErrInvalidWorkers is returned by RunParallel for a zero or negative worker count.
	ErrInvalidWorkers = errors.New("workers must be positive")

	// ErrNilClock is returned by WithClock for a nil clock.
	ErrNilClock = errors.New("clock must not be nil")
)

// Runner is the unit of work being measured.
type Runner interface {
	FeedAll()
}

// Clock provides the readings a Harness brackets its runs with.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// SystemClock reads the wall clock, including its monotonic component.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Since returns the time elapsed since t.
func (SystemClock) Since(t time.Time) time.Duration { return time.Since(t) }

// Result describes one measured run.
type Result struct {
	Name       string        `json:"name"`
	Mode       string        `json:"mode"`
	Iterations int           `json:"iterations"`
	Workers    int           `json:"workers"`
	Total      time.Duration `json:"total_ns"`
	PerOp      time.Duration `json:"per_op_ns"`
}

// Option configures a Harness.
type Option func(*Harness) error

// WithClock replaces the SystemClock.
func WithClock(clock Clock) Option {
	return func(h *Harness) error {
		if clock == nil {
			return ErrNilClock
		}

		h.clock = clock

		return nil
	}
}

// Harness runs Runners and measures them.
type Harness struct {
	clock Clock
}

// NewHarness creates a Harness using the SystemClock unless configured otherwise.
func NewHarness(opts ...Option) (*Harness, error) {
	h := &Harness{clock: SystemClock{}}

	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// Run calls runner.FeedAll iterations times on the calling goroutine.
func (h *Harness) Run(ctx context.Context, name string, runner Runner, iterations int) (Result, error) {
	if iterations <= 0 {
		return Result{}, ErrInvalidIterations
	}

	start := h.clock.Now()

	if err := feed(ctx, runner, iterations); err != nil {
		return Result{}, fmt.Errorf("benchmark %s: %w", name, err)
	}

	return newResult(name, ModeSequential, iterations, 1, h.clock.Since(start)), nil
}

// RunParallel spreads iterations over workers goroutines and measures the whole fan-out.
// The first worker takes the remainder when iterations does not divide evenly.
func (h *Harness) RunParallel(ctx context.Context, name string, runner Runner, iterations, workers int) (Result, error) {
	if iterations <= 0 {
		return Result{}, ErrInvalidIterations
	}

	if workers <= 0 {
		return Result{}, ErrInvalidWorkers
	}

	workers = min(workers, iterations)
	share := iterations / workers
	remainder := iterations % workers

	start := h.clock.Now()

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		n := share
		if w == 0 {
			n += remainder
		}

		g.Go(func() error {
			return feed(gctx, runner, n)
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("benchmark %s: %w", name, err)
	}

	return newResult(name, ModeParallel, iterations, workers, h.clock.Since(start)), nil
}

func feed(ctx context.Context, runner Runner, iterations int) error {
	for i := 0; i < iterations; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		runner.FeedAll()
	}

	return nil
}

func newResult(name, mode string, iterations, workers int, total time.Duration) Result {
	return Result{
		Name:       name,
		Mode:       mode,
		Iterations: iterations,
		Workers:    workers,
		Total:      total,
		PerOp:      total / time.Duration(iterations),
	}
}
