package callback

import (
	"context"
)

// HandlerFunc is the callable shape held by a Handler.
type HandlerFunc[A, R any] func(ctx context.Context, arg A) (R, error)

// Handler is a slot for context-aware callables returning a result and an error.
//
// Invoking an empty Handler returns the zero value of R and a nil error: nobody listening
// is not a failure. Errors returned by the held callable are passed through unchanged.
type Handler[A, R any] struct {
	slot Slot[HandlerFunc[A, R]]
}

// NewHandler creates a Handler holding fn.
func NewHandler[A, R any](fn HandlerFunc[A, R]) *Handler[A, R] {
	h := &Handler[A, R]{}
	h.slot.Register(fn)

	return h
}

// Register replaces the held callable. A nil fn empties the slot.
func (h *Handler[A, R]) Register(fn HandlerFunc[A, R]) {
	h.slot.Register(fn)
}

// Invoke runs the held callable with ctx and arg.
// The slot neither checks ctx nor wraps the returned error.
func (h *Handler[A, R]) Invoke(ctx context.Context, arg A) (R, error) {
	fn, ok := h.slot.Load()
	if !ok {
		var zero R
		return zero, nil
	}

	return fn(ctx, arg)
}

// Load returns a snapshot of the held callable and whether one was present.
// Decorators use it to run and describe the very same callable.
func (h *Handler[A, R]) Load() (HandlerFunc[A, R], bool) {
	return h.slot.Load()
}

// IsSet reports whether a callable is currently held.
func (h *Handler[A, R]) IsSet() bool {
	return h.slot.IsSet()
}

// Move transfers the held callable into a new Handler and leaves h empty.
func (h *Handler[A, R]) Move() *Handler[A, R] {
	moved := &Handler[A, R]{}
	h.slot.MoveTo(&moved.slot)

	return moved
}
