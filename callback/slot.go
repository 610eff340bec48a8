package callback

import (
	"reflect"
	"sync"
)

// Slot holds at most one callable of type F. F is expected to be a func type.
//
// The zero value is an empty slot ready for use. A Slot must not be copied after first
// use; ownership is transferred with MoveTo instead.
type Slot[F any] struct {
	mu  sync.Mutex
	fn  F
	set bool
}

// NewSlot creates an empty slot.
func NewSlot[F any]() *Slot[F] {
	return &Slot[F]{}
}

// NewSlotWith creates a slot holding fn. A nil fn yields an empty slot.
func NewSlotWith[F any](fn F) *Slot[F] {
	s := &Slot[F]{}
	s.Register(fn)

	return s
}

// Register replaces the held callable with fn, last write wins.
// Registering a nil func empties the slot.
//
// Register may be called from inside a callable that this slot is currently running.
func (s *Slot[F]) Register(fn F) {
	set := !isNil(fn)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !set {
		var zero F
		fn = zero
	}

	s.fn = fn
	s.set = set
}

// Load returns a snapshot of the held callable and whether one was present.
// The returned value is independent of the slot and safe to call without further synchronization.
func (s *Slot[F]) Load() (F, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.fn, s.set
}

// IsSet reports whether the slot held a callable at the instant of the check.
// The answer may be stale by the time it is used; Invoke handles the empty case on its own.
func (s *Slot[F]) IsSet() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set
}

// MoveTo transfers the held callable into dst, replacing whatever dst held,
// and leaves s empty. Moving a slot into itself is a no-op.
func (s *Slot[F]) MoveTo(dst *Slot[F]) {
	if dst == nil || dst == s {
		return
	}

	fn, set := s.take()

	// s and dst are never locked at the same time.
	dst.mu.Lock()
	defer dst.mu.Unlock()

	dst.fn = fn
	dst.set = set
}

// take empties the slot and returns what it held.
func (s *Slot[F]) take() (F, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn, set := s.fn, s.set

	var zero F
	s.fn = zero
	s.set = false

	return fn, set
}

// isNil reports whether v is a nil func (or another nil-able kind holding nil).
func isNil[F any](v F) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}

	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Interface, reflect.Map, reflect.Chan, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
