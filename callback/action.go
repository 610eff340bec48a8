package callback

/***** Action *****/

// Action is a slot for callables without arguments or result.
// The zero value is an empty slot; invoking it is a no-op.
type Action struct {
	slot Slot[func()]
}

// NewAction creates an Action holding fn.
func NewAction(fn func()) *Action {
	a := &Action{}
	a.slot.Register(fn)

	return a
}

// Register replaces the held callable. A nil fn empties the slot.
func (a *Action) Register(fn func()) {
	a.slot.Register(fn)
}

// Invoke calls the held callable outside the slot's guard. It does nothing when the slot is empty.
func (a *Action) Invoke() {
	if fn, ok := a.slot.Load(); ok {
		fn()
	}
}

// IsSet reports whether a callable is currently held.
func (a *Action) IsSet() bool {
	return a.slot.IsSet()
}

// Move transfers the held callable into a new Action and leaves a empty.
func (a *Action) Move() *Action {
	moved := &Action{}
	a.slot.MoveTo(&moved.slot)

	return moved
}

/***** Action1 *****/

// Action1 is a slot for callables taking one argument and returning nothing.
type Action1[A any] struct {
	slot Slot[func(A)]
}

// NewAction1 creates an Action1 holding fn.
func NewAction1[A any](fn func(A)) *Action1[A] {
	a := &Action1[A]{}
	a.slot.Register(fn)

	return a
}

// Register replaces the held callable. A nil fn empties the slot.
func (a *Action1[A]) Register(fn func(A)) {
	a.slot.Register(fn)
}

// Invoke calls the held callable with arg. It does nothing when the slot is empty.
func (a *Action1[A]) Invoke(arg A) {
	if fn, ok := a.slot.Load(); ok {
		fn(arg)
	}
}

// IsSet reports whether a callable is currently held.
func (a *Action1[A]) IsSet() bool {
	return a.slot.IsSet()
}

// Move transfers the held callable into a new Action1 and leaves a empty.
func (a *Action1[A]) Move() *Action1[A] {
	moved := &Action1[A]{}
	a.slot.MoveTo(&moved.slot)

	return moved
}

/***** Action2 *****/

// Action2 is a slot for callables taking two arguments and returning nothing.
type Action2[A, B any] struct {
	slot Slot[func(A, B)]
}

// NewAction2 creates an Action2 holding fn.
func NewAction2[A, B any](fn func(A, B)) *Action2[A, B] {
	a := &Action2[A, B]{}
	a.slot.Register(fn)

	return a
}

// Register replaces the held callable. A nil fn empties the slot.
func (a *Action2[A, B]) Register(fn func(A, B)) {
	a.slot.Register(fn)
}

// Invoke calls the held callable with a1 and a2. It does nothing when the slot is empty.
func (a *Action2[A, B]) Invoke(a1 A, a2 B) {
	if fn, ok := a.slot.Load(); ok {
		fn(a1, a2)
	}
}

// IsSet reports whether a callable is currently held.
func (a *Action2[A, B]) IsSet() bool {
	return a.slot.IsSet()
}

// Move transfers the held callable into a new Action2 and leaves a empty.
func (a *Action2[A, B]) Move() *Action2[A, B] {
	moved := &Action2[A, B]{}
	a.slot.MoveTo(&moved.slot)

	return moved
}
