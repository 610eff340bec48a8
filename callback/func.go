package callback

/***** Func *****/

// Func is a slot for callables without arguments returning an R.
// Invoking an empty Func returns the zero value of R.
type Func[R any] struct {
	slot Slot[func() R]
}

// NewFunc creates a Func holding fn.
func NewFunc[R any](fn func() R) *Func[R] {
	f := &Func[R]{}
	f.slot.Register(fn)

	return f
}

// Register replaces the held callable. A nil fn empties the slot.
func (f *Func[R]) Register(fn func() R) {
	f.slot.Register(fn)
}

// Invoke returns what the held callable returns, or the zero value of R if the slot is empty.
func (f *Func[R]) Invoke() R {
	fn, ok := f.slot.Load()
	if !ok {
		var zero R
		return zero
	}

	return fn()
}

// IsSet reports whether a callable is currently held.
func (f *Func[R]) IsSet() bool {
	return f.slot.IsSet()
}

// Move transfers the held callable into a new Func and leaves f empty.
func (f *Func[R]) Move() *Func[R] {
	moved := &Func[R]{}
	f.slot.MoveTo(&moved.slot)

	return moved
}

/***** Func1 *****/

// Func1 is a slot for callables taking one argument and returning an R.
type Func1[A, R any] struct {
	slot Slot[func(A) R]
}

// NewFunc1 creates a Func1 holding fn.
func NewFunc1[A, R any](fn func(A) R) *Func1[A, R] {
	f := &Func1[A, R]{}
	f.slot.Register(fn)

	return f
}

// Register replaces the held callable. A nil fn empties the slot.
func (f *Func1[A, R]) Register(fn func(A) R) {
	f.slot.Register(fn)
}

// Invoke returns what the held callable returns for arg, or the zero value of R if the slot is empty.
func (f *Func1[A, R]) Invoke(arg A) R {
	fn, ok := f.slot.Load()
	if !ok {
		var zero R
		return zero
	}

	return fn(arg)
}

// IsSet reports whether a callable is currently held.
func (f *Func1[A, R]) IsSet() bool {
	return f.slot.IsSet()
}

// Move transfers the held callable into a new Func1 and leaves f empty.
func (f *Func1[A, R]) Move() *Func1[A, R] {
	moved := &Func1[A, R]{}
	f.slot.MoveTo(&moved.slot)

	return moved
}

/***** Func2 *****/

// Func2 is a slot for callables taking two arguments and returning an R.
type Func2[A, B, R any] struct {
	slot Slot[func(A, B) R]
}

// NewFunc2 creates a Func2 holding fn.
func NewFunc2[A, B, R any](fn func(A, B) R) *Func2[A, B, R] {
	f := &Func2[A, B, R]{}
	f.slot.Register(fn)

	return f
}

// Register replaces the held callable. A nil fn empties the slot.
func (f *Func2[A, B, R]) Register(fn func(A, B) R) {
	f.slot.Register(fn)
}

// Invoke returns what the held callable returns for a1 and a2, or the zero value of R if the slot is empty.
func (f *Func2[A, B, R]) Invoke(a1 A, a2 B) R {
	fn, ok := f.slot.Load()
	if !ok {
		var zero R
		return zero
	}

	return fn(a1, a2)
}

// IsSet reports whether a callable is currently held.
func (f *Func2[A, B, R]) IsSet() bool {
	return f.slot.IsSet()
}

// Move transfers the held callable into a new Func2 and leaves f empty.
func (f *Func2[A, B, R]) Move() *Func2[A, B, R] {
	moved := &Func2[A, B, R]{}
	f.slot.MoveTo(&moved.slot)

	return moved
}
