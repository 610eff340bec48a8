// Package callback provides a thread-safe, reassignable single-slot callback holder.
//
// A slot stores at most one callable of a fixed signature. Any goroutine may replace
// the callable at runtime with Register, and any goroutine may call it through Invoke
// without coordinating with concurrent replacement.
//
// Invoke takes a snapshot of the held callable under a mutex, releases the mutex and
// then runs the snapshot. The guarded section is O(1) and never includes user code, so a
// callable may re-register or re-invoke its own slot without deadlocking. The trade-off is
// a weak ordering guarantee: an Invoke racing with a Register observes either the old or
// the new callable, never a torn value.
//
// Invoking an empty slot is not an error. Slots without a result do nothing; slots with a
// result return the zero value of the result type.
//
// Key types:
//   - Slot: the generic holder for any func type, with Register, Load, IsSet and MoveTo
//   - Action, Action1, Action2: slots for callables without a result
//   - Func, Func1, Func2: slots for callables returning a single value
//   - Handler: slot for context-aware callables returning (R, error)
//
// Common usage pattern:
//
//	var onClientLost callback.Action
//	onClientLost.Register(func() { log.Println("handling lost client") })
//	onClientLost.Invoke()
//
//	counter := callback.NewFunc(func() int { return 42 })
//	answer := counter.Invoke() // 42
package callback
