// Package observable decorates callback slots with metrics, tracing and logging.
//
// The slot itself is a transparent conduit. Hook wraps a callback.Handler and instruments
// each Invoke without changing its result: the callable's error is returned unchanged and
// an empty slot still yields the zero value and a nil error.
package observable
