package callback

import (
	"errors"
)

// ErrNilSlot is returned by decorators that were handed a nil slot.
var ErrNilSlot = errors.New("nil callback slot supplied")

// ErrEmptyHookName is returned when a decorator is configured with an empty callback name.
var ErrEmptyHookName = errors.New("empty callback name supplied")
