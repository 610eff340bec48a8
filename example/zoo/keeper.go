package zoo

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/callback-slot-go/callback"
)

// LogMsgUntrained is logged by a CallbackKeeper whose callback was never re-registered.
const LogMsgUntrained = "I haven't been trained to feed animals yet? Where is the food?"

// Tasks is the capability a TaskKeeper needs from its owner.
type Tasks interface {
	FeedTheAnimals()
}

// Keeper feeds animals on request.
type Keeper interface {
	ID() uuid.UUID
	FeedTheAnimals()
}

// TaskKeeper delegates feeding to the Tasks it was constructed with.
type TaskKeeper struct {
	id    uuid.UUID
	tasks Tasks
}

// NewTaskKeeper creates a keeper bound to tasks for its whole lifetime.
func NewTaskKeeper(tasks Tasks) *TaskKeeper {
	return &TaskKeeper{id: uuid.New(), tasks: tasks}
}

// ID returns the keeper's identifier.
func (k *TaskKeeper) ID() uuid.UUID {
	return k.id
}

// FeedTheAnimals calls the bound Tasks.
func (k *TaskKeeper) FeedTheAnimals() {
	k.tasks.FeedTheAnimals()
}

// CallbackKeeper feeds through a re-registrable callback slot.
type CallbackKeeper struct {
	id   uuid.UUID
	feed callback.Action
}

// NewCallbackKeeper creates a keeper whose default behavior complains about missing training.
func NewCallbackKeeper(logger *slog.Logger) *CallbackKeeper {
	k := &CallbackKeeper{id: uuid.New()}
	k.feed.Register(func() {
		logger.Warn(LogMsgUntrained, "keeper_id", k.id.String())
	})

	return k
}

// ID returns the keeper's identifier.
func (k *CallbackKeeper) ID() uuid.UUID {
	return k.id
}

// FeedTheAnimals invokes whatever is currently registered.
func (k *CallbackKeeper) FeedTheAnimals() {
	k.feed.Invoke()
}

// FeedTheAnimalsCallback exposes the slot so the owner can redefine feeding.
func (k *CallbackKeeper) FeedTheAnimalsCallback() *callback.Action {
	return &k.feed
}

var (
	_ Keeper = (*TaskKeeper)(nil)
	_ Keeper = (*CallbackKeeper)(nil)
)
