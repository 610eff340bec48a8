package zoo_test

import (
	"bytes"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/callback-slot-go/example/zoo"
)

type countingTasks struct {
	calls atomic.Int64
}

func (t *countingTasks) FeedTheAnimals() {
	t.calls.Add(1)
}

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	return slog.New(handler), buf
}

func Test_TaskKeeper_DelegatesToTasks(t *testing.T) {
	tasks := &countingTasks{}
	keeper := zoo.NewTaskKeeper(tasks)

	keeper.FeedTheAnimals()
	keeper.FeedTheAnimals()

	assert.Equal(t, int64(2), tasks.calls.Load())
}

func Test_Keepers_HaveDistinctIDs(t *testing.T) {
	logger, _ := newBufferLogger()

	a := zoo.NewTaskKeeper(&countingTasks{})
	b := zoo.NewTaskKeeper(&countingTasks{})
	c := zoo.NewCallbackKeeper(logger)

	assert.NotEqual(t, a.ID(), b.ID())
	assert.NotEqual(t, a.ID(), c.ID())
}

func Test_CallbackKeeper_Default_LogsUntrained(t *testing.T) {
	logger, buf := newBufferLogger()
	keeper := zoo.NewCallbackKeeper(logger)

	keeper.FeedTheAnimals()

	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), zoo.LogMsgUntrained)
	assert.Contains(t, buf.String(), keeper.ID().String())
}

func Test_CallbackKeeper_ReRegister_ReplacesDefault(t *testing.T) {
	logger, buf := newBufferLogger()
	keeper := zoo.NewCallbackKeeper(logger)

	fed := 0
	keeper.FeedTheAnimalsCallback().Register(func() { fed++ })
	keeper.FeedTheAnimals()

	assert.Equal(t, 1, fed)
	assert.Empty(t, buf.String())
}

func Test_CallbackKeeper_RegisterNil_FeedsNothing(t *testing.T) {
	logger, buf := newBufferLogger()
	keeper := zoo.NewCallbackKeeper(logger)

	keeper.FeedTheAnimalsCallback().Register(nil)

	assert.NotPanics(t, keeper.FeedTheAnimals)
	assert.False(t, keeper.FeedTheAnimalsCallback().IsSet())
	assert.Empty(t, buf.String())
}

func Test_CallbackKeeper_ConcurrentRetraining(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	keeper := zoo.NewCallbackKeeper(logger)

	var first, second atomic.Int64
	feedFirst := func() { first.Add(1) }
	feedSecond := func() { second.Add(1) }

	const rounds = 1000

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			if i%2 == 0 {
				keeper.FeedTheAnimalsCallback().Register(feedFirst)
			} else {
				keeper.FeedTheAnimalsCallback().Register(feedSecond)
			}
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			keeper.FeedTheAnimals()
		}
	}()

	wg.Wait()

	assert.LessOrEqual(t, first.Load()+second.Load(), int64(rounds))
}
