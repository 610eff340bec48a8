package zoo

import (
	"context"
	"log/slog"
)

const (
	logMsgOpening = "opening zoo"
	logMsgClosing = "closing zoo"
	logMsgFeeding = "feeding"

	logAttrZoo       = "zoo"
	logAttrAnimal    = "animal"
	logAttrRemaining = "remaining"
)

// Manager runs a zoo: it owns the keepers and the food stock.
type Manager interface {
	Name() string
	OpenZoo(ctx context.Context)
	CloseZoo(ctx context.Context)
	// FeedAll asks every keeper to feed once.
	FeedAll()
	Stock() *FoodStock
}

// base carries what every manager has in common.
type base struct {
	name   string
	stock  *FoodStock
	logger *slog.Logger
}

func newBase(name string, logger *slog.Logger) base {
	return base{
		name:   name,
		stock:  NewFoodStock(DefaultFoodStock),
		logger: logger.With(logAttrZoo, name),
	}
}

func (b *base) Name() string      { return b.name }
func (b *base) Stock() *FoodStock { return b.stock }
func (b *base) CloseZoo(ctx context.Context) {
	b.logger.InfoContext(ctx, logMsgClosing, logAttrRemaining, b.stock.Remaining())
}

// feed takes units from the stock and logs it.
func (b *base) feed(animal string, units int) {
	remaining := b.stock.Take(units)
	b.logger.Debug(logMsgFeeding, logAttrAnimal, animal, logAttrRemaining, remaining)
}

/***** TigerKingManager *****/

// TigerKingManager implements Tasks itself and hands itself to its only keeper.
// A second keeper would get the very same tasks; there is no way to tell them apart.
type TigerKingManager struct {
	base
	tigerKeeper *TaskKeeper
}

// NewTigerKingManager creates the manager of The Greater Wynnewood Exotic Animal Park.
func NewTigerKingManager(logger *slog.Logger) *TigerKingManager {
	m := &TigerKingManager{base: newBase("The Greater Wynnewood Exotic Animal Park", logger)}
	m.tigerKeeper = NewTaskKeeper(m)

	return m
}

// OpenZoo opens the park and feeds once.
func (m *TigerKingManager) OpenZoo(ctx context.Context) {
	m.logger.InfoContext(ctx, logMsgOpening)
	m.FeedAll()
}

// FeedAll asks the tiger keeper to feed.
func (m *TigerKingManager) FeedAll() {
	m.tigerKeeper.FeedTheAnimals()
}

// FeedTheAnimals implements Tasks for the tiger keeper.
func (m *TigerKingManager) FeedTheAnimals() {
	m.feed("tigers", 1)
}

/***** PhoenixManager *****/

// PhoenixManager gives each keeper its own Tasks object. The task objects reach into the
// manager's stock through a shared pointer.
type PhoenixManager struct {
	base
	tigerKeeper *TaskKeeper
	lionKeeper  *TaskKeeper
}

type stockTasks struct {
	owner  *base
	animal string
	units  int
}

func (t stockTasks) FeedTheAnimals() {
	t.owner.feed(t.animal, t.units)
}

// NewPhoenixManager creates the manager of The Phoenix Zoo.
func NewPhoenixManager(logger *slog.Logger) *PhoenixManager {
	m := &PhoenixManager{base: newBase("The Phoenix Zoo", logger)}
	m.tigerKeeper = NewTaskKeeper(stockTasks{owner: &m.base, animal: "tigers", units: 1})
	m.lionKeeper = NewTaskKeeper(stockTasks{owner: &m.base, animal: "lions", units: 2})

	return m
}

// OpenZoo opens the zoo and feeds once.
func (m *PhoenixManager) OpenZoo(ctx context.Context) {
	m.logger.InfoContext(ctx, logMsgOpening)
	m.FeedAll()
}

// FeedAll asks the tiger and lion keepers to feed.
func (m *PhoenixManager) FeedAll() {
	m.tigerKeeper.FeedTheAnimals()
	m.lionKeeper.FeedTheAnimals()
}

/***** HogleManager *****/

// HogleManager registers its own methods on callback keepers. The pig keeper is never
// trained and keeps its default behavior.
type HogleManager struct {
	base
	tigerKeeper   *CallbackKeeper
	lionKeeper    *CallbackKeeper
	giraffeKeeper *CallbackKeeper
	pigKeeper     *CallbackKeeper
}

// NewHogleManager creates the manager of The Hogle Zoo.
func NewHogleManager(logger *slog.Logger) *HogleManager {
	m := &HogleManager{base: newBase("The Hogle Zoo", logger)}
	m.tigerKeeper = NewCallbackKeeper(m.logger)
	m.lionKeeper = NewCallbackKeeper(m.logger)
	m.giraffeKeeper = NewCallbackKeeper(m.logger)
	m.pigKeeper = NewCallbackKeeper(m.logger)

	m.tigerKeeper.FeedTheAnimalsCallback().Register(m.feedTigers)
	m.lionKeeper.FeedTheAnimalsCallback().Register(m.feedLions)
	m.giraffeKeeper.FeedTheAnimalsCallback().Register(m.feedGiraffes)

	return m
}

// OpenZoo opens the zoo and feeds once.
func (m *HogleManager) OpenZoo(ctx context.Context) {
	m.logger.InfoContext(ctx, logMsgOpening)
	m.FeedAll()
}

// FeedAll asks all four keepers to feed.
func (m *HogleManager) FeedAll() {
	m.tigerKeeper.FeedTheAnimals()
	m.lionKeeper.FeedTheAnimals()
	m.giraffeKeeper.FeedTheAnimals()
	m.pigKeeper.FeedTheAnimals()
}

// PigKeeper exposes the untrained keeper so it can be trained later.
func (m *HogleManager) PigKeeper() *CallbackKeeper {
	return m.pigKeeper
}

func (m *HogleManager) feedTigers()   { m.feed("tigers", 1) }
func (m *HogleManager) feedLions()    { m.feed("lions", 2) }
func (m *HogleManager) feedGiraffes() { m.feed("giraffes", 3) }

var (
	_ Manager = (*TigerKingManager)(nil)
	_ Manager = (*PhoenixManager)(nil)
	_ Manager = (*HogleManager)(nil)
	_ Tasks   = (*TigerKingManager)(nil)
)
