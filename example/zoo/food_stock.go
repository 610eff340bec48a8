package zoo

import "sync"

// DefaultFoodStock is the number of food units a manager starts with.
const DefaultFoodStock = 100

// FoodStock is a food counter shared between a manager and its keepers.
// It may go negative; nobody stops feeding when the store is empty.
type FoodStock struct {
	mu    sync.Mutex
	units int
}

// NewFoodStock creates a stock holding units.
func NewFoodStock(units int) *FoodStock {
	return &FoodStock{units: units}
}

// Take removes units from the stock and returns what remains.
func (s *FoodStock) Take(units int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.units -= units

	return s.units
}

// Remaining returns the current number of units.
func (s *FoodStock) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.units
}
