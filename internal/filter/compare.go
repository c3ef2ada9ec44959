package filter

import (
	"errors"
	"sync"

	"github.com/Domenick1991/fastflight/internal/domain"
)

// MaxCompare is how many flights can be compared side by side.
const MaxCompare = 3

// ErrSelectionFull is returned when toggling a fourth distinct flight in.
var ErrSelectionFull = errors.New("comparison selection is full")

// CompareSelection is a bounded multi-select of flights, unique by id with
// insertion order preserved. It is cleared wholesale on every new search.
type CompareSelection struct {
	mu      sync.Mutex
	flights []domain.Flight
}

func NewCompareSelection() *CompareSelection {
	return &CompareSelection{}
}

// Toggle removes the flight if it is already selected, otherwise adds it.
// Adding beyond MaxCompare fails with ErrSelectionFull and no state change.
func (c *CompareSelection) Toggle(f domain.Flight) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.flights {
		if existing.ID == f.ID {
			c.flights = append(c.flights[:i], c.flights[i+1:]...)
			return nil
		}
	}

	if len(c.flights) >= MaxCompare {
		return ErrSelectionFull
	}
	c.flights = append(c.flights, f)
	return nil
}

// Flights returns the current selection in insertion order.
func (c *CompareSelection) Flights() []domain.Flight {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.Flight, len(c.flights))
	copy(out, c.flights)
	return out
}

func (c *CompareSelection) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flights = nil
}
