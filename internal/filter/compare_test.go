package filter

import (
	"testing"

	"github.com/Domenick1991/fastflight/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCompareSelection_ToggleAddsAndRemoves(t *testing.T) {
	sel := NewCompareSelection()
	f := domain.Flight{ID: "FL-1"}

	assert.NoError(t, sel.Toggle(f))
	assert.Len(t, sel.Flights(), 1)

	// Toggling the same id again removes it.
	assert.NoError(t, sel.Toggle(f))
	assert.Empty(t, sel.Flights())
}

func TestCompareSelection_CapsAtThree(t *testing.T) {
	sel := NewCompareSelection()

	assert.NoError(t, sel.Toggle(domain.Flight{ID: "FL-1"}))
	assert.NoError(t, sel.Toggle(domain.Flight{ID: "FL-2"}))
	assert.NoError(t, sel.Toggle(domain.Flight{ID: "FL-3"}))

	err := sel.Toggle(domain.Flight{ID: "FL-4"})
	assert.ErrorIs(t, err, ErrSelectionFull)

	flights := sel.Flights()
	assert.Len(t, flights, 3)
	assert.Equal(t, "FL-1", flights[0].ID)
	assert.Equal(t, "FL-2", flights[1].ID)
	assert.Equal(t, "FL-3", flights[2].ID)
}

func TestCompareSelection_RemoveWhenFullThenAdd(t *testing.T) {
	sel := NewCompareSelection()
	for _, id := range []string{"FL-1", "FL-2", "FL-3"} {
		assert.NoError(t, sel.Toggle(domain.Flight{ID: id}))
	}

	// A full selection still allows removal by toggle.
	assert.NoError(t, sel.Toggle(domain.Flight{ID: "FL-2"}))
	assert.NoError(t, sel.Toggle(domain.Flight{ID: "FL-4"}))

	flights := sel.Flights()
	assert.Len(t, flights, 3)
	assert.Equal(t, "FL-4", flights[2].ID)
}

func TestCompareSelection_Clear(t *testing.T) {
	sel := NewCompareSelection()
	_ = sel.Toggle(domain.Flight{ID: "FL-1"})
	_ = sel.Toggle(domain.Flight{ID: "FL-2"})

	sel.Clear()

	assert.Empty(t, sel.Flights())
}
