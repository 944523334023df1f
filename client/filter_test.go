package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterByUnitIsolation(t *testing.T) {
	leads := []Lead{
		{ID: "1", UnitID: "1", Name: "a"},
		{ID: "2", UnitID: "2", Name: "b"},
		{ID: "3", UnitID: "1", Name: "c"},
		{ID: "4", UnitID: "99", Name: "orphan"}, // unit no longer exists
	}
	units := []string{"1", "2"}

	total := 0
	for _, unit := range units {
		filtered := FilterByUnit(leads, unit)
		for _, l := range filtered {
			assert.Equal(t, unit, l.UnitID)
		}
		total += len(filtered)
	}

	// Orphans are dropped from every per-unit view.
	assert.Equal(t, 3, total)
	assert.Less(t, total, len(leads))
}

func TestFilterByUnitPreservesOrderAndSource(t *testing.T) {
	leads := []Lead{
		{ID: "3", UnitID: "1"},
		{ID: "1", UnitID: "1"},
		{ID: "2", UnitID: "2"},
	}

	filtered := FilterByUnit(leads, "1")
	assert.Equal(t, []string{"3", "1"}, []string{filtered[0].ID, filtered[1].ID})

	filtered[0].ID = "mutated"
	assert.Equal(t, "3", leads[0].ID, "source collection must not be mutated")
}

func TestFilterByUnitUnknownUnit(t *testing.T) {
	leads := []Lead{{ID: "1", UnitID: "1"}}
	assert.Empty(t, FilterByUnit(leads, "does-not-exist"))
}

func TestFilterByUnitOtherEntities(t *testing.T) {
	students := []Student{{ID: "1", UnitID: "2"}}
	payments := []Payment{{ID: "1", UnitID: "2"}, {ID: "2", UnitID: "1"}}

	assert.Len(t, FilterByUnit(students, "2"), 1)
	assert.Len(t, FilterByUnit(payments, "2"), 1)
	assert.Empty(t, FilterByUnit(students, "1"))
}
