package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTitleTable(t *testing.T) {
	table := DefaultTitleTable()

	assert.Greater(t, table.Len(), 0)
	title, ok := table.Lookup("tables/tables.schema.json")
	assert.True(t, ok)
	assert.Equal(t, "Tables", title)

	_, ok = table.Lookup("unknown.schema.json")
	assert.False(t, ok)
}

func TestTitleTable_EntriesIsCopy(t *testing.T) {
	table := NewTitleTable(TitleEntry{Path: "a.schema.json", Title: "A"})

	entries := table.Entries()
	entries[0].Title = "mutated"

	title, _ := table.Lookup("a.schema.json")
	assert.Equal(t, "A", title)
}

func TestTitleTable_With(t *testing.T) {
	base := NewTitleTable(
		TitleEntry{Path: "a.schema.json", Title: "A"},
		TitleEntry{Path: "b.schema.json", Title: "B"},
	)

	merged := base.With(map[string]string{
		"b.schema.json": "Bee",
		"d.schema.json": "D",
		"c.schema.json": "C",
	})

	assert.Equal(t, []TitleEntry{
		{Path: "a.schema.json", Title: "A"},
		{Path: "b.schema.json", Title: "Bee"},
		{Path: "c.schema.json", Title: "C"},
		{Path: "d.schema.json", Title: "D"},
	}, merged.Entries())

	// Base table is untouched.
	title, _ := base.Lookup("b.schema.json")
	assert.Equal(t, "B", title)
	assert.Equal(t, 2, base.Len())
}

func TestTitleTable_WithEmpty(t *testing.T) {
	base := DefaultTitleTable()
	assert.Equal(t, base.Entries(), base.With(nil).Entries())
}
