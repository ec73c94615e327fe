package domain

import "sort"

// TitleKey is the JSON-Schema annotation inserted by the title injector.
const TitleKey = "title"

// Keys that stay ahead of the title when it is inserted.
const (
	IDKey     = "$id"
	SchemaKey = "$schema"
)

// TitleEntry maps a schema file, relative to the schemas root, to its title.
type TitleEntry struct {
	Path  string
	Title string
}

// TitleTable is an immutable, ordered path to title mapping.
type TitleTable struct {
	entries []TitleEntry
}

// NewTitleTable builds a table from entries. Later entries for the same path
// replace earlier ones without changing position.
func NewTitleTable(entries ...TitleEntry) TitleTable {
	out := make([]TitleEntry, 0, len(entries))
	index := make(map[string]int, len(entries))
	for _, e := range entries {
		if i, ok := index[e.Path]; ok {
			out[i].Title = e.Title
			continue
		}
		index[e.Path] = len(out)
		out = append(out, e)
	}
	return TitleTable{entries: out}
}

// Entries returns a copy of the table's entries in order.
func (t TitleTable) Entries() []TitleEntry {
	out := make([]TitleEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries.
func (t TitleTable) Len() int {
	return len(t.entries)
}

// Lookup returns the title for a path.
func (t TitleTable) Lookup(path string) (string, bool) {
	for _, e := range t.entries {
		if e.Path == path {
			return e.Title, true
		}
	}
	return "", false
}

// With returns a new table with overrides applied. Paths not yet in the
// table are appended in sorted order so the result is deterministic.
func (t TitleTable) With(overrides map[string]string) TitleTable {
	if len(overrides) == 0 {
		return t
	}
	paths := make([]string, 0, len(overrides))
	for p := range overrides {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	entries := t.Entries()
	for _, p := range paths {
		entries = append(entries, TitleEntry{Path: p, Title: overrides[p]})
	}
	return NewTitleTable(entries...)
}

// DefaultTitleTable returns the titles for the documentation schema tree.
func DefaultTitleTable() TitleTable {
	return NewTitleTable(
		TitleEntry{Path: "app.schema.json", Title: "Application"},
		TitleEntry{Path: "common/definitions.schema.json", Title: "Common Definitions"},
		TitleEntry{Path: "automations/automations.schema.json", Title: "Automations"},
		TitleEntry{Path: "automations/actions/actions.schema.json", Title: "Automation Actions"},
		TitleEntry{Path: "automations/triggers/triggers.schema.json", Title: "Automation Triggers"},
		TitleEntry{Path: "connections/connections.schema.json", Title: "Connections"},
		TitleEntry{Path: "pages/pages.schema.json", Title: "Pages"},
		TitleEntry{Path: "tables/tables.schema.json", Title: "Tables"},
		TitleEntry{Path: "tables/fields/fields.schema.json", Title: "Table Fields"},
	)
}
