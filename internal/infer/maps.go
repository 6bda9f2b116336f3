package infer

import "github.com/funvibe/funkos/internal/space"

// The signature string depends on map iteration order, so both maps are
// explicit insertion-ordered pair lists. Re-setting an existing name
// updates the entry in place, keeping its original position.

// TypeEntry is one (parameter name, type descriptor) pair.
type TypeEntry struct {
	Name       string
	Descriptor string
}

// TypeMap is an insertion-ordered parameter-name to type-descriptor map.
type TypeMap struct {
	entries []TypeEntry
}

// Set inserts or updates an entry, preserving insertion order.
func (m *TypeMap) Set(name, descriptor string) {
	for i := range m.entries {
		if m.entries[i].Name == name {
			m.entries[i].Descriptor = descriptor
			return
		}
	}
	m.entries = append(m.entries, TypeEntry{Name: name, Descriptor: descriptor})
}

// Get returns the descriptor for name.
func (m *TypeMap) Get(name string) (string, bool) {
	for i := range m.entries {
		if m.entries[i].Name == name {
			return m.entries[i].Descriptor, true
		}
	}
	return "", false
}

func (m *TypeMap) Len() int {
	return len(m.entries)
}

// Pairs returns the entries in insertion order.
func (m *TypeMap) Pairs() []TypeEntry {
	out := make([]TypeEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// LayoutEntry is one (parameter name, inferred layout) pair.
type LayoutEntry struct {
	Name   string
	Layout space.Layout
}

// LayoutMap is an insertion-ordered parameter-name to layout map.
type LayoutMap struct {
	entries []LayoutEntry
}

// Set inserts or updates an entry, preserving insertion order.
func (m *LayoutMap) Set(name string, l space.Layout) {
	for i := range m.entries {
		if m.entries[i].Name == name {
			m.entries[i].Layout = l
			return
		}
	}
	m.entries = append(m.entries, LayoutEntry{Name: name, Layout: l})
}

// Get returns the layout for name.
func (m *LayoutMap) Get(name string) (space.Layout, bool) {
	for i := range m.entries {
		if m.entries[i].Name == name {
			return m.entries[i].Layout, true
		}
	}
	return space.LayoutDefault, false
}

func (m *LayoutMap) Len() int {
	return len(m.entries)
}

// Pairs returns the entries in insertion order.
func (m *LayoutMap) Pairs() []LayoutEntry {
	out := make([]LayoutEntry, len(m.entries))
	copy(out, m.entries)
	return out
}
