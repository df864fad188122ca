// Package ident provides a case-insensitive, case-preserving map keyed by
// identifier name, used wherever the language treats names as
// case-insensitive but needs to echo back the spelling first declared.
package ident

import "strings"

// Map is an insertion-ordered map keyed case-insensitively on string keys.
// Lookups fold the key to lower-case; iteration and Keys preserve the
// casing the key had when it was first Set.
type Map[T any] struct {
	order  []string
	values map[string]T
	cased  map[string]string
}

// NewMap creates an empty Map.
func NewMap[T any]() *Map[T] {
	return &Map[T]{
		values: make(map[string]T),
		cased:  make(map[string]string),
	}
}

func fold(key string) string {
	return strings.ToLower(key)
}

// Set stores value under key. If key is already present (case-insensitively)
// its value is replaced but its original casing and position are retained.
func (m *Map[T]) Set(key string, value T) {
	k := fold(key)
	if _, ok := m.values[k]; !ok {
		m.order = append(m.order, k)
		m.cased[k] = key
	}
	m.values[k] = value
}

// Get returns the value stored for key and whether it was present.
func (m *Map[T]) Get(key string) (T, bool) {
	v, ok := m.values[fold(key)]
	return v, ok
}

// Has reports whether key is present.
func (m *Map[T]) Has(key string) bool {
	_, ok := m.values[fold(key)]
	return ok
}

// Delete removes key, if present.
func (m *Map[T]) Delete(key string) {
	k := fold(key)
	if _, ok := m.values[k]; !ok {
		return
	}
	delete(m.values, k)
	delete(m.cased, k)
	for i, existing := range m.order {
		if existing == k {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// DisplayName returns the originally-cased spelling of key, or key itself
// (unchanged) if it is not present.
func (m *Map[T]) DisplayName(key string) string {
	if cased, ok := m.cased[fold(key)]; ok {
		return cased
	}
	return key
}

// Keys returns the stored keys in insertion order, with their original
// casing.
func (m *Map[T]) Keys() []string {
	keys := make([]string, len(m.order))
	for i, k := range m.order {
		keys[i] = m.cased[k]
	}
	return keys
}

// Len returns the number of entries.
func (m *Map[T]) Len() int {
	return len(m.order)
}

// Each calls fn for every entry in insertion order, using the display name.
func (m *Map[T]) Each(fn func(key string, value T)) {
	for _, k := range m.order {
		fn(m.cased[k], m.values[k])
	}
}
