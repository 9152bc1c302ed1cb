// Package props holds flat string key/value settings that survive across
// invocations. A Store is loaded from a backing File once, mutated in memory,
// and flushed back in full only when something changed.
package props

import "sort"

// Store is an in-memory mapping of keys to values with a dirty flag.
type Store struct {
	values map[string]string
	dirty  bool
}

// New returns an empty, clean store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// FromMap returns a clean store holding a copy of m.
func FromMap(m map[string]string) *Store {
	s := New()
	for k, v := range m {
		s.values[k] = v
	}
	return s
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key and marks the store dirty.
func (s *Store) Set(key, value string) {
	s.values[key] = value
	s.dirty = true
}

// MarkDirty flags the store for flushing without changing any value.
func (s *Store) MarkDirty() {
	s.dirty = true
}

// Dirty reports whether the store changed since it was loaded or last flushed.
func (s *Store) Dirty() bool {
	return s.dirty
}

// Len returns the number of keys.
func (s *Store) Len() int {
	return len(s.values)
}

// Keys returns all keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a copy of the underlying mapping.
func (s *Store) Map() map[string]string {
	m := make(map[string]string, len(s.values))
	for k, v := range s.values {
		m[k] = v
	}
	return m
}

func (s *Store) markClean() {
	s.dirty = false
}
