// Package userdata partitions a props.Store into named components. A field f
// of component c lives under the key "c.f".
//
// Components whose names are prefixes of one another ("a" and "a.b") see each
// other's fields in Fetch. Pick component names that do not nest.
package userdata

import (
	"strings"

	"github.com/rana/subcmd/pkg/props"
)

// Fields maps field names to values. A nil value means "not set" and is
// never written.
type Fields map[string]*string

// Values implements Component.
func (f Fields) Values() Fields {
	return f
}

// Component is anything that can describe itself as a set of fields.
type Component interface {
	Values() Fields
}

// Value returns a pointer to s for building Fields literals.
func Value(s string) *string {
	return &s
}

// UserData is the live, namespaced view over a property store.
type UserData struct {
	props *props.Store
}

// New wraps s. A nil store is replaced with an empty one.
func New(s *props.Store) *UserData {
	if s == nil {
		s = props.New()
	}
	return &UserData{props: s}
}

// Props returns the underlying store.
func (u *UserData) Props() *props.Store {
	return u.props
}

// Dirty reports whether anything was stored since load.
func (u *UserData) Dirty() bool {
	return u.props.Dirty()
}

// Store writes every non-nil field of c under component. Fields that are
// nil keep whatever value they had before. The store is marked dirty even
// when no field was written.
func (u *UserData) Store(component string, c Component) {
	for name, value := range c.Values() {
		if value == nil {
			continue
		}
		u.props.Set(Key(component, name), *value)
	}
	u.props.MarkDirty()
}

// Fetch returns the fields stored under component with the prefix removed.
// The result is empty, never nil, when nothing is stored.
func (u *UserData) Fetch(component string) map[string]string {
	prefix := component + "."
	fields := make(map[string]string)
	for _, key := range u.props.Keys() {
		if len(key) > len(prefix) && strings.HasPrefix(key, prefix) {
			fields[key[len(prefix):]], _ = u.props.Get(key)
		}
	}
	return fields
}

// Get returns a single field of component.
func (u *UserData) Get(component, field string) (string, bool) {
	return u.props.Get(Key(component, field))
}

// Key builds the composite store key for a component field.
func Key(component, field string) string {
	return component + "." + field
}
