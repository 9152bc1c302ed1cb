package cli

import (
	"fmt"
	"sort"
	"strings"
)

// helpCommand is handled by the dispatcher itself and cannot be registered.
const helpCommand = "help"

// Factory builds a fresh Command for one invocation.
type Factory func() Command

// Registry maps lowercase command names to factories.
type Registry struct {
	commands map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Factory)}
}

// Register sets the factory for name. Names are case-insensitive. It panics
// if name is empty or "help", f is nil, or name already exists.
func (r *Registry) Register(name string, f Factory) {
	key := strings.ToLower(name)
	if key == "" {
		panic("command name must not be empty")
	}
	if key == helpCommand {
		panic(fmt.Sprintf("command %s is reserved", key))
	}
	if f == nil {
		panic(fmt.Sprintf("command %s has a nil factory", key))
	}
	if _, exists := r.commands[key]; exists {
		panic(fmt.Sprintf("command %s already registered", key))
	}
	r.commands[key] = f
}

// Lookup returns the factory for name and whether it exists.
func (r *Registry) Lookup(name string) (Factory, bool) {
	f, ok := r.commands[strings.ToLower(name)]
	return f, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.commands)
}
