// registry.go implements the extension registration system.
//
// Separated from extension.go to isolate the global registry state.
// Extensions self-register during init(), before main() runs, so the root
// command can collect every extension's commands in one pass.
//
// Design: panic-on-duplicate following database/sql.Register conventions.
// A duplicate name is a programmer error, not a runtime condition, and
// failing at init makes it impossible to ship. Registration order is kept
// so command listings stay deterministic across runs.

package extension

import "sync"

var (
	mu         sync.RWMutex
	extensions = make(map[string]Extension)
	order      []string // registration order, drives command listing
)

// Register adds an extension. Called from init() functions; panics on a
// duplicate name, the same way database/sql.Register and flag.Var do.
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	name := e.Name()
	if _, exists := extensions[name]; exists {
		panic("extension already registered: " + name)
	}

	extensions[name] = e
	order = append(order, name)
}

// All returns every registered extension in registration order.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Extension, 0, len(order))
	for _, name := range order {
		out = append(out, extensions[name])
	}
	return out
}

// Get returns the extension registered under name, or nil.
func Get(name string) Extension {
	mu.RLock()
	defer mu.RUnlock()
	return extensions[name]
}

// Names returns the registered extension names in registration order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, len(order))
	copy(names, order)
	return names
}
