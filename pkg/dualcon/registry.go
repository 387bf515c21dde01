package dualcon

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownEngine is returned by Lookup for an unregistered name.
var ErrUnknownEngine = errors.New("unknown remesh engine")

var (
	registryMu sync.RWMutex
	registry   = map[string]Engine{
		"hull":        HullEngine{},
		"passthrough": PassthroughEngine{},
	}
)

// Register makes an engine available by name, replacing any previous one.
func Register(name string, e Engine) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = e
}

// Lookup returns the engine registered under name.
func Lookup(name string) (Engine, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
	return e, nil
}

// Names returns the registered engine names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
