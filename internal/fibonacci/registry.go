package fibonacci

import (
	"fmt"
	"sync"
)

// Registry keys for the built-in strategies, in benchmark stage order.
const (
	KeyNaive     = "naive"
	KeyTailRec   = "tailrec"
	KeyIterative = "iterative"
)

// Registry maps short keys to calculators. It preserves registration order
// so that List reflects the order in which stages are run.
type Registry struct {
	mu    sync.RWMutex
	calcs map[string]Calculator
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{calcs: make(map[string]Calculator)}
}

// NewDefaultRegistry returns a registry holding the three built-in strategies.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	// Keys are constants and unique, so registration cannot fail.
	_ = r.Register(KeyNaive, NaiveRecursive{})
	_ = r.Register(KeyTailRec, TailRecursive{})
	_ = r.Register(KeyIterative, Iterative{})
	return r
}

// Register adds calc under key. Registering the same key twice is an error.
func (r *Registry) Register(key string, calc Calculator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.calcs[key]; exists {
		return fmt.Errorf("calculator %q already registered", key)
	}
	r.calcs[key] = calc
	r.order = append(r.order, key)
	return nil
}

// Get returns the calculator registered under key.
func (r *Registry) Get(key string) (Calculator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	calc, ok := r.calcs[key]
	if !ok {
		return nil, fmt.Errorf("unknown calculator: %q", key)
	}
	return calc, nil
}

// MustGet is like Get but panics on unknown keys. Intended for the
// built-in keys only.
func (r *Registry) MustGet(key string) Calculator {
	calc, err := r.Get(key)
	if err != nil {
		panic(err)
	}
	return calc
}

// List returns the registered keys in registration order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}
