package stencil

import "sync"

var (
	registry   = make(map[string]*Mask)
	registryMu sync.RWMutex
)

// Use returns a cached mask for the pattern or compiles a new one. Options
// apply only on the first call for a given pattern; later calls return the
// cached mask unchanged. Callers needing differently configured masks for
// the same pattern should use New directly.
func Use(patternStr string, opts ...Option) (*Mask, error) {
	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[patternStr]; ok {
		registryMu.RUnlock()
		return cached, nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[patternStr]; ok {
		return cached, nil
	}

	m, err := New(patternStr, opts...)
	if err != nil {
		return nil, err
	}

	registry[patternStr] = m
	return m, nil
}

// Reset clears the mask registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]*Mask)
}
