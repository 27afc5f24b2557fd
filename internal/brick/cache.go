package brick

import "sync"

// The process-wide default tiling, rebuilt only when a different brick
// size is requested. The mutex covers the whole read-check-rebuild
// sequence so concurrent callers never observe a half-swapped tiling.
// Callers doing sustained work should hold a *Tiling directly instead.
var (
	defaultMu     sync.Mutex
	defaultTiling *Tiling
)

// Default returns the shared tiling for the given brick size, building
// it on first use and whenever the size changes.
func Default(bricksize float64) (*Tiling, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultTiling == nil || defaultTiling.bricksize != bricksize {
		t, err := New(bricksize)
		if err != nil {
			return nil, err
		}
		defaultTiling = t
	}
	return defaultTiling, nil
}

// Name returns the name of the brick covering (ra, dec) using the
// shared default tiling. Convenience wrapper for one-off lookups;
// repeated callers should keep the Tiling from Default.
func Name(ra, dec, bricksize float64) (string, error) {
	t, err := Default(bricksize)
	if err != nil {
		return "", err
	}
	return t.Name(ra, dec)
}
