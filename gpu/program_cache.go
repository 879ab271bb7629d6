package gpu

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

// ProgramCache stores compiled SPIR-V programs indexed by a hash of their
// generated source text. Compilation through naga is by far the most
// expensive step of a rebuild; toggling an option back and forth (bilateral
// on/off is the common case) must not recompile the same program twice.
//
// ProgramCache is safe for concurrent use. Reads take an RLock; misses
// upgrade to a write lock with a double check so a program is compiled at
// most once per source.
type ProgramCache struct {
	mu       sync.RWMutex
	programs map[uint64][]uint32

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewProgramCache creates an empty program cache.
func NewProgramCache() *ProgramCache {
	return &ProgramCache{
		programs: make(map[uint64][]uint32),
	}
}

// hashSource computes the FNV-1a hash of the program text.
func hashSource(source string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(source)) // fnv.Write never returns an error
	return h.Sum64()
}

// GetOrCompile returns the cached SPIR-V for the given program text,
// compiling and storing it on first sight.
func (c *ProgramCache) GetOrCompile(source string) ([]uint32, error) {
	key := hashSource(source)

	c.mu.RLock()
	words, ok := c.programs[key]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return words, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double check: another goroutine may have compiled while we waited.
	if words, ok := c.programs[key]; ok {
		c.hits.Add(1)
		return words, nil
	}

	words, err := CompileToSPIRV(source)
	if err != nil {
		return nil, err
	}
	c.programs[key] = words
	c.misses.Add(1)
	return words, nil
}

// Len returns the number of cached programs.
func (c *ProgramCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.programs)
}

// Stats returns the cumulative hit and miss counts.
func (c *ProgramCache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}
