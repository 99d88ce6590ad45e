package wave

import (
	"unsafe"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the entry bound used when no explicit size is given.
const DefaultCacheSize = 128

// summaryKey identifies one memoized result: the buffer instance (backing
// array pointer plus length, so a reallocated buffer of a different length
// never aliases a stale entry) and the requested target length and mode.
type summaryKey struct {
	data *float32
	n    int
	m    int
	mode Mode
}

func keyFor(buffer []float32, m int, mode Mode) summaryKey {
	return summaryKey{
		data: unsafe.SliceData(buffer),
		n:    len(buffer),
		m:    m,
		mode: mode,
	}
}

// SummaryCache memoizes Normalize results keyed by buffer identity and the
// (target length, mode) pair. Sample buffers are transient, typically one
// animation tick, so retention is bounded by an LRU policy: an entry pins its
// buffer only until evicted, never indefinitely. Evict and Purge provide
// explicit eviction. Safe for concurrent use.
type SummaryCache struct {
	entries *lru.Cache[summaryKey, []float32]
}

// NewSummaryCache creates a cache holding at most size entries. A
// non-positive size falls back to DefaultCacheSize.
func NewSummaryCache(size int) *SummaryCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	// lru.New only fails on a non-positive size, which is guarded above.
	entries, _ := lru.New[summaryKey, []float32](size)
	return &SummaryCache{entries: entries}
}

// Get returns the memoized summary for the buffer instance and parameters.
func (c *SummaryCache) Get(buffer []float32, m int, mode Mode) ([]float32, bool) {
	if len(buffer) == 0 {
		return nil, false
	}
	return c.entries.Get(keyFor(buffer, m, mode))
}

// Put stores a computed summary for the buffer instance and parameters.
func (c *SummaryCache) Put(buffer []float32, m int, mode Mode, summary []float32) {
	if len(buffer) == 0 {
		return
	}
	c.entries.Add(keyFor(buffer, m, mode), summary)
}

// Evict drops every entry computed from the given buffer instance,
// regardless of target length and mode.
func (c *SummaryCache) Evict(buffer []float32) {
	if len(buffer) == 0 {
		return
	}
	data := unsafe.SliceData(buffer)
	for _, key := range c.entries.Keys() {
		if key.data == data && key.n == len(buffer) {
			c.entries.Remove(key)
		}
	}
}

// Purge drops all entries.
func (c *SummaryCache) Purge() {
	c.entries.Purge()
}

// Len returns the current number of entries.
func (c *SummaryCache) Len() int {
	return c.entries.Len()
}
