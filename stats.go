package sigcache

import "sync/atomic"

// Stats is a snapshot of cache effectiveness counters.
type Stats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// Stats returns a snapshot of the hit/miss counters and the current entry
// count. Counters are read atomically, so Stats is cheap enough for metrics
// scraping from hot paths.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:    atomic.LoadUint64(&c.hits),
		Misses:  atomic.LoadUint64(&c.misses),
		Entries: c.Len(),
	}
}

// HitRate returns the fraction of lookups answered from the cache, in
// [0, 1]. It returns 0 before the first lookup.
func (c *Cache) HitRate() float64 {
	hits := atomic.LoadUint64(&c.hits)
	misses := atomic.LoadUint64(&c.misses)

	total := hits + misses
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}
