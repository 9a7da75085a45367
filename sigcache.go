package sigcache

import (
	"crypto/rand"
	"fmt"
	"io"
	mrand "math/rand"
	"sync"
	"time"

	logger "github.com/harwoeck/liblog/contract"
)

const (
	// nonceSize is the size of the secret per-instance nonce in bytes.
	nonceSize = 32
	// digestSize is the size of a message digest in bytes.
	digestSize = 32

	// DefaultMaxCacheSize is the default memory budget in mebibytes.
	DefaultMaxCacheSize = 40
)

// BudgetFunc returns the current memory budget in bytes. It is invoked on
// every mutating call, so a budget backed by live configuration takes effect
// immediately. A budget <= 0 disables caching.
type BudgetFunc func() int64

// FixedBudget returns a BudgetFunc that always reports mebibytes MiB.
func FixedBudget(mebibytes int64) BudgetFunc {
	return func() int64 {
		return mebibytes << 20
	}
}

// Cache holds the verified-signature facts shared by all Verifier instances
// created from it. Entries are keyed digests of the verification inputs
// blended with a secret per-cache nonce, so entries cannot be predicted or
// poisoned from outside. A single reader-writer lock guards the entry set:
// lookups proceed concurrently, mutations serialize.
type Cache struct {
	budget BudgetFunc
	usage  UsageFunc
	log    logger.Logger

	nonce [nonceSize]byte

	mu      sync.RWMutex
	entries *entrySet
	rnd     *mrand.Rand // victim sampling only, guarded by mu

	hits   uint64
	misses uint64
}

// NewCache creates an empty Cache. budget, usage and log may be nil, in
// which case FixedBudget with DefaultMaxCacheSize, DynamicUsage and a
// standard logger are used.
//
// The secret nonce is drawn from crypto/rand once here; this may block until
// the system has gathered enough entropy, a one-time startup cost. The nonce
// is fixed for the Cache's lifetime and never exposed.
func NewCache(budget BudgetFunc, usage UsageFunc, log logger.Logger) (*Cache, error) {
	if budget == nil {
		budget = FixedBudget(DefaultMaxCacheSize)
	}
	if usage == nil {
		usage = DynamicUsage
	}
	if log == nil {
		log = logger.MustNewStd()
	}

	c := &Cache{
		budget:  budget,
		usage:   usage,
		log:     log.Named("sigcache"),
		entries: newEntrySet(),
		rnd:     mrand.New(mrand.NewSource(time.Now().UnixNano())),
	}

	_, err := io.ReadFull(rand.Reader, c.nonce[:])
	if err != nil {
		return nil, fmt.Errorf("sigcache: cannot generate nonce: %v", err)
	}

	return c, nil
}

// Len returns the current number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries.len()
}

func (c *Cache) contains(entry key) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries.contains(entry)
}

func (c *Cache) erase(entry key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.erase(entry)
}

// set inserts an entry, evicting uniformly random victims first until the
// estimated footprint fits the budget again. Each removal strictly decreases
// the estimate, so the loop terminates at an empty set at the latest.
func (c *Cache) set(entry key) {
	budget := c.budget()
	if budget <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// The loop makes room for the incoming entry, so the estimate is taken
	// one entry ahead of the current count.
	evicted := 0
	for c.entries.len() > 0 && c.usage(c.entries.len()+1, c.entries.capacity()) > budget {
		c.entries.removeAt(c.rnd.Intn(c.entries.len()))
		evicted++
	}
	c.entries.compact()
	if evicted > 0 {
		c.log.Debug("evicted entries to fit memory budget",
			logger.NewField("evicted", evicted),
			logger.NewField("remaining", c.entries.len()),
			logger.NewField("budget_bytes", budget))
	}

	// Even the emptied set can exceed the budget: a budget smaller than a
	// single entry's footprint, or container allocations a shrunken budget
	// has stranded until compaction catches up. Caching stays disabled for
	// such inserts rather than landing one over budget.
	if c.usage(c.entries.len()+1, c.entries.capacity()) > budget {
		return
	}

	c.entries.insert(entry)
}
