package sigcache

import (
	"fmt"
	"sync/atomic"
)

// VerifyFunc is the raw verification primitive the cache accelerates. It
// reports whether signature is a valid signature of digest under publicKey.
// Implementations must be safe for concurrent use.
type VerifyFunc func(signature []byte, publicKey []byte, digest [digestSize]byte) bool

// Verifier is a caching view over a shared Cache. Several Verifier instances
// with different policies may share one Cache, e.g. a persisting one at
// admission and a consuming one at confirmation.
type Verifier struct {
	cache  *Cache
	verify VerifyFunc
	store  bool
}

// NewVerifier wraps the raw primitive verify with cache. store controls
// whether successful verifications are persisted: with store=false a cache
// hit consumes its entry, so the cache acts as a one-shot confirmation.
func NewVerifier(cache *Cache, verify VerifyFunc, store bool) (*Verifier, error) {
	if cache == nil {
		return nil, fmt.Errorf("sigcache: cache must not be nil")
	}
	if verify == nil {
		return nil, fmt.Errorf("sigcache: verify must not be nil")
	}

	return &Verifier{
		cache:  cache,
		verify: verify,
		store:  store,
	}, nil
}

// VerifySignature reports whether signature is a valid signature of digest
// under publicKey, consulting the cache before delegating to the raw
// primitive. Failed verifications are never cached: a false result from the
// primitive is returned as-is and the next identical call verifies again.
// Safe for concurrent use.
func (v *Verifier) VerifySignature(signature []byte, publicKey []byte, digest [digestSize]byte) bool {
	entry := deriveKey(v.cache.nonce, digest, publicKey, signature)

	if v.cache.contains(entry) {
		atomic.AddUint64(&v.cache.hits, 1)
		if !v.store {
			v.cache.erase(entry)
		}
		return true
	}
	atomic.AddUint64(&v.cache.misses, 1)

	if !v.verify(signature, publicKey, digest) {
		return false
	}

	if v.store {
		v.cache.set(entry)
	}
	return true
}
