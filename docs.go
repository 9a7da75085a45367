// Package sigcache provides a bounded, concurrency-safe cache of already
// verified signatures. It sits in front of an expensive verification
// primitive and short-circuits repeated checks of the same (message digest,
// public key, signature) triple, for example a transaction that is verified
// once on admission and again on confirmation.
//
// Cache entries are not the verification inputs themselves, but a keyed
// BLAKE2b digest of them. The key is a secret 32-byte nonce generated from a
// cryptographically secure source once per cache instance, so an external
// party can neither predict nor pre-compute entries.
//
// The cache never grows past a configured byte budget. The budget is re-read
// on every insert, so runtime reconfiguration takes effect immediately.
// Eviction is approximate: uniformly random victims are removed until the
// estimated footprint fits again, with no recency bookkeeping and no
// per-entry metadata.
//
// Every cache is an explicitly constructed instance owned by its caller.
// Failures are never cached; only "verified valid" facts are stored.
package sigcache
