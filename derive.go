package sigcache

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// key is a single cache entry: a keyed BLAKE2b-256 digest of one previously
// verified (message digest, public key, signature) triple.
type key [blake2b.Size256]byte

// deriveKey computes the cache entry for a verification triple as
// BLAKE2b-256 keyed with the secret nonce. Public key and signature are
// variable-length fields, so both are length-prefixed before hashing;
// otherwise two pairs that redistribute bytes across the same total length
// would collide.
func deriveKey(nonce [nonceSize]byte, digest [digestSize]byte, publicKey []byte, signature []byte) key {
	h, _ := blake2b.New256(nonce[:]) // err is always nil

	var prefix [4]byte

	h.Write(digest[:])

	binary.LittleEndian.PutUint32(prefix[:], uint32(len(publicKey)))
	h.Write(prefix[:])
	h.Write(publicKey)

	binary.LittleEndian.PutUint32(prefix[:], uint32(len(signature)))
	h.Write(prefix[:])
	h.Write(signature)

	var entry key
	h.Sum(entry[:0])
	return entry
}
