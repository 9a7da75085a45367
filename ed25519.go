package sigcache

import "crypto/ed25519"

// Ed25519 returns a VerifyFunc backed by crypto/ed25519. Inputs with a wrong
// public key or signature length are reported as invalid rather than passed
// to the primitive.
func Ed25519() VerifyFunc {
	return func(signature []byte, publicKey []byte, digest [digestSize]byte) bool {
		if len(publicKey) != ed25519.PublicKeySize {
			return false
		}
		if len(signature) != ed25519.SignatureSize {
			return false
		}
		return ed25519.Verify(ed25519.PublicKey(publicKey), digest[:], signature)
	}
}
