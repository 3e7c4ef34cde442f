package secp256k1

import (
	"crypto"
	"fmt"
	"io"

	"github.com/ModChain/secp256k1/schnorr"
)

// SignOptions lets callers pass a crypto.SignerOpts through the
// crypto.Signer interface. The Schnorr core does not hash the message
// itself; m is an opaque 32-byte octet string. Hash is only reported by
// HashFunc: Sign does not consult it and requires a 32-byte digest
// regardless.
type SignOptions struct {
	Hash crypto.Hash
}

func (s *SignOptions) HashFunc() crypto.Hash {
	return s.Hash
}

// Sign signs the provided 32-byte digest, returning the 64-byte
// (Rx || s) Schnorr signature described by the schnorr subpackage. rand
// and opts are accepted to satisfy crypto.Signer; the core is
// deterministic and ignores both.
func (privkey *PrivateKey) Sign(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	if len(digest) != 32 {
		return nil, fmt.Errorf("secp256k1: digest must be 32 bytes, got %d", len(digest))
	}
	var m [32]byte
	copy(m[:], digest)

	sig, err := schnorr.Sign(&privkey.Key, m)
	if err != nil {
		return nil, err
	}
	return sig[:], nil
}
