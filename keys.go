// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/rand"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PrivateKey is a secp256k1 private key. It is defined locally (not
// aliased) so this package can declare its own crypto.Signer methods on
// it; its underlying type is identical to secp256k1.PrivateKey, so the
// two convert freely.
type PrivateKey secp256k1.PrivateKey

// PublicKey is a secp256k1 public key, aliased from the underlying curve
// implementation.
type PublicKey = secp256k1.PublicKey

// GeneratePrivateKey returns a cryptographically random private key.
//
// Key generation is outside the scope of this module's Schnorr core (see
// the schnorr subpackage), which treats the private scalar as an opaque
// input; this helper exists purely so callers have somewhere to get one
// from.
func GeneratePrivateKey() (*PrivateKey, error) {
	var buf [32]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return nil, fmt.Errorf("secp256k1: reading randomness: %w", err)
		}
		priv := secp256k1.PrivKeyFromBytes(buf[:])
		if priv.Key.IsZero() {
			continue
		}
		return (*PrivateKey)(priv), nil
	}
}

// ParsePubKey parses a 33-byte compressed public key.
func ParsePubKey(serialized []byte) (*PublicKey, error) {
	return secp256k1.ParsePubKey(serialized)
}
