// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	"crypto/sha256"
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ErrNonceIsZero is returned in the astronomically unlikely case that a
// deterministically derived nonce reduces to zero mod the curve order.
// Per spec this is a catastrophic precondition failure, not one of the
// canonical verification error kinds.
var ErrNonceIsZero = errors.New("secp256k1/schnorr: derived nonce is zero")

// deriveNonce computes the deterministic nonce k' = bytes_to_int(SHA256(d
// || m)) mod n for the private scalar d and message m. Two calls with the
// same (d, m) always produce the same nonce.
//
// It fails only in the astronomically unlikely case that the derived
// nonce reduces to zero mod n.
func deriveNonce(d *secp256k1.ModNScalar, m [32]byte) (secp256k1.ModNScalar, error) {
	dBytes := d.Bytes()

	h := sha256.New()
	h.Write(dBytes[:])
	h.Write(m[:])
	sum := h.Sum(nil)

	var k secp256k1.ModNScalar
	k.SetByteSlice(sum)
	if k.IsZero() {
		return k, ErrNonceIsZero
	}
	return k, nil
}
