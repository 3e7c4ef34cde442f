// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ErrZeroPrivateKey is returned when the private scalar passed to Sign is
// zero. Like ErrNonceIsZero, this is a catastrophic precondition failure
// rather than one of the canonical verification error kinds.
var ErrZeroPrivateKey = errors.New("secp256k1/schnorr: private scalar is zero")

// pointFromScalar computes k*G and returns it as an affine PublicKey.
func pointFromScalar(k *secp256k1.ModNScalar) *secp256k1.PublicKey {
	var R secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(k, &R)
	R.ToAffine()
	return secp256k1.NewPublicKey(&R.X, &R.Y)
}

// Sign produces a 64-byte (Rx || s) Schnorr signature over the 32-byte
// message m under the private scalar d:
//
//  1. P = d*G
//  2. k' = deterministic nonce derived from (d, m)
//  3. k = k' if Jacobi(R.y) = +1, else n - k', where R = k'*G
//  4. e = HashChallenge(Rx, Pbytes, m)
//  5. s = k + e*d mod n
//
// Failures are limited to catastrophic preconditions: d = 0, or a
// derived nonce that happens to be zero.
func Sign(d *secp256k1.ModNScalar, m [32]byte) ([SignatureSize]byte, error) {
	var sig [SignatureSize]byte

	if d.IsZero() {
		return sig, ErrZeroPrivateKey
	}

	P := pointFromScalar(d)
	PBytes, err := PointToBytes(P)
	if err != nil {
		return sig, err
	}

	ks, rxBytes, err := combinedNonceSum([]secp256k1.ModNScalar{*d}, m)
	if err != nil {
		return sig, err
	}

	return assembleSignature(ks, rxBytes, PBytes[:], m, d), nil
}
