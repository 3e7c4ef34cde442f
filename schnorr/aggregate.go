// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// NaiveKeyAggregation signs m under the sum of the given private scalars,
// producing a standard 64-byte signature verifiable against
// (d1+...+du)*G.
//
// Each participant's nonce is still derived from their own private
// scalar and m, and the nonce points are summed independently of how the
// signing scalars are aggregated (see combinedNonceSum); only the
// challenge term e*(d1+...+du) depends on the naive aggregation scheme.
//
// This scheme is insecure against rogue-key attacks in a model where an
// adversary can choose their public key as a function of the honest
// signers' keys; it is retained for compatibility with legacy test
// vectors. Prefer MuSigNonInteractive for new code.
func NaiveKeyAggregation(ds []secp256k1.ModNScalar, m [32]byte) ([SignatureSize]byte, error) {
	var sig [SignatureSize]byte

	var sum secp256k1.ModNScalar
	for i := range ds {
		sum.Add(&ds[i])
	}
	if sum.IsZero() {
		return sig, ErrZeroPrivateKey
	}

	ks, rxBytes, err := combinedNonceSum(ds, m)
	if err != nil {
		return sig, err
	}

	P := pointFromScalar(&sum)
	PBytes, err := PointToBytes(P)
	if err != nil {
		return sig, err
	}

	return assembleSignature(ks, rxBytes, PBytes[:], m, &sum), nil
}
