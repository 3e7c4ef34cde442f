// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// combinedNonceSum derives each participant's own deterministic nonce
// from (di, m), sums the resulting nonce points into one combined R, and
// returns the per-participant nonce scalars alongside R's x-coordinate.
//
// The combined R depends only on the participants' private scalars and
// m, never on how their public keys are subsequently aggregated; naive
// additive aggregation and MuSig aggregation of the same participants
// and message therefore always share the same Rx, differing only in the
// effective scalar multiplied against the challenge.
//
// If the combined R is at infinity, or its y-coordinate is not a
// quadratic residue and negating every nonce in lockstep is required,
// both cases are handled the same way single-signer Sign handles them.
func combinedNonceSum(ds []secp256k1.ModNScalar, m [32]byte) ([]secp256k1.ModNScalar, [32]byte, error) {
	ks := make([]secp256k1.ModNScalar, len(ds))
	var Rsum secp256k1.JacobianPoint
	for i := range ds {
		k, err := deriveNonce(&ds[i], m)
		if err != nil {
			return nil, [32]byte{}, err
		}
		ks[i] = k

		Ri := pointFromScalar(&k)
		var RiJ secp256k1.JacobianPoint
		Ri.AsJacobian(&RiJ)

		var next secp256k1.JacobianPoint
		secp256k1.AddNonConst(&Rsum, &RiJ, &next)
		Rsum = next
	}

	if Rsum.Z.IsZero() {
		return nil, [32]byte{}, ErrNonceIsZero
	}
	Rsum.ToAffine()

	if !isQuadraticResidue(&Rsum.Y) {
		for i := range ks {
			ks[i].Negate()
		}
	}

	return ks, *Rsum.X.Bytes(), nil
}

// assembleSignature computes e = HashChallenge(rx, pBytes, m) and
// s = sum(ks) + e*effectiveD, returning the 64-byte (rx || s) signature.
func assembleSignature(ks []secp256k1.ModNScalar, rxBytes [32]byte, pBytes []byte, m [32]byte, effectiveD *secp256k1.ModNScalar) [SignatureSize]byte {
	var sig [SignatureSize]byte

	e := HashChallenge(rxBytes[:], pBytes, m[:])

	var kSum secp256k1.ModNScalar
	for i := range ks {
		kSum.Add(&ks[i])
	}

	var ed secp256k1.ModNScalar
	ed.Mul2(&e, effectiveD)
	var s secp256k1.ModNScalar
	s.Add2(&kSum, &ed)

	sBytes := s.Bytes()
	copy(sig[:32], rxBytes[:])
	copy(sig[32:], sBytes[:])
	return sig
}
