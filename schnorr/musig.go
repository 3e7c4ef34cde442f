// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	"crypto/sha256"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// MuSigNonInteractive signs m under the MuSig-weighted sum of public keys
// X = sum(ai*Xi), where Xi = xi*G and ai = H(L || Xi).
// Unlike NaiveKeyAggregation, this is secure against rogue-key attacks:
// an adversary cannot bias the ai weights toward their own key without
// knowing it in advance, since L commits to every participant's key.
//
// Participant ordering matters: a different ordering of xs produces
// different ai weights and therefore a different aggregated key X.
//
// As with NaiveKeyAggregation, each participant's nonce is derived from
// their own private scalar and m and the nonce points are summed
// independently of the MuSig weighting; signing the same participants
// and message under naive aggregation and under MuSig therefore always
// produces the same Rx, differing only in s.
//
// It returns the 64-byte signature along with the aggregated public key
// X (33-byte compressed), since verification against X requires knowing
// it; verification itself is the ordinary Verify.
func MuSigNonInteractive(xs []secp256k1.ModNScalar, m [32]byte) ([SignatureSize]byte, [PubKeySize]byte, error) {
	var sig [SignatureSize]byte
	var aggBytes [PubKeySize]byte

	u := len(xs)
	XiBytes := make([][PubKeySize]byte, u)
	for i := range xs {
		if xs[i].IsZero() {
			return sig, aggBytes, ErrZeroPrivateKey
		}
		b, err := PointToBytes(pointFromScalar(&xs[i]))
		if err != nil {
			return sig, aggBytes, err
		}
		XiBytes[i] = b
	}

	h := sha256.New()
	for i := range XiBytes {
		h.Write(XiBytes[i][:])
	}
	L := h.Sum(nil)

	var xSum secp256k1.ModNScalar
	for i := range xs {
		hi := sha256.New()
		hi.Write(L)
		hi.Write(XiBytes[i][:])
		var a secp256k1.ModNScalar
		a.SetByteSlice(hi.Sum(nil))

		var aXi secp256k1.ModNScalar
		aXi.Mul2(&a, &xs[i])
		xSum.Add(&aXi)
	}
	if xSum.IsZero() {
		return sig, aggBytes, ErrZeroPrivateKey
	}

	ks, rxBytes, err := combinedNonceSum(xs, m)
	if err != nil {
		return sig, aggBytes, err
	}

	X := pointFromScalar(&xSum)
	aggBytes, err = PointToBytes(X)
	if err != nil {
		return sig, aggBytes, err
	}

	sig = assembleSignature(ks, rxBytes, aggBytes[:], m, &xSum)
	return sig, aggBytes, nil
}
