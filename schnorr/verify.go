// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Verify checks a single (pubKeyBytes, m, sig) triple:
//
//  1. P = BytesToPoint(pubKeyBytes)
//  2. r, s = sig[:32], sig[32:]; reject out-of-range values
//  3. e = HashChallenge(sig[:32], pubKeyBytes, m)
//  4. R = s*G - e*P
//  5. reject R at infinity, R.y not a quadratic residue, or R.x != r
//
// It returns nil on success. Every rejection returns one of the canonical
// Error values from errors.go so callers can distinguish the exact
// failure mode.
func Verify(pubKeyBytes, m, sig []byte) error {
	if len(m) != MessageSize {
		return makeError(ErrVerificationFailed, string(ErrVerificationFailed))
	}
	if len(sig) != SignatureSize {
		return makeError(ErrVerificationFailed, string(ErrVerificationFailed))
	}

	P, err := BytesToPoint(pubKeyBytes)
	if err != nil {
		return err
	}

	rBytes := sig[0:32]
	sBytes := sig[32:64]

	var rField secp256k1.FieldVal
	if overflow := rField.SetByteSlice(rBytes); overflow {
		return makeError(ErrRTooBig, string(ErrRTooBig))
	}
	rField.Normalize()
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(sBytes); overflow {
		return makeError(ErrSTooBig, string(ErrSTooBig))
	}

	e := HashChallenge(rBytes, pubKeyBytes, m)

	var Pj secp256k1.JacobianPoint
	P.AsJacobian(&Pj)

	var sG, eP, R secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&s, &sG)
	e.Negate()
	secp256k1.ScalarMultNonConst(&e, &Pj, &eP)
	secp256k1.AddNonConst(&sG, &eP, &R)

	if R.Z.IsZero() {
		return makeError(ErrPointAtInfinity, string(ErrPointAtInfinity))
	}
	R.ToAffine()

	if !isQuadraticResidue(&R.Y) {
		return makeError(ErrNotQuadraticResidue, string(ErrNotQuadraticResidue))
	}

	if !R.X.Equals(&rField) {
		return makeError(ErrVerificationFailed, string(ErrVerificationFailed))
	}

	return nil
}
