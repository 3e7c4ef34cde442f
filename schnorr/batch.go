// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// CoefficientSource supplies the per-equation random coefficients a batch
// verification uses to defeat adversarial cancellation. Coefficient is
// never called for index 0; BatchVerify always fixes a0 = 1 itself.
type CoefficientSource interface {
	Coefficient(index int, pubKeyBytes, m, sig []byte) secp256k1.ModNScalar
}

// HashCoefficients is a deterministic CoefficientSource, useful for
// reproducible tests: the coefficient for index i is
// bytes_to_int(SHA256(i || pubKeyBytes || m || sig)) mod n. Two batches
// built from identical inputs always produce identical coefficients.
type HashCoefficients struct{}

// Coefficient implements CoefficientSource.
func (HashCoefficients) Coefficient(index int, pubKeyBytes, m, sig []byte) secp256k1.ModNScalar {
	var idx [8]byte
	binary.BigEndian.PutUint64(idx[:], uint64(index))

	h := sha256.New()
	h.Write(idx[:])
	h.Write(pubKeyBytes)
	h.Write(m)
	h.Write(sig)
	sum := h.Sum(nil)

	var a secp256k1.ModNScalar
	a.SetByteSlice(sum)
	if a.IsZero() {
		a.SetInt(1)
	}
	return a
}

// RandomCoefficients is a CoefficientSource backed by crypto/rand,
// suitable for production batch verification where reproducibility is
// not required.
type RandomCoefficients struct{}

// Coefficient implements CoefficientSource.
func (RandomCoefficients) Coefficient(index int, pubKeyBytes, m, sig []byte) secp256k1.ModNScalar {
	var buf [32]byte
	var a secp256k1.ModNScalar
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			// crypto/rand.Read only fails if the system CSPRNG is
			// broken; there is no sane fallback.
			panic(err)
		}
		a.SetByteSlice(buf[:])
		if !a.IsZero() {
			return a
		}
	}
}

// BatchVerify verifies u signatures with one multi-scalar check. It
// returns nil iff every individual signature would verify under Verify;
// otherwise it returns ErrVerificationFailed without identifying which
// index failed.
func BatchVerify(pubKeys, msgs, sigs [][]byte, src CoefficientSource) error {
	u := len(pubKeys)
	if len(msgs) != u || len(sigs) != u {
		return makeError(ErrVerificationFailed, string(ErrVerificationFailed))
	}
	if u == 0 {
		return nil
	}
	if src == nil {
		src = HashCoefficients{}
	}

	var sumS secp256k1.ModNScalar
	var rhs secp256k1.JacobianPoint // accumulates sum(ai*Ri) + sum(ai*ei*Pi)

	for i := 0; i < u; i++ {
		if len(msgs[i]) != MessageSize || len(sigs[i]) != SignatureSize {
			return makeError(ErrVerificationFailed, string(ErrVerificationFailed))
		}

		P, err := BytesToPoint(pubKeys[i])
		if err != nil {
			return makeError(ErrVerificationFailed, string(ErrVerificationFailed))
		}

		rBytes := sigs[i][0:32]
		sBytes := sigs[i][32:64]

		var rField secp256k1.FieldVal
		if overflow := rField.SetByteSlice(rBytes); overflow {
			return makeError(ErrVerificationFailed, string(ErrVerificationFailed))
		}
		rField.Normalize()

		var s secp256k1.ModNScalar
		if overflow := s.SetByteSlice(sBytes); overflow {
			return makeError(ErrVerificationFailed, string(ErrVerificationFailed))
		}

		Ry, err := liftX(&rField)
		if err != nil {
			return makeError(ErrVerificationFailed, string(ErrVerificationFailed))
		}
		var R secp256k1.JacobianPoint
		R.X = rField
		R.Y = Ry
		R.Z.SetInt(1)

		e := HashChallenge(rBytes, pubKeys[i], msgs[i])

		var a secp256k1.ModNScalar
		if i == 0 {
			a.SetInt(1)
		} else {
			a = src.Coefficient(i, pubKeys[i], msgs[i], sigs[i])
		}

		// sumS += a*s
		var as secp256k1.ModNScalar
		as.Mul2(&a, &s)
		sumS.Add(&as)

		// rhs += a*R
		var aR secp256k1.JacobianPoint
		secp256k1.ScalarMultNonConst(&a, &R, &aR)
		var rhsNext secp256k1.JacobianPoint
		secp256k1.AddNonConst(&rhs, &aR, &rhsNext)
		rhs = rhsNext

		// rhs += (a*e)*P
		var ae secp256k1.ModNScalar
		ae.Mul2(&a, &e)
		var Pj, aeP secp256k1.JacobianPoint
		P.AsJacobian(&Pj)
		secp256k1.ScalarMultNonConst(&ae, &Pj, &aeP)
		secp256k1.AddNonConst(&rhs, &aeP, &rhsNext)
		rhs = rhsNext
	}

	var lhs secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&sumS, &lhs)

	rhs.ToAffine()
	lhs.ToAffine()

	if lhs.X.Equals(&rhs.X) && lhs.Y.Equals(&rhs.Y) {
		return nil
	}
	return makeError(ErrVerificationFailed, string(ErrVerificationFailed))
}
