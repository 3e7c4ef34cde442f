// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// fieldB is the secp256k1 curve parameter B (y^2 = x^3 + B).
func fieldB() secp256k1.FieldVal {
	var b secp256k1.FieldVal
	b.SetInt(7)
	return b
}

// isQuadraticResidue reports whether y has Jacobi symbol +1 over the
// secp256k1 field, i.e. whether y is a nonzero quadratic residue mod p.
//
// The curve collaborator (github.com/decred/dcrd/dcrec/secp256k1/v4) does
// not export a Jacobi-symbol function directly, only a square-root
// candidate via FieldVal.SquareRootVal. Since p ≡ 3 (mod 4) for secp256k1, y is
// a quadratic residue exactly when squaring that candidate reproduces y,
// which is the same square-and-compare idiom the collaborator's own
// point-decompression logic uses internally.
func isQuadraticResidue(y *secp256k1.FieldVal) bool {
	if y.IsZero() {
		return false
	}

	var yn secp256k1.FieldVal
	yn.Set(y).Normalize()

	var candidate, check secp256k1.FieldVal
	candidate.SquareRootVal(&yn)
	candidate.Normalize()
	check.SquareVal(&candidate).Normalize()

	return check.Equals(&yn)
}

// liftX recovers the Jacobi-positive y-coordinate for the given
// x-coordinate on the secp256k1 curve (y^2 = x^3 + 7), returning
// ErrRNotOnCurve if x is not a valid curve x-coordinate.
func liftX(x *secp256k1.FieldVal) (secp256k1.FieldVal, error) {
	var xn secp256k1.FieldVal
	xn.Set(x).Normalize()

	var rhs secp256k1.FieldVal
	b := fieldB()
	rhs.SquareVal(&xn).Mul(&xn).Add(&b).Normalize()

	var y, check secp256k1.FieldVal
	y.SquareRootVal(&rhs)
	y.Normalize()
	check.SquareVal(&y).Normalize()
	if !check.Equals(&rhs) {
		return secp256k1.FieldVal{}, makeError(ErrRNotOnCurve, string(ErrRNotOnCurve))
	}

	if !isQuadraticResidue(&y) {
		y.Negate(1).Normalize()
	}
	return y, nil
}
