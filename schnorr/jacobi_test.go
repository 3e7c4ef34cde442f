// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"
)

func TestLiftXAlwaysReturnsQuadraticResidue(t *testing.T) {
	for seed := byte(1); seed < 25; seed++ {
		d, err := newTestPrivateKey(t, seed)
		require.NoError(t, err)

		pub := pointFromScalar(d)
		var pubJ secp256k1.JacobianPoint
		pub.AsJacobian(&pubJ)
		pubJ.ToAffine()

		y, err := liftX(&pubJ.X)
		require.NoError(t, err)
		require.True(t, isQuadraticResidue(&y))

		// liftX must recover one of the two curve points at this x:
		// either pub.Y itself, or its negation.
		var negY secp256k1.FieldVal
		negY.Set(&pubJ.Y).Negate(1).Normalize()
		require.True(t, y.Equals(&pubJ.Y) || y.Equals(&negY))
	}
}

func TestLiftXRejectsNonCurveX(t *testing.T) {
	// x = 0 gives y^2 = 7, and 7 is not a quadratic residue mod p, so no
	// curve point has x = 0; liftX must fail closed with ErrRNotOnCurve.
	var x secp256k1.FieldVal
	x.SetInt(0)
	_, err := liftX(&x)
	require.ErrorIs(t, err, ErrRNotOnCurve)
}

func TestIsQuadraticResidueRejectsZero(t *testing.T) {
	var zero secp256k1.FieldVal
	require.False(t, isQuadraticResidue(&zero))
}
