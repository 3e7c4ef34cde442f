// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	"encoding/hex"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"
)

// TestNaiveKeyAggregationVectorS2 checks NaiveKeyAggregation against the
// S2 concrete scenario: two known private scalars and a known message
// produce an exact, known aggregated signature and sum point.
func TestNaiveKeyAggregationVectorS2(t *testing.T) {
	tests := []struct {
		name    string
		d1      string
		d2      string
		m       string
		wantSig string
		wantPub string
	}{
		{
			name:    "S2",
			d1:      "B7E151628AED2A6ABF7158809CF4F3C762E7160F38B4DA56A784D9045190CFEF",
			d2:      "C90FDAA22168C234C4C6628B80DC1CD129024E088A67CC74020BBEA63B14E5C7",
			m:       "243F6A8885A308D313198A2E03707344A4093822299F31D0082EFA98EC4E6C89",
			wantSig: "d60d7f81c15d57b04f8f6074de17f1b9eef2e0a9c9b2e93550c15b45d6998dc24ef5e393b356e7c334f36cee15e0f5f1e9ce06e7911793ddb9bd922d545b7525",
			wantPub: "03f0a6305d39a34582ba49a78bdf38ced935b3efce1e889d6820103665f35ee45b",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d1Bytes, err := hex.DecodeString(tc.d1)
			require.NoError(t, err)
			d2Bytes, err := hex.DecodeString(tc.d2)
			require.NoError(t, err)
			mBytes, err := hex.DecodeString(tc.m)
			require.NoError(t, err)
			wantSig, err := hex.DecodeString(tc.wantSig)
			require.NoError(t, err)
			wantPub, err := hex.DecodeString(tc.wantPub)
			require.NoError(t, err)

			var d1, d2 secp256k1.ModNScalar
			d1.SetByteSlice(d1Bytes)
			d2.SetByteSlice(d2Bytes)
			var m [32]byte
			copy(m[:], mBytes)

			sig, err := NaiveKeyAggregation([]secp256k1.ModNScalar{d1, d2}, m)
			require.NoError(t, err)
			require.Equal(t, wantSig, sig[:])

			var sum secp256k1.ModNScalar
			sum.Add2(&d1, &d2)
			pub, err := PointToBytes(pointFromScalar(&sum))
			require.NoError(t, err)
			require.Equal(t, wantPub, pub[:])

			err = Verify(pub[:], m[:], sig[:])
			require.NoError(t, err)
		})
	}
}

func TestNaiveKeyAggregationVerifies(t *testing.T) {
	d1, err := newTestPrivateKey(t, 11)
	require.NoError(t, err)
	d2, err := newTestPrivateKey(t, 22)
	require.NoError(t, err)
	d3, err := newTestPrivateKey(t, 33)
	require.NoError(t, err)

	var m [32]byte
	copy(m[:], []byte("naive aggregate message, 32b!!!"))

	sig, err := NaiveKeyAggregation([]secp256k1.ModNScalar{*d1, *d2, *d3}, m)
	require.NoError(t, err)

	var sum secp256k1.ModNScalar
	sum.Add2(d1, d2)
	sum.Add(d3)
	aggPub := pointFromScalar(&sum)
	aggBytes, err := PointToBytes(aggPub)
	require.NoError(t, err)

	err = Verify(aggBytes[:], m[:], sig[:])
	require.NoError(t, err)
}

func TestNaiveKeyAggregationRejectsZeroSum(t *testing.T) {
	d, err := newTestPrivateKey(t, 5)
	require.NoError(t, err)
	var negD secp256k1.ModNScalar
	negD.NegateVal(d)

	var m [32]byte
	_, err = NaiveKeyAggregation([]secp256k1.ModNScalar{*d, negD}, m)
	require.ErrorIs(t, err, ErrZeroPrivateKey)
}
