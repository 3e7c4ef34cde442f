// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"
)

func TestIntToBytes32RoundTrip(t *testing.T) {
	tests := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(255),
		new(big.Int).Lsh(big.NewInt(1), 255),
		new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)),
	}

	for i, x := range tests {
		out, err := IntToBytes32(x)
		require.NoErrorf(t, err, "case %d", i)
		got := BytesToInt(out[:])
		require.Truef(t, got.Cmp(x) == 0, "case %d: got %s want %s", i, got, x)
	}
}

func TestIntToBytes32Overflow(t *testing.T) {
	tooBig := new(big.Int).Lsh(big.NewInt(1), 256)
	_, err := IntToBytes32(tooBig)
	require.Error(t, err)

	_, err = IntToBytes32(big.NewInt(-1))
	require.Error(t, err)
}

func TestPointBytesRoundTrip(t *testing.T) {
	priv, err := newTestPrivateKey(t, 1)
	require.NoError(t, err)
	pub := pointFromScalar(priv)

	b, err := PointToBytes(pub)
	require.NoError(t, err)
	require.Len(t, b, PubKeySize)
	require.True(t, b[0] == 0x02 || b[0] == 0x03)

	parsed, err := BytesToPoint(b[:])
	require.NoError(t, err)
	require.True(t, parsed.X().Cmp(pub.X()) == 0)
	require.True(t, parsed.Y().Cmp(pub.Y()) == 0)
}

func TestBytesToPointRejectsBadPrefix(t *testing.T) {
	priv, err := newTestPrivateKey(t, 1)
	require.NoError(t, err)
	pub := pointFromScalar(priv)
	b, err := PointToBytes(pub)
	require.NoError(t, err)

	for _, prefix := range []byte{0x04, 0x00, 0x01, 0x05} {
		bad := b
		bad[0] = prefix
		_, err := BytesToPoint(bad[:])
		require.ErrorIs(t, err, ErrPubKeyNotOnCurve)
	}
}

func TestBytesToPointRejectsBadLength(t *testing.T) {
	_, err := BytesToPoint(make([]byte, 32))
	require.ErrorIs(t, err, ErrPubKeyNotOnCurve)

	_, err = BytesToPoint(make([]byte, 34))
	require.ErrorIs(t, err, ErrPubKeyNotOnCurve)
}

// newTestPrivateKey returns a deterministic, non-zero ModNScalar useful
// across this package's tests.
func newTestPrivateKey(t *testing.T, seed byte) (*secp256k1.ModNScalar, error) {
	t.Helper()
	var buf [32]byte
	buf[31] = seed
	var d secp256k1.ModNScalar
	d.SetByteSlice(buf[:])
	return &d, nil
}
