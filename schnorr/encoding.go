// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PubKeySize is the length in bytes of a compressed public key: a 1-byte
// parity prefix followed by the 32-byte big-endian x-coordinate.
const PubKeySize = 33

// MessageSize is the length in bytes of the opaque message this package
// signs and verifies over.
const MessageSize = 32

// SignatureSize is the length in bytes of a Schnorr signature: Rx (32
// bytes, big-endian) concatenated with s (32 bytes, big-endian).
const SignatureSize = 64

// IntToBytes32 encodes x as 32 big-endian bytes. It fails if x does not
// fit in 256 bits or is negative.
func IntToBytes32(x *big.Int) ([32]byte, error) {
	var out [32]byte
	if x.Sign() < 0 {
		return out, fmt.Errorf("secp256k1/schnorr: negative integer cannot be encoded")
	}
	if x.BitLen() > 256 {
		return out, fmt.Errorf("secp256k1/schnorr: integer does not fit in 32 bytes")
	}
	x.FillBytes(out[:])
	return out, nil
}

// BytesToInt decodes a big-endian octet string of any length into a
// non-negative integer.
func BytesToInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// PointToBytes returns the 33-byte compressed encoding of P: a leading
// 0x02 (even y) or 0x03 (odd y) byte followed by the 32-byte big-endian
// x-coordinate. It fails if P is the point at infinity.
func PointToBytes(P *secp256k1.PublicKey) ([PubKeySize]byte, error) {
	var out [PubKeySize]byte
	if P.X().Sign() == 0 && P.Y().Sign() == 0 {
		return out, makeError(ErrPubKeyNotOnCurve, "cannot encode point at infinity")
	}
	copy(out[:], P.SerializeCompressed())
	return out, nil
}

// BytesToPoint parses a 33-byte compressed public key encoding. It
// rejects invalid lengths, invalid parity prefixes, x >= p, and x values
// that do not correspond to a point on the curve.
func BytesToPoint(b []byte) (*secp256k1.PublicKey, error) {
	if len(b) != PubKeySize {
		return nil, makeError(ErrPubKeyNotOnCurve, "public key not on curve")
	}
	if b[0] != 0x02 && b[0] != 0x03 {
		return nil, makeError(ErrPubKeyNotOnCurve, "public key not on curve")
	}
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, makeError(ErrPubKeyNotOnCurve, "public key not on curve")
	}
	return pub, nil
}

// TaggedHash hashes the concatenation of data with plain SHA-256.
//
// This predates BIP-340's domain-separated tagged hash construction
// (SHA256(SHA256(tag) || SHA256(tag) || data)); tag is accepted only for
// naming parity with that later convention and is not mixed into the
// hash, per the historical "bip-schnorr" draft this package implements.
func TaggedHash(tag string, data ...[]byte) []byte {
	h := sha256.New()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// HashChallenge computes e = SHA256(Rx || Pbytes || m), reduced mod the
// curve order n.
func HashChallenge(rx, pbytes, m []byte) secp256k1.ModNScalar {
	sum := TaggedHash("", rx, pbytes, m)
	var e secp256k1.ModNScalar
	e.SetByteSlice(sum)
	return e
}
