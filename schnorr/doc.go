// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package schnorr implements the historical "bip-schnorr" signature scheme
over secp256k1: deterministic single-signer signing and verification,
batch verification via one multi-scalar check, and two multi-signer
key-aggregation schemes (naive additive aggregation and non-interactive
MuSig aggregation).

This predates BIP-340. The challenge hash is plain SHA-256 over
Rx || Pbytes || m, not BIP-340's domain-tagged hash, and the nonce-point R
is normalized by Jacobi symbol of its y-coordinate rather than by parity,
so signatures produced here are not BIP-340 compatible and must not be
mixed with it.

Field and curve arithmetic is delegated entirely to
github.com/decred/dcrd/dcrec/secp256k1/v4; this package treats it as an
external collaborator and never reimplements modular arithmetic, scalar
multiplication, or point addition itself.

Every operation here is a pure function: no mutable shared state, no I/O,
no timeouts. Multiple signers and verifiers may run concurrently on
different goroutines without coordination, since the curve collaborator
is documented thread-safe for its non-mutating operations.
*/
package schnorr
