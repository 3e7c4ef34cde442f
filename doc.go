// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1 provides the public key types used by this module's
Schnorr signature core, and a convenience crypto.Signer adapter over it.

The actual field and curve arithmetic is not implemented here. It is
delegated entirely to github.com/decred/dcrd/dcrec/secp256k1/v4, a vetted
pure-Go secp256k1 implementation; this package only re-exposes the key
types that implementation provides and wires them into the schnorr
subpackage.

An overview of what this package provides:

  - PrivateKey, a defined type over the curve implementation's private
    key so this package can attach its own crypto.Signer method to it;
    PublicKey, aliased directly from the curve implementation
  - GeneratePrivateKey, for callers that need a fresh signing key
  - A crypto.Signer-compatible adapter producing the 64-byte signatures
    defined by the schnorr subpackage

See the schnorr subpackage for the signing, verification, batch
verification, and key-aggregation core.
*/
package secp256k1
