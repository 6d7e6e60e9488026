// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1 implements the secp256k1 elliptic curve operations needed
to derive wallet public keys from private keys and to move between the
compressed and uncompressed public-key encodings.

This is a from-scratch derivation engine, not a general-purpose ECDSA
package: it covers exactly what a wallet needs and no more.

  - Scalar multiplication of the base point (group generator) for private
    to public key derivation, k*G in [1, n-1]
  - Point compression (33-byte 0x02/0x03-prefixed form) and decompression
    via the curve equation y² = x³ + 7
  - Expansion between compressed and uncompressed (65-byte 0x04-prefixed)
    encodings
  - Wallet Import Format (WIF) encoding of private keys

See https://www.secg.org/sec2-v2.pdf for the standard this curve conforms
to.
*/
package secp256k1
