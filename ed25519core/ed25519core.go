// Package ed25519core implements the Edwards25519 scalar-multiplication
// core shared by the two clamped-scalar wallet derivations: SHA-512 for
// Nimiq and Blake2b-512 for Nano. Curve arithmetic itself is delegated to
// filippo.io/edwards25519; only the clamping and the choice of 64-byte
// hash function are specific to this package.
package ed25519core

import (
	"math/big"

	"filippo.io/edwards25519"
	"github.com/walletprimitives/walletcrypto/hashes"
	"github.com/walletprimitives/walletcrypto/wcerr"
)

// SeedLen is the required input seed length for both derivations.
const SeedLen = 32

// groupOrder is Ed25519's L = 2^252 + 27742317777372353535851937790883648493.
var groupOrder, _ = new(big.Int).SetString("27742317777372353535851937790883648493", 10)

func init() {
	twoTo252 := new(big.Int).Lsh(big.NewInt(1), 252)
	groupOrder.Add(groupOrder, twoTo252)
}

// clamp applies the standard Ed25519 bit adjustments to the low 32 bytes of
// a 64-byte hash output: clear bits 0,1,2 of byte 0, clear bit 7 of byte
// 31, set bit 6 of byte 31.
func clamp(scalarBytes []byte) {
	scalarBytes[0] &= 0xf8
	scalarBytes[31] &= 0x7f
	scalarBytes[31] |= 0x40
}

// derivePub clamps the low 32 bytes of a 64-byte expanded seed, reduces the
// resulting little-endian scalar mod L, and multiplies the base point.
func derivePub(expanded []byte) ([]byte, error) {
	if len(expanded) != 64 {
		return nil, wcerr.New(wcerr.ErrInvalidLength, "ed25519core: expanded seed must be 64 bytes")
	}
	scalarBytes := make([]byte, 32)
	copy(scalarBytes, expanded[:32])
	clamp(scalarBytes)

	// scalarBytes is little-endian; interpret as such before reducing.
	le := make([]byte, 32)
	for i := 0; i < 32; i++ {
		le[i] = scalarBytes[31-i]
	}
	s := new(big.Int).SetBytes(le)
	s.Mod(s, groupOrder)

	canonical := make([]byte, 32)
	sBytes := s.Bytes()
	for i := 0; i < len(sBytes); i++ {
		canonical[i] = sBytes[len(sBytes)-1-i]
	}

	scalar, err := edwards25519.NewScalar().SetCanonicalBytes(canonical)
	if err != nil {
		return nil, wcerr.New(wcerr.ErrInvalidScalar, "ed25519core: clamped scalar failed to canonicalize")
	}

	point := new(edwards25519.Point).ScalarBaseMult(scalar)
	return point.Bytes(), nil
}

// DeriveNimiqPub derives the 32-byte Ed25519 public key for a 32-byte seed
// using SHA-512 expansion, matching RFC 8032 key generation.
func DeriveNimiqPub(seed []byte) ([]byte, error) {
	if len(seed) != SeedLen {
		return nil, wcerr.New(wcerr.ErrInvalidLength, "ed25519core: seed must be 32 bytes")
	}
	return derivePub(hashes.SHA512(seed))
}

// DeriveNanoPub derives the 32-byte Ed25519 public key for a 32-byte seed
// using Blake2b-512 expansion in place of SHA-512.
func DeriveNanoPub(seed []byte) ([]byte, error) {
	if len(seed) != SeedLen {
		return nil, wcerr.New(wcerr.ErrInvalidLength, "ed25519core: seed must be 32 bytes")
	}
	expanded, err := hashes.Blake2b(seed, 64)
	if err != nil {
		return nil, err
	}
	return derivePub(expanded)
}
