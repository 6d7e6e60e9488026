// Package hashes wraps the hash primitives needed by the curve engines and
// address codecs: SHA-256, SHA-512, RIPEMD-160, Keccak-256, Blake2b with a
// caller-chosen output length, and HMAC-SHA-256/512.
package hashes

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"

	"github.com/walletprimitives/walletcrypto/wcerr"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required for hash160
	"golang.org/x/crypto/sha3"
)

// SHA256 returns the FIPS 180-4 SHA-256 digest of msg.
func SHA256(msg []byte) []byte {
	h := sha256.Sum256(msg)
	return h[:]
}

// SHA512 returns the FIPS 180-4 SHA-512 digest of msg.
func SHA512(msg []byte) []byte {
	h := sha512.Sum512(msg)
	return h[:]
}

// RIPEMD160 returns the RIPEMD-160 digest of msg.
func RIPEMD160(msg []byte) []byte {
	h := ripemd160.New()
	h.Write(msg)
	return h.Sum(nil)
}

// Keccak256 returns the pre-NIST Keccak-256 digest of msg (padding byte
// 0x01, as used by Ethereum), not the SHA3-256 digest (padding byte 0x06).
func Keccak256(msg []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(msg)
	return h.Sum(nil)
}

// Blake2b returns a Blake2b digest of msg with the given output length in
// bytes, 1..64, with no key, salt, or personalization.
func Blake2b(msg []byte, outLen int) ([]byte, error) {
	if outLen < 1 || outLen > 64 {
		return nil, wcerr.New(wcerr.ErrInvalidLength, "hashes: blake2b output length must be in [1, 64]")
	}
	h, err := blake2b.New(outLen, nil)
	if err != nil {
		return nil, wcerr.New(wcerr.ErrInvalidLength, "hashes: blake2b: "+err.Error())
	}
	h.Write(msg)
	return h.Sum(nil), nil
}

// HMACSHA256 computes RFC 2104 HMAC-SHA-256 over msg with the given key.
func HMACSHA256(key, msg []byte) []byte {
	m := hmac.New(sha256.New, key)
	m.Write(msg)
	return m.Sum(nil)
}

// HMACSHA512 computes RFC 2104 HMAC-SHA-512 over msg with the given key.
func HMACSHA512(key, msg []byte) []byte {
	m := hmac.New(sha512.New, key)
	m.Write(msg)
	return m.Sum(nil)
}

// Hash160 is RIPEMD-160(SHA-256(x)), the digest used throughout Bitcoin-
// family address formats.
func Hash160(x []byte) []byte {
	return RIPEMD160(SHA256(x))
}
