// Package base58 implements Base58 and Base58Check encoding using the
// Bitcoin alphabet, on top of github.com/decred/base58's raw codec.
package base58

import (
	"bytes"

	"github.com/decred/base58"
	"github.com/walletprimitives/walletcrypto/hashes"
	"github.com/walletprimitives/walletcrypto/wcerr"
)

// checksumLen is the number of checksum bytes appended by Base58Check.
const checksumLen = 4

// Encode converts bytes to a Base58 string using the Bitcoin alphabet
// (123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz), preserving
// one leading '1' per leading zero byte.
func Encode(b []byte) string {
	return base58.Encode(b)
}

// Decode reverses Encode, failing on any character outside the alphabet.
//
// decred/base58's Decode silently stops at the first invalid character
// instead of returning an error, so validity is checked here by requiring
// the decoded bytes to re-encode back to the original string.
func Decode(s string) ([]byte, error) {
	out := base58.Decode(s)
	if base58.Encode(out) != s {
		return nil, wcerr.New(wcerr.ErrInvalidBase58, "base58: invalid character in input")
	}
	return out, nil
}

// CheckEncode computes checksum = SHA-256(SHA-256(payload))[0:4] and
// Base58-encodes payload‖checksum.
func CheckEncode(payload []byte) string {
	checksum := doubleSHA256(payload)[:checksumLen]
	buf := make([]byte, 0, len(payload)+checksumLen)
	buf = append(buf, payload...)
	buf = append(buf, checksum...)
	return Encode(buf)
}

// CheckDecode reverses CheckEncode: it Base58-decodes s, splits off the
// last 4 bytes as the checksum, recomputes it over the remaining payload,
// and fails with ErrInvalidChecksum on mismatch.
func CheckDecode(s string) ([]byte, error) {
	raw, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(raw) < checksumLen {
		return nil, wcerr.New(wcerr.ErrInvalidLength, "base58: too short to contain a checksum")
	}
	payload := raw[:len(raw)-checksumLen]
	checksum := raw[len(raw)-checksumLen:]
	want := doubleSHA256(payload)[:checksumLen]
	if !bytes.Equal(checksum, want) {
		return nil, wcerr.New(wcerr.ErrInvalidChecksum, "base58: checksum mismatch")
	}
	return payload, nil
}

func doubleSHA256(b []byte) []byte {
	first := hashes.SHA256(b)
	return hashes.SHA256(first)
}
