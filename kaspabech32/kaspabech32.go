// Package kaspabech32 implements Kaspa's 40-bit Bech32 variant: the same
// charset as BIP-173 but with CashAddr-style low-5-bits-only HRP expansion,
// an 8-word (40-bit) checksum, and a ':' separator instead of '1'.
//
// The generator polynomial matches the CashAddr checksum exactly — Kaspa's
// address format is a fork of the CashAddr scheme — grounded on the same
// BCH-code structure documented in trezor-blockbook's cashaddress package.
// The target convention differs, though: kaspad's raw polymod targets 1
// with no internal XOR, unlike CashAddr's helper which folds "^1" into
// the polymod itself and targets 0.
package kaspabech32

import (
	"strings"

	"github.com/walletprimitives/walletcrypto/bech32"
	"github.com/walletprimitives/walletcrypto/wcerr"
)

const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

var generator = [5]uint64{0x98f2bc8e61, 0x79b76d99e2, 0xf33e5fb3c4, 0xae2eabe2a8, 0x1e4f43e470}

// Polymod computes the raw Kaspa 40-bit checksum accumulator over a
// sequence of 5-bit values. A valid codeword (data plus its checksum
// words, HRP-expanded) satisfies Polymod(combined) == 1, matching
// kaspad's own convention; this differs from CashAddr's helper, which
// folds a "^1" into its polymod and instead targets 0.
func Polymod(values []byte) uint64 {
	c := uint64(1)
	for _, d := range values {
		c0 := c >> 35
		c = ((c & 0x07ffffffff) << 5) ^ uint64(d)
		for i := 0; i < 5; i++ {
			if (c0>>uint(i))&1 != 0 {
				c ^= generator[i]
			}
		}
	}
	return c
}

// expandHRP takes only the low 5 bits of each HRP character, with no
// interspersed high-bits block and no zero separator — the deliberate
// deviation from BIP-173's hrpExpand.
func expandHRP(hrp string) []byte {
	out := make([]byte, len(hrp))
	for i := 0; i < len(hrp); i++ {
		out[i] = hrp[i] & 0x1f
	}
	return out
}

// CreateChecksum computes the 8 five-bit checksum words for an HRP and a
// data-word sequence.
func CreateChecksum(hrp string, data []byte) []byte {
	combined := append(expandHRP(hrp), data...)
	combined = append(combined, 0, 0, 0, 0, 0, 0, 0, 0)
	mod := Polymod(combined) ^ 1
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		out[i] = byte((mod >> uint(5*(7-i))) & 31)
	}
	return out
}

func verifyChecksum(hrp string, dataWithChecksum []byte) bool {
	combined := append(expandHRP(hrp), dataWithChecksum...)
	return Polymod(combined) == 1
}

// Encode builds a Kaspa address string: hrp ':' followed by the data words
// and 8-word checksum, all mapped through the shared Bech32 charset.
func Encode(hrp string, words []byte) (string, error) {
	checksum := CreateChecksum(hrp, words)
	all := append(append([]byte{}, words...), checksum...)

	var sb strings.Builder
	sb.WriteString(hrp)
	sb.WriteByte(':')
	for _, w := range all {
		if int(w) >= len(charset) {
			return "", wcerr.New(wcerr.ErrInvalidBech32, "kaspabech32: word out of range")
		}
		sb.WriteByte(charset[w])
	}
	return sb.String(), nil
}

// Decoded is the parsed form of a Kaspa Bech32 string.
type Decoded struct {
	HRP   string
	Words []byte
}

// Decode parses a Kaspa address string and verifies its checksum.
func Decode(s string) (*Decoded, error) {
	idx := strings.LastIndex(s, ":")
	if idx < 1 {
		return nil, wcerr.New(wcerr.ErrInvalidBech32, "kaspabech32: missing ':' separator")
	}
	hrp := strings.ToLower(s[:idx])
	dataPart := strings.ToLower(s[idx+1:])
	if len(dataPart) < 8 {
		return nil, wcerr.New(wcerr.ErrInvalidLength, "kaspabech32: payload too short to hold a checksum")
	}

	data := make([]byte, len(dataPart))
	for i := 0; i < len(dataPart); i++ {
		pos := strings.IndexByte(charset, dataPart[i])
		if pos < 0 {
			return nil, wcerr.New(wcerr.ErrInvalidBech32, "kaspabech32: invalid character in payload")
		}
		data[i] = byte(pos)
	}

	if !verifyChecksum(hrp, data) {
		return nil, wcerr.New(wcerr.ErrInvalidChecksum, "kaspabech32: checksum verification failed")
	}

	return &Decoded{HRP: hrp, Words: data[:len(data)-8]}, nil
}

// ToWords is the shared 8-bit to 5-bit repacker re-exported for callers
// building a Kaspa payload from raw bytes.
func ToWords(data []byte) []byte {
	return bech32.ToWords(data)
}

// FromWords is the shared 5-bit to 8-bit repacker.
func FromWords(words []byte, strict bool) ([]byte, error) {
	return bech32.FromWords(words, strict)
}
