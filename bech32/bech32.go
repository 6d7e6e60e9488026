// Package bech32 implements the BIP-173 Bech32 codec: human-readable part,
// '1' separator, 5-bit data words, and the polymod checksum, plus the
// shared 8-bit/5-bit word repacker used by every codec in the Bech32
// family (bech32, cashaddr, kaspabech32).
package bech32

import (
	"strings"

	"github.com/walletprimitives/walletcrypto/wcerr"
)

const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

const maxLength = 90

var generator = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// Decoded is the result of a Bech32 decode: the human-readable part and the
// 5-bit data words, checksum stripped.
type Decoded struct {
	HRP   string
	Words []byte
}

func polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= generator[i]
			}
		}
	}
	return chk
}

func hrpExpand(hrp string) []byte {
	out := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]>>5)
	}
	out = append(out, 0)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]&31)
	}
	return out
}

func createChecksum(hrp string, data []byte) []byte {
	values := append(hrpExpand(hrp), data...)
	values = append(values, 0, 0, 0, 0, 0, 0)
	mod := polymod(values) ^ 1
	checksum := make([]byte, 6)
	for i := 0; i < 6; i++ {
		checksum[i] = byte((mod >> uint(5*(5-i))) & 31)
	}
	return checksum
}

func verifyChecksum(hrp string, data []byte) bool {
	values := append(hrpExpand(hrp), data...)
	return polymod(values) == 1
}

// Encode builds a Bech32 string from an HRP and a sequence of 5-bit words.
func Encode(hrp string, words []byte) (string, error) {
	if hrp == "" {
		return "", wcerr.New(wcerr.ErrInvalidBech32, "bech32: empty human-readable part")
	}
	for _, c := range hrp {
		if c < 33 || c > 126 {
			return "", wcerr.New(wcerr.ErrInvalidBech32, "bech32: hrp contains an invalid character")
		}
	}
	if strings.ToLower(hrp) != hrp && strings.ToUpper(hrp) != hrp {
		return "", wcerr.New(wcerr.ErrInvalidBech32, "bech32: hrp has mixed case")
	}
	lowerHRP := strings.ToLower(hrp)
	checksum := createChecksum(lowerHRP, words)
	combined := append(append([]byte{}, words...), checksum...)

	var sb strings.Builder
	sb.WriteString(lowerHRP)
	sb.WriteByte('1')
	for _, w := range combined {
		if int(w) >= len(charset) {
			return "", wcerr.New(wcerr.ErrInvalidBech32, "bech32: word out of range")
		}
		sb.WriteByte(charset[w])
	}
	out := sb.String()
	if len(out) > maxLength {
		return "", wcerr.New(wcerr.ErrInvalidBech32, "bech32: encoded string exceeds maximum length")
	}
	return out, nil
}

// Decode parses a Bech32 string into its HRP and 5-bit data words,
// verifying the checksum.
func Decode(s string) (*Decoded, error) {
	if len(s) > maxLength {
		return nil, wcerr.New(wcerr.ErrInvalidBech32, "bech32: string exceeds maximum length")
	}
	if strings.ToLower(s) != s && strings.ToUpper(s) != s {
		return nil, wcerr.New(wcerr.ErrInvalidBech32, "bech32: mixed case")
	}
	s = strings.ToLower(s)

	sep := strings.LastIndex(s, "1")
	if sep < 1 || sep+7 > len(s) {
		return nil, wcerr.New(wcerr.ErrInvalidBech32, "bech32: missing or misplaced separator")
	}
	hrp := s[:sep]
	dataPart := s[sep+1:]

	data := make([]byte, len(dataPart))
	for i := 0; i < len(dataPart); i++ {
		idx := strings.IndexByte(charset, dataPart[i])
		if idx < 0 {
			return nil, wcerr.New(wcerr.ErrInvalidBech32, "bech32: data part contains an invalid character")
		}
		data[i] = byte(idx)
	}

	if !verifyChecksum(hrp, data) {
		return nil, wcerr.New(wcerr.ErrInvalidChecksum, "bech32: checksum verification failed")
	}

	return &Decoded{HRP: hrp, Words: data[:len(data)-6]}, nil
}

// ToWords converts an 8-bit byte string to a 5-bit word sequence, packing
// bits MSB-first and padding the final word with zero bits.
func ToWords(data []byte) []byte {
	return convertBits(data, 8, 5, true)
}

// FromWords converts a 5-bit word sequence back to bytes. When strict is
// true, leftover padding bits must be zero and the padding must be less
// than the source bit width, matching a canonical encode; the caller
// controls strictness.
func FromWords(words []byte, strict bool) ([]byte, error) {
	return convertBitsStrict(words, 5, 8, strict)
}

// convertBits is the permissive form used when encoding (padding is always
// added, never checked).
func convertBits(data []byte, fromBits, toBits uint, pad bool) []byte {
	out, _ := convertBitsImpl(data, fromBits, toBits, pad, false)
	return out
}

func convertBitsStrict(data []byte, fromBits, toBits uint, strict bool) ([]byte, error) {
	return convertBitsImpl(data, fromBits, toBits, false, strict)
}

func convertBitsImpl(data []byte, fromBits, toBits uint, pad, strict bool) ([]byte, error) {
	var acc uint32
	var bits uint
	maxv := uint32(1)<<toBits - 1
	maxAcc := uint32(1)<<(fromBits+toBits-1) - 1
	out := make([]byte, 0, len(data)*int(fromBits)/int(toBits)+1)

	for _, value := range data {
		if uint32(value)>>fromBits != 0 {
			return nil, wcerr.New(wcerr.ErrInvalidLength, "bech32: input word exceeds fromBits width")
		}
		acc = ((acc << fromBits) | uint32(value)) & maxAcc
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			out = append(out, byte((acc>>bits)&maxv))
		}
	}

	if pad {
		if bits > 0 {
			out = append(out, byte((acc<<(toBits-bits))&maxv))
		}
	} else if strict && (bits >= fromBits || (acc<<(toBits-bits))&maxv != 0) {
		return nil, wcerr.New(wcerr.ErrInvalidBech32, "bech32: non-zero padding in strict decode")
	}

	return out, nil
}
