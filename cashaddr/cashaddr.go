// Package cashaddr implements the Bitcoin Cash CashAddr encoding: a
// Bech32-family variant with a 40-bit polymod checksum, no HRP embedded in
// the payload characters, and a type/length version byte.
//
// Checksum grounded on the CashAddr polymod as implemented by
// trezor-blockbook's cashaddress package.
package cashaddr

import (
	"strings"

	"github.com/walletprimitives/walletcrypto/bech32"
	"github.com/walletprimitives/walletcrypto/wcerr"
)

// DefaultPrefix is the CashAddr HRP used when none is supplied.
const DefaultPrefix = "bitcoincash"

const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// Address type nibble values (upper bits of the version byte).
const (
	TypeP2KH uint8 = 0
	TypeP2SH uint8 = 1
)

func polymod(v []byte) uint64 {
	c := uint64(1)
	for _, d := range v {
		c0 := c >> 35
		c = ((c & 0x07ffffffff) << 5) ^ uint64(d)
		if c0&0x01 != 0 {
			c ^= 0x98f2bc8e61
		}
		if c0&0x02 != 0 {
			c ^= 0x79b76d99e2
		}
		if c0&0x04 != 0 {
			c ^= 0xf33e5fb3c4
		}
		if c0&0x08 != 0 {
			c ^= 0xae2eabe2a8
		}
		if c0&0x10 != 0 {
			c ^= 0x1e4f43e470
		}
	}
	return c ^ 1
}

func expandPrefix(prefix string) []byte {
	out := make([]byte, 0, len(prefix)+1)
	for i := 0; i < len(prefix); i++ {
		out = append(out, prefix[i]&0x1f)
	}
	return append(out, 0)
}

// lengthCode returns the CashAddr length code for a hash of the given byte
// size; 160-bit (20-byte) hashes use code 0, as spec requires.
func lengthCode(hashLen int) (byte, error) {
	switch hashLen {
	case 20:
		return 0, nil
	case 24:
		return 1, nil
	case 28:
		return 2, nil
	case 32:
		return 3, nil
	case 40:
		return 4, nil
	case 48:
		return 5, nil
	case 56:
		return 6, nil
	case 64:
		return 7, nil
	default:
		return 0, wcerr.New(wcerr.ErrInvalidLength, "cashaddr: unsupported hash length")
	}
}

// Encode builds a CashAddr string for the given prefix, address type, and
// hash payload (typically a 20-byte hash160).
func Encode(prefix string, addrType uint8, hash []byte) (string, error) {
	lc, err := lengthCode(len(hash))
	if err != nil {
		return "", err
	}
	versionByte := (addrType << 3) | lc
	payload := append([]byte{versionByte}, hash...)
	words := bech32.ToWords(payload)

	checksumWords := createChecksum(prefix, words)
	all := append(append([]byte{}, words...), checksumWords...)

	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteByte(':')
	for _, w := range all {
		sb.WriteByte(charset[w])
	}
	return sb.String(), nil
}

func createChecksum(prefix string, data []byte) []byte {
	combined := append(expandPrefix(prefix), data...)
	combined = append(combined, 0, 0, 0, 0, 0, 0, 0, 0)
	mod := polymod(combined)
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		out[i] = byte((mod >> uint(5*(7-i))) & 31)
	}
	return out
}

// Decoded is the parsed form of a CashAddr string.
type Decoded struct {
	Prefix   string
	AddrType uint8
	Hash     []byte
}

// Decode parses a CashAddr string. A prefix followed by ':' is required in
// the input for the checksum to be recomputed against; callers that accept
// prefix-less user input must supply the default prefix themselves before
// calling Decode.
func Decode(s string) (*Decoded, error) {
	idx := strings.LastIndex(s, ":")
	if idx < 0 {
		return nil, wcerr.New(wcerr.ErrInvalidBech32, "cashaddr: missing prefix separator")
	}
	prefix := strings.ToLower(s[:idx])
	dataPart := strings.ToLower(s[idx+1:])

	data := make([]byte, len(dataPart))
	for i := 0; i < len(dataPart); i++ {
		pos := strings.IndexByte(charset, dataPart[i])
		if pos < 0 {
			return nil, wcerr.New(wcerr.ErrInvalidBech32, "cashaddr: invalid character in payload")
		}
		data[i] = byte(pos)
	}
	if len(data) < 8 {
		return nil, wcerr.New(wcerr.ErrInvalidLength, "cashaddr: payload too short to hold a checksum")
	}

	combined := append(expandPrefix(prefix), data...)
	if polymod(combined) != 0 {
		return nil, wcerr.New(wcerr.ErrInvalidChecksum, "cashaddr: checksum verification failed")
	}

	words := data[:len(data)-8]
	payload, err := bech32.FromWords(words, true)
	if err != nil {
		return nil, err
	}
	if len(payload) < 1 {
		return nil, wcerr.New(wcerr.ErrInvalidLength, "cashaddr: empty payload")
	}
	versionByte := payload[0]
	return &Decoded{
		Prefix:   prefix,
		AddrType: versionByte >> 3,
		Hash:     payload[1:],
	}, nil
}
