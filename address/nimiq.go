package address

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/walletprimitives/walletcrypto/hashes"
	"github.com/walletprimitives/walletcrypto/wcerr"
)

const nimiqAlphabet = "0123456789ABCDEFGHJKLMNPQRSTUVXY"

// NimiqAddress builds a Nimiq address from a 32-byte Ed25519 public key:
// Blake2b-256(pubkey)[0:20] encoded to 32 Nimiq-alphabet characters, with
// an IBAN-style mod-97 checksum prefix: "NQ" ‖ checksum ‖ encoded.
func NimiqAddress(pubKey []byte) (string, error) {
	if len(pubKey) != 32 {
		return "", wcerr.New(wcerr.ErrInvalidLength, "address: nimiq requires a 32-byte ed25519 public key")
	}
	full, err := hashes.Blake2b(pubKey, 32)
	if err != nil {
		return "", err
	}
	h := full[:20]

	encoded := base32Encode(h, nimiqAlphabet, 32)

	checksum, err := ibanChecksum(encoded + "NQ00")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("NQ%02d%s", checksum, encoded), nil
}

// SpacedNimiq reformats a compact Nimiq address ("NQ..." with no spaces)
// into the human-readable form with a space every 4 characters.
func SpacedNimiq(addr string) string {
	var sb strings.Builder
	for i := 0; i < len(addr); i += 4 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		end := i + 4
		if end > len(addr) {
			end = len(addr)
		}
		sb.WriteString(addr[i:end])
	}
	return sb.String()
}

// base32Encode packs data MSB-first into 5-bit groups against alphabet,
// producing exactly numChars characters (data must supply at most
// numChars*5 bits; the value is treated as a big-endian integer so any
// unused high-order bits are implicitly zero).
func base32Encode(data []byte, alphabet string, numChars int) string {
	v := new(big.Int).SetBytes(data)
	mask := big.NewInt(31)
	out := make([]byte, numChars)
	for i := 0; i < numChars; i++ {
		shift := uint(5 * (numChars - 1 - i))
		digit := new(big.Int).Rsh(v, shift)
		digit.And(digit, mask)
		out[i] = alphabet[digit.Int64()]
	}
	return string(out)
}

// base32Decode is the inverse of base32Encode: it parses numChars
// characters against alphabet into a big-endian integer and returns it as
// byteLen big-endian bytes, failing on any character outside the alphabet
// or on a value that does not fit in byteLen bytes.
func base32Decode(s, alphabet string, byteLen int) ([]byte, error) {
	v := big.NewInt(0)
	base := big.NewInt(int64(len(alphabet)))
	for _, c := range s {
		idx := strings.IndexRune(alphabet, c)
		if idx < 0 {
			return nil, wcerr.New(wcerr.ErrInvalidBase58, "address: base32 input contains an invalid character")
		}
		v.Mul(v, base)
		v.Add(v, big.NewInt(int64(idx)))
	}
	out := make([]byte, byteLen)
	b := v.Bytes()
	if len(b) > byteLen {
		return nil, wcerr.New(wcerr.ErrInvalidLength, "address: base32 input decodes to more bytes than expected")
	}
	copy(out[byteLen-len(b):], b)
	return out, nil
}

// ibanChecksum computes the IBAN mod-97 check value: digits pass through
// unchanged, letters map to two-digit values A=10..Z=35, and the resulting
// numeric string is reduced mod 97 by processing one digit at a time. The
// returned checksum is 98 minus that remainder.
func ibanChecksum(s string) (int, error) {
	rem := big.NewInt(0)
	ten := big.NewInt(10)
	ninetySeven := big.NewInt(97)

	feed := func(n int64) {
		rem.Mul(rem, ten)
		rem.Add(rem, big.NewInt(n))
		rem.Mod(rem, ninetySeven)
	}
	feedDigit := func(d int64) {
		feed(d)
	}
	feedDoubleDigit := func(d int64) {
		feed(d / 10)
		feed(d % 10)
	}

	for _, c := range strings.ToUpper(s) {
		switch {
		case c >= '0' && c <= '9':
			feedDigit(int64(c - '0'))
		case c >= 'A' && c <= 'Z':
			feedDoubleDigit(int64(c-'A') + 10)
		default:
			return 0, wcerr.New(wcerr.ErrInvalidLength, "address: nimiq checksum input has an invalid character")
		}
	}
	return int(98 - rem.Int64()), nil
}
