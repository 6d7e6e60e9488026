package address

import (
	"math/big"
	"strings"

	"github.com/walletprimitives/walletcrypto/wcerr"
)

// NanoToRaw converts a decimal-string NANO amount (optionally with a
// fractional part of at most 30 digits) to its canonical decimal raw
// representation, computed with arbitrary-precision integer arithmetic.
func NanoToRaw(amount string) (string, error) {
	neg := false
	s := amount
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	intPart, fracPart := s, ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, fracPart = s[:idx], s[idx+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 30 {
		return "", wcerr.New(wcerr.ErrInvalidLength, "address: nano amount has more than 30 fractional digits")
	}
	if !isDigits(intPart) || !isDigits(fracPart) {
		return "", wcerr.New(wcerr.ErrInvalidDecimal, "address: nano amount is not a valid decimal number")
	}

	fracPart += strings.Repeat("0", 30-len(fracPart))
	digits := intPart + fracPart

	raw, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return "", wcerr.New(wcerr.ErrInvalidDecimal, "address: nano amount is not a valid decimal number")
	}
	if neg {
		raw.Neg(raw)
	}
	return raw.String(), nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
