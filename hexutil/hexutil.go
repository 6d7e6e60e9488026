// Package hexutil provides the strict hex decoding this module's public
// entry points require: even length, lowercase-only, no "0x" prefix.
// Mixed-case input is rejected rather than silently accepted.
package hexutil

import (
	"encoding/hex"

	"github.com/walletprimitives/walletcrypto/wcerr"
)

// Decode decodes a lowercase hex string to bytes. It rejects odd length,
// non-hex characters, and any uppercase A-F digit; callers that have
// uppercase input must lower-case it themselves before calling.
func Decode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, wcerr.New(wcerr.ErrInvalidHex, "hexutil: odd-length hex string")
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		default:
			return nil, wcerr.New(wcerr.ErrInvalidHex, "hexutil: non-lowercase-hex character")
		}
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, wcerr.New(wcerr.ErrInvalidHex, "hexutil: "+err.Error())
	}
	return b, nil
}

// Encode encodes bytes as lowercase hex.
func Encode(b []byte) string {
	return hex.EncodeToString(b)
}
