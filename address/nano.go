package address

import (
	"bytes"
	"strings"

	"github.com/walletprimitives/walletcrypto/hashes"
	"github.com/walletprimitives/walletcrypto/wcerr"
)

const nanoAlphabet = "13456789abcdefghijkmnopqrstuwxyz"

// NanoAddress builds a Nano address from a 32-byte Ed25519 public key:
// "nano_" ‖ base32(pubkey, 52 chars) ‖ base32(reversed Blake2b-5 checksum,
// 8 chars).
func NanoAddress(pubKey []byte) (string, error) {
	if len(pubKey) != 32 {
		return "", wcerr.New(wcerr.ErrInvalidLength, "address: nano requires a 32-byte ed25519 public key")
	}
	checksum, err := hashes.Blake2b(pubKey, 5)
	if err != nil {
		return "", err
	}
	reversed := make([]byte, 5)
	for i := range checksum {
		reversed[i] = checksum[len(checksum)-1-i]
	}

	pubPart := base32Encode(pubKey, nanoAlphabet, 52)
	checksumPart := base32Encode(reversed, nanoAlphabet, 8)
	return "nano_" + pubPart + checksumPart, nil
}

// DecodeNanoAddress parses a "nano_"-prefixed address, extracting the
// 32-byte public key and verifying the embedded Blake2b-5 checksum.
func DecodeNanoAddress(addr string) ([]byte, error) {
	const prefix = "nano_"
	if !strings.HasPrefix(addr, prefix) {
		return nil, wcerr.New(wcerr.ErrInvalidLength, "address: nano address missing 'nano_' prefix")
	}
	body := addr[len(prefix):]
	if len(body) != 60 {
		return nil, wcerr.New(wcerr.ErrInvalidLength, "address: nano address body must be 60 characters")
	}

	pubPart, checksumPart := body[:52], body[52:]
	pubKey, err := base32Decode(pubPart, nanoAlphabet, 32)
	if err != nil {
		return nil, err
	}
	gotChecksum, err := base32Decode(checksumPart, nanoAlphabet, 5)
	if err != nil {
		return nil, err
	}

	wantChecksum, err := hashes.Blake2b(pubKey, 5)
	if err != nil {
		return nil, err
	}
	reversed := make([]byte, 5)
	for i := range wantChecksum {
		reversed[i] = wantChecksum[len(wantChecksum)-1-i]
	}
	if !bytes.Equal(reversed, gotChecksum) {
		return nil, wcerr.New(wcerr.ErrInvalidChecksum, "address: nano checksum verification failed")
	}
	return pubKey, nil
}
