package address

import (
	"strings"

	"github.com/walletprimitives/walletcrypto/hashes"
	"github.com/walletprimitives/walletcrypto/hexutil"
	"github.com/walletprimitives/walletcrypto/wcerr"
)

// EthereumAddress derives the 0x-prefixed, EIP-55-checksummed Ethereum
// address from a 64-byte uncompressed public key with its 0x04 prefix
// already removed: addr = keccak256(pubkey)[12:32].
func EthereumAddress(pubKeyNoPrefix []byte) (string, error) {
	if len(pubKeyNoPrefix) != 64 {
		return "", wcerr.New(wcerr.ErrInvalidLength, "address: ethereum public key must be 64 bytes without the 0x04 prefix")
	}
	digest := hashes.Keccak256(pubKeyNoPrefix)
	addrBytes := digest[12:32]
	lowerHex := hexutil.Encode(addrBytes)
	checksummed, err := ToEIP55Checksum(lowerHex)
	if err != nil {
		return "", err
	}
	return "0x" + checksummed, nil
}

// ToEIP55Checksum applies EIP-55 mixed-case checksumming to a 40-character
// lowercase hex address (no 0x prefix): a hex digit is uppercased iff the
// corresponding nibble of keccak256(lowercase address) is >= 8.
func ToEIP55Checksum(addrLowerHex string) (string, error) {
	lower := strings.TrimPrefix(addrLowerHex, "0x")
	if len(lower) != 40 {
		return "", wcerr.New(wcerr.ErrInvalidLength, "address: ethereum address must be 40 hex characters")
	}
	if _, err := hexutil.Decode(lower); err != nil {
		return "", err
	}
	hashDigest := hashes.Keccak256([]byte(lower))

	out := make([]byte, 40)
	for i := 0; i < 40; i++ {
		c := lower[i]
		if c >= '0' && c <= '9' {
			out[i] = c
			continue
		}
		// nibble i lives in hash byte i/2, high nibble for even i.
		hashByte := hashDigest[i/2]
		var nibble byte
		if i%2 == 0 {
			nibble = hashByte >> 4
		} else {
			nibble = hashByte & 0x0f
		}
		if nibble >= 8 {
			out[i] = c - ('a' - 'A')
		} else {
			out[i] = c
		}
	}
	return string(out), nil
}
