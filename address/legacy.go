// Package address assembles per-currency wallet address strings from a
// public key: Base58Check for Bitcoin-family legacy addresses, Bech32,
// CashAddr and Kaspa's variant for the Bech32-family formats, Keccak256
// plus EIP-55 for Ethereum, and the custom Base32 schemes for Nimiq and
// Nano.
package address

import (
	"github.com/walletprimitives/walletcrypto/base58"
	"github.com/walletprimitives/walletcrypto/hashes"
	"github.com/walletprimitives/walletcrypto/wcerr"
)

// LegacyParams names the version byte for a Base58Check legacy address.
// Well-known values: Bitcoin 0x00, Litecoin 0x30, Dogecoin 0x1e, Dash 0x4c.
type LegacyParams struct {
	Version byte
}

// LegacyAddress builds a Base58Check address from a version byte and a
// compressed or uncompressed public key: version‖hash160(pubkey).
func LegacyAddress(params LegacyParams, pubKey []byte) (string, error) {
	if len(pubKey) != 33 && len(pubKey) != 65 {
		return "", wcerr.New(wcerr.ErrInvalidLength, "address: public key must be 33 or 65 bytes")
	}
	h := hashes.Hash160(pubKey)
	payload := make([]byte, 0, 21)
	payload = append(payload, params.Version)
	payload = append(payload, h...)
	return base58.CheckEncode(payload), nil
}

// LegacyHashFromAddress decodes a Base58Check legacy address and returns
// its 20-byte hash160 payload, discarding the version byte.
func LegacyHashFromAddress(addr string) ([]byte, error) {
	payload, err := base58.CheckDecode(addr)
	if err != nil {
		return nil, err
	}
	if len(payload) != 21 {
		return nil, wcerr.New(wcerr.ErrInvalidLength, "address: decoded legacy payload is not 21 bytes")
	}
	return payload[1:], nil
}
