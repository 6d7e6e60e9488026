package secp256k1

import "github.com/walletprimitives/walletcrypto/base58"

// EncodeWIF encodes a private key in Wallet Import Format: a version byte,
// the 32-byte private key, an optional 0x01 compression flag, and a
// Base58Check checksum. Typical version bytes: Bitcoin 0x80, Litecoin
// 0xb0, Dogecoin 0x9e, Dash 0xcc.
func EncodeWIF(version byte, priv []byte, compressed bool) (string, error) {
	if len(priv) != 32 {
		return "", errPrivKeyInvalidLen
	}
	payload := make([]byte, 0, 34)
	payload = append(payload, version)
	payload = append(payload, priv...)
	if compressed {
		payload = append(payload, 0x01)
	}
	return base58.CheckEncode(payload), nil
}
