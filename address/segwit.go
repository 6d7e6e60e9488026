package address

import (
	"github.com/walletprimitives/walletcrypto/bech32"
	"github.com/walletprimitives/walletcrypto/hashes"
	"github.com/walletprimitives/walletcrypto/wcerr"
)

// SegwitAddress builds a native SegWit (P2WPKH, witness version 0) address:
// bech32(hrp, [0] ‖ to_words(hash160(pubkey))).
func SegwitAddress(hrp string, pubKey []byte) (string, error) {
	if len(pubKey) != 33 && len(pubKey) != 65 {
		return "", wcerr.New(wcerr.ErrInvalidLength, "address: public key must be 33 or 65 bytes")
	}
	h := hashes.Hash160(pubKey)
	words := append([]byte{0}, bech32.ToWords(h)...)
	return bech32.Encode(hrp, words)
}
