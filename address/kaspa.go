package address

import (
	"github.com/walletprimitives/walletcrypto/kaspabech32"
	"github.com/walletprimitives/walletcrypto/wcerr"
)

// KaspaHRP is the standard Kaspa mainnet human-readable part.
const KaspaHRP = "kaspa"

// KaspaAddress builds a Kaspa address from a 33-byte compressed public key:
// version 0 ‖ the 32-byte x-only public key, packed as one 33-byte payload
// before the 8-to-5 bit conversion (kaspad prepends the version byte to the
// payload byte string first, rather than converting the payload alone and
// prepending a separate version word), encoded with the Kaspa Bech32
// variant.
func KaspaAddress(compressedPubKey []byte) (string, error) {
	if len(compressedPubKey) != 33 {
		return "", wcerr.New(wcerr.ErrInvalidLength, "address: kaspa requires a 33-byte compressed public key")
	}
	xOnly := compressedPubKey[1:33]
	payload := append([]byte{0}, xOnly...)
	words := kaspabech32.ToWords(payload)
	return kaspabech32.Encode(KaspaHRP, words)
}
