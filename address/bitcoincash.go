package address

import "github.com/walletprimitives/walletcrypto/cashaddr"

// LegacyToCashAddr converts a Base58Check legacy address (any version byte)
// into a CashAddr string under the given prefix, dropping the version byte
// and re-encoding the 20-byte hash160 payload as a P2KH CashAddr.
func LegacyToCashAddr(legacyAddress, prefix string) (string, error) {
	hash, err := LegacyHashFromAddress(legacyAddress)
	if err != nil {
		return "", err
	}
	return cashaddr.Encode(prefix, cashaddr.TypeP2KH, hash)
}

// BitcoinCashAddress converts a legacy Bitcoin Cash address into its
// CashAddr form under the standard "bitcoincash" prefix.
func BitcoinCashAddress(legacyAddress string) (string, error) {
	return LegacyToCashAddr(legacyAddress, cashaddr.DefaultPrefix)
}
