package address_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walletprimitives/walletcrypto/address"
	"github.com/walletprimitives/walletcrypto/cashaddr"
)

func TestBitcoinCashAddressFromLegacy(t *testing.T) {
	pub := scalarOnePubKey(t)
	legacy, err := address.LegacyAddress(address.LegacyParams{Version: 0x00}, pub)
	require.NoError(t, err)

	cash, err := address.BitcoinCashAddress(legacy)
	require.NoError(t, err)

	decoded, err := cashaddr.Decode(cash)
	require.NoError(t, err)
	require.Equal(t, cashaddr.DefaultPrefix, decoded.Prefix)
	require.Equal(t, cashaddr.TypeP2KH, decoded.AddrType)
}

func TestLegacyToCashAddrCustomPrefix(t *testing.T) {
	pub := scalarOnePubKey(t)
	legacy, err := address.LegacyAddress(address.LegacyParams{Version: 0x00}, pub)
	require.NoError(t, err)

	cash, err := address.LegacyToCashAddr(legacy, "bchtest")
	require.NoError(t, err)

	decoded, err := cashaddr.Decode(cash)
	require.NoError(t, err)
	require.Equal(t, "bchtest", decoded.Prefix)
}

func TestLegacyToCashAddrRejectsBadLegacyAddress(t *testing.T) {
	_, err := address.LegacyToCashAddr("notanaddress", cashaddr.DefaultPrefix)
	require.Error(t, err)
}
