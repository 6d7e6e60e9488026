package address_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walletprimitives/walletcrypto/address"
)

func TestSegwitAddressRoundTrip(t *testing.T) {
	pub := scalarOnePubKey(t)
	addr, err := address.SegwitAddress("bc", pub)
	require.NoError(t, err)
	require.Contains(t, addr, "bc1")
}

func TestSegwitAddressRejectsBadPubKeyLength(t *testing.T) {
	_, err := address.SegwitAddress("bc", make([]byte, 10))
	require.Error(t, err)
}
