package address_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walletprimitives/walletcrypto/address"
)

func TestEthereumAddressKnownVector(t *testing.T) {
	got, err := address.ToEIP55Checksum("2161dedc3be05b7bb5aa16154bcbd254e9e9eb68")
	require.NoError(t, err)
	require.Equal(t, "2161DedC3Be05B7Bb5aa16154BcbD254E9e9eb68", got)
}

func TestEthereumAddressLength(t *testing.T) {
	pubKeyNoPrefix := make([]byte, 64)
	for i := range pubKeyNoPrefix {
		pubKeyNoPrefix[i] = byte(i)
	}
	addr, err := address.EthereumAddress(pubKeyNoPrefix)
	require.NoError(t, err)
	require.True(t, len(addr) == 42)
	require.Equal(t, "0x", addr[:2])
	_, err = hex.DecodeString(addr[2:])
	require.NoError(t, err)
}

func TestEthereumAddressRejectsWrongLength(t *testing.T) {
	_, err := address.EthereumAddress(make([]byte, 63))
	require.Error(t, err)
}

func TestToEIP55ChecksumRejectsWrongLength(t *testing.T) {
	_, err := address.ToEIP55Checksum("abcd")
	require.Error(t, err)
}
