package address_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walletprimitives/walletcrypto/address"
	"github.com/walletprimitives/walletcrypto/wcerr"
)

func TestNanoToRawWholeNumber(t *testing.T) {
	got, err := address.NanoToRaw("1")
	require.NoError(t, err)
	require.Equal(t, "1000000000000000000000000000000", got)
}

func TestNanoToRawFractional(t *testing.T) {
	got, err := address.NanoToRaw("0.000001")
	require.NoError(t, err)
	require.Equal(t, "1000000000000000000000000", got)
}

func TestNanoToRawNegative(t *testing.T) {
	got, err := address.NanoToRaw("-2.5")
	require.NoError(t, err)
	require.Equal(t, "-2500000000000000000000000000000", got)
}

func TestNanoToRawRejectsTooManyFractionalDigits(t *testing.T) {
	_, err := address.NanoToRaw("1." + strings.Repeat("1", 31))
	require.Error(t, err)
}

func TestNanoToRawRejectsNonDigits(t *testing.T) {
	_, err := address.NanoToRaw("12.3x")
	require.Error(t, err)
	require.True(t, errors.Is(err, wcerr.New(wcerr.ErrInvalidDecimal, "")))
}
