package field_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walletprimitives/walletcrypto/field"
)

func TestModReducesIntoRange(t *testing.T) {
	p := big.NewInt(97)
	got := field.Mod(big.NewInt(-1), p)
	require.Equal(t, big.NewInt(96), got)
}

func TestPowModMatchesRepeatedMultiplication(t *testing.T) {
	p := big.NewInt(101)
	got := field.PowMod(big.NewInt(5), big.NewInt(3), p)
	require.Equal(t, big.NewInt(125%101), got)
}

func TestInvertRoundTrips(t *testing.T) {
	p := big.NewInt(97)
	for a := int64(1); a < 97; a++ {
		inv, err := field.Invert(big.NewInt(a), p)
		require.NoError(t, err)
		product := new(big.Int).Mul(big.NewInt(a), inv)
		product.Mod(product, p)
		require.Equal(t, big.NewInt(1), product, "a=%d", a)
	}
}

func TestInvertFailsOnZero(t *testing.T) {
	p := big.NewInt(97)
	_, err := field.Invert(big.NewInt(0), p)
	require.Error(t, err)
}

func TestSqrtModOnSecp256k1Prime(t *testing.T) {
	p, ok := new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", 16)
	require.True(t, ok)

	// x = 1 satisfies y^2 = x^3 + 7 = 8, so sqrt_mod(8, p) must square back
	// to 8.
	root, err := field.SqrtMod(big.NewInt(8), p)
	require.NoError(t, err)
	square := new(big.Int).Mul(root, root)
	square.Mod(square, p)
	require.Equal(t, big.NewInt(8), square)
}

func TestSqrtModFailsForNonResidue(t *testing.T) {
	p := big.NewInt(23) // 23 mod 4 == 3
	// Quadratic residues mod 23 are {1,2,3,4,6,8,9,12,13,16,18}; 5 is not.
	_, err := field.SqrtMod(big.NewInt(5), p)
	require.Error(t, err)
}
