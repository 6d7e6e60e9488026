package ed25519core_test

import (
	"crypto/ed25519"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walletprimitives/walletcrypto/ed25519core"
)

func TestDeriveNimiqPubIsDeterministicAnd32Bytes(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i)
	}
	pub1, err := ed25519core.DeriveNimiqPub(seed)
	require.NoError(t, err)
	require.Len(t, pub1, 32)

	pub2, err := ed25519core.DeriveNimiqPub(seed)
	require.NoError(t, err)
	require.Equal(t, pub1, pub2)
}

func TestDeriveNanoPubIsDeterministicAnd32Bytes(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	pub1, err := ed25519core.DeriveNanoPub(seed)
	require.NoError(t, err)
	require.Len(t, pub1, 32)

	pub2, err := ed25519core.DeriveNanoPub(seed)
	require.NoError(t, err)
	require.Equal(t, pub1, pub2)
}

func TestDeriveNimiqAndNanoDiffer(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = 0x42
	}
	nimiqPub, err := ed25519core.DeriveNimiqPub(seed)
	require.NoError(t, err)
	nanoPub, err := ed25519core.DeriveNanoPub(seed)
	require.NoError(t, err)
	// SHA-512 and Blake2b-512 expansion of the same seed must diverge.
	require.NotEqual(t, nimiqPub, nanoPub)
}

func TestDeriveRejectsWrongSeedLength(t *testing.T) {
	_, err := ed25519core.DeriveNimiqPub(make([]byte, 31))
	require.Error(t, err)

	_, err = ed25519core.DeriveNanoPub(make([]byte, 33))
	require.Error(t, err)
}

// TestDeriveNimiqPubMatchesStdlibEd25519 cross-checks DeriveNimiqPub against
// crypto/ed25519 directly: SHA-512 expansion plus standard RFC 8032
// clamping is exactly what NewKeyFromSeed does, so the two must agree on
// every seed. Nano can't be cross-checked this way since it substitutes
// Blake2b-512 for SHA-512, a deliberate deviation from RFC 8032 with no
// standard-library equivalent.
func TestDeriveNimiqPubMatchesStdlibEd25519(t *testing.T) {
	seeds := [][]byte{
		make([]byte, 32),
		mustHex(t, "9eac269fb28cbeab3c7cd77b60daa4590e1316b6e9a71e5e58dfeaa40d9ebc15"),
		mustHex(t, "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"),
	}
	for i := range seeds[0] {
		seeds[0][i] = byte(i)
	}

	for _, seed := range seeds {
		got, err := ed25519core.DeriveNimiqPub(seed)
		require.NoError(t, err)
		want := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
		require.Equal(t, []byte(want), got)
	}
}

// TestDeriveNimiqPubKnownAnswer pins DeriveNimiqPub for the seed spec.md
// §8 vectors 7 and 8 use, independently confirmed against
// crypto/ed25519.NewKeyFromSeed in the test above.
func TestDeriveNimiqPubKnownAnswer(t *testing.T) {
	seed := mustHex(t, "9eac269fb28cbeab3c7cd77b60daa4590e1316b6e9a71e5e58dfeaa40d9ebc15")
	got, err := ed25519core.DeriveNimiqPub(seed)
	require.NoError(t, err)
	require.Equal(t, "578831d5c71a70ba5e68a2c76775cf3e8ebaa10ddab99ca284bf248247bedd6d", hex.EncodeToString(got))
}

// TestDeriveNanoPubKnownAnswer pins DeriveNanoPub for the same seed, using
// Blake2b-512 expansion in place of SHA-512.
func TestDeriveNanoPubKnownAnswer(t *testing.T) {
	seed := mustHex(t, "9eac269fb28cbeab3c7cd77b60daa4590e1316b6e9a71e5e58dfeaa40d9ebc15")
	got, err := ed25519core.DeriveNanoPub(seed)
	require.NoError(t, err)
	require.Equal(t, "0f21d1e4945d0553ce0fa9a916b547a0170d4a2fe49a18d73b73ed19ff19b728", hex.EncodeToString(got))
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
