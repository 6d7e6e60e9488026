package selftest_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walletprimitives/walletcrypto/selftest"
)

func TestRunAllPasses(t *testing.T) {
	require.Equal(t, "", selftest.RunAll())
}

func TestIndividualChecksPass(t *testing.T) {
	require.True(t, selftest.TestSecp256k1())
	require.True(t, selftest.TestBech32())
	require.True(t, selftest.TestCashAddr())
	require.True(t, selftest.TestKeccak256())
	require.True(t, selftest.TestKaspa())
	require.True(t, selftest.TestEthereum())
	require.True(t, selftest.TestNimiq())
	require.True(t, selftest.TestNano())
}

type fakeAESCipher struct{}

func (fakeAESCipher) Encrypt(key, plaintext []byte) ([]byte, error) {
	out := make([]byte, len(plaintext))
	for i, b := range plaintext {
		out[i] = b ^ key[i%len(key)]
	}
	return out, nil
}

func (fakeAESCipher) Decrypt(key, ciphertext []byte) ([]byte, error) {
	return fakeAESCipher{}.Encrypt(key, ciphertext)
}

func TestTestAESWithCollaborator(t *testing.T) {
	require.True(t, selftest.TestAES(fakeAESCipher{}))
}

func TestTestAESWithNilCollaborator(t *testing.T) {
	require.False(t, selftest.TestAES(nil))
}
