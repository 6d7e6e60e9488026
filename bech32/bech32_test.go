package bech32_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walletprimitives/walletcrypto/bech32"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	words := bech32.ToWords([]byte{1, 2, 3, 4, 5})
	encoded, err := bech32.Encode("bc", words)
	require.NoError(t, err)

	decoded, err := bech32.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, "bc", decoded.HRP)
	require.Equal(t, words, decoded.Words)
}

func TestDecodeRejectsFlippedCharacter(t *testing.T) {
	words := bech32.ToWords([]byte{1, 2, 3, 4, 5})
	encoded, err := bech32.Encode("bc", words)
	require.NoError(t, err)

	flipped := []byte(encoded)
	flipped[len(flipped)-1] = otherChar(flipped[len(flipped)-1])
	_, err = bech32.Decode(string(flipped))
	require.Error(t, err)
}

func TestDecodeRejectsMixedCase(t *testing.T) {
	_, err := bech32.Decode("Bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4")
	require.Error(t, err)
}

func TestToWordsFromWordsRoundTrip(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0xff, 0xfe, 0x7f}
	words := bech32.ToWords(data)
	back, err := bech32.FromWords(words, false)
	require.NoError(t, err)
	require.Equal(t, data, back)
}

func TestFromWordsStrictRejectsNonZeroPadding(t *testing.T) {
	// Two zero words leave 2 leftover bits, valid padding for a strict
	// decode; a final word of 1 sets the lowest of those 2 leftover bits,
	// which strict decoding must reject.
	_, err := bech32.FromWords([]byte{0, 0}, true)
	require.NoError(t, err)

	_, err = bech32.FromWords([]byte{0, 1}, true)
	require.Error(t, err)
}

func otherChar(c byte) byte {
	if c == 'q' {
		return 'p'
	}
	return 'q'
}
