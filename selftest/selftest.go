// Package selftest runs known-answer and round-trip checks against this
// module's own packages, returning a bool per check the way a library
// consumer's smoke test would.
package selftest

import (
	"github.com/walletprimitives/walletcrypto/address"
	"github.com/walletprimitives/walletcrypto/bech32"
	"github.com/walletprimitives/walletcrypto/cashaddr"
	"github.com/walletprimitives/walletcrypto/ed25519core"
	"github.com/walletprimitives/walletcrypto/hashes"
	"github.com/walletprimitives/walletcrypto/hexutil"
	"github.com/walletprimitives/walletcrypto/kaspabech32"
	"github.com/walletprimitives/walletcrypto/secp256k1"
)

// TestSecp256k1 checks that deriving the public key for the scalar 1
// reproduces the well-known generator point encoding.
func TestSecp256k1() bool {
	privBytes := make([]byte, 32)
	privBytes[31] = 1
	pub, err := secp256k1.DerivePubKey(privBytes, true)
	if err != nil {
		return false
	}
	return hexutil.Encode(pub) == "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
}

// TestBech32 round-trips a witness payload through the BIP-173 codec and
// confirms a single flipped character breaks the checksum.
func TestBech32() bool {
	privBytes := make([]byte, 32)
	privBytes[31] = 1
	pub, err := secp256k1.DerivePubKey(privBytes, true)
	if err != nil {
		return false
	}
	addr, err := address.SegwitAddress("bc", pub)
	if err != nil {
		return false
	}
	decoded, err := bech32.Decode(addr)
	if err != nil || decoded.HRP != "bc" {
		return false
	}

	flipped := []byte(addr)
	flipped[len(flipped)-1] ^= 0x01
	_, err = bech32.Decode(string(flipped))
	return err != nil
}

// TestCashAddr converts a legacy address to CashAddr form, round-trips it
// back, and confirms a single flipped character breaks the checksum.
func TestCashAddr() bool {
	privBytes := make([]byte, 32)
	privBytes[31] = 1
	pub, err := secp256k1.DerivePubKey(privBytes, true)
	if err != nil {
		return false
	}
	legacy, err := address.LegacyAddress(address.LegacyParams{Version: 0x00}, pub)
	if err != nil {
		return false
	}
	got, err := address.BitcoinCashAddress(legacy)
	if err != nil {
		return false
	}
	decoded, err := cashaddr.Decode(got)
	if err != nil || decoded.Prefix != "bitcoincash" {
		return false
	}

	flipped := []byte(got)
	flipped[len(flipped)-1] ^= 0x01
	_, err = cashaddr.Decode(string(flipped))
	return err != nil
}

// TestKeccak256 checks Keccak-256 against the well-known empty-input
// vector, which differs from SHA3-256's empty-input digest.
func TestKeccak256() bool {
	got := hexutil.Encode(hashes.Keccak256(nil))
	return got == "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"
}

// TestKaspa builds a Kaspa address from the well-known generator-point
// public key, checks it against an independently computed known-answer
// value, round-trips it, and confirms a single flipped character breaks
// the checksum.
func TestKaspa() bool {
	privBytes := make([]byte, 32)
	privBytes[31] = 1
	pub, err := secp256k1.DerivePubKey(privBytes, true)
	if err != nil {
		return false
	}
	addr, err := address.KaspaAddress(pub)
	if err != nil {
		return false
	}
	if addr != "kaspa:qpumuen7l8wthtz45p3ftn58pvrs9xlumvkuu2xet8egzkcklqtesmzrs569j" {
		return false
	}
	decoded, err := kaspabech32.Decode(addr)
	if err != nil || decoded.HRP != address.KaspaHRP {
		return false
	}

	flipped := []byte(addr)
	flipped[len(flipped)-1] ^= 0x01
	_, err = kaspabech32.Decode(string(flipped))
	return err != nil
}

// TestEthereum checks a full, untruncated end-to-end Ethereum vector: a
// compressed public key expanded and hashed to its EIP-55-checksummed
// address.
func TestEthereum() bool {
	compressed, err := hexutil.Decode("03c026c4b041059c84a187252682b6f80cbbe64eb81497111ab6914b050a8936fd")
	if err != nil {
		return false
	}
	uncompressed, err := secp256k1.ExpandPubKey(compressed)
	if err != nil {
		return false
	}
	addr, err := address.EthereumAddress(uncompressed[1:])
	if err != nil {
		return false
	}
	return addr == "0x2161DedC3Be05B7Bb5aa16154BcbD254E9e9eb68"
}

// nimiqNanoSeed is spec.md §8's fully-specified 32-byte Ed25519 seed,
// shared by TestNimiq and TestNano.
var nimiqNanoSeed, _ = hexutil.Decode("9eac269fb28cbeab3c7cd77b60daa4590e1316b6e9a71e5e58dfeaa40d9ebc15")

// TestNimiq derives an Ed25519 public key via SHA-512 expansion and checks
// the resulting Nimiq address against a known-answer value independently
// confirmed against crypto/ed25519 in ed25519core's own test suite.
func TestNimiq() bool {
	pub, err := ed25519core.DeriveNimiqPub(nimiqNanoSeed)
	if err != nil {
		return false
	}
	addr, err := address.NimiqAddress(pub)
	if err != nil {
		return false
	}
	return addr == "NQ913R6GB9CC45JEEU47BXND4Q2GXYMRLN9L"
}

// TestNano derives an Ed25519 public key via Blake2b-512 expansion and
// checks the resulting Nano address against a known-answer value, then
// round-trips it and confirms a single flipped character breaks the
// checksum.
func TestNano() bool {
	pub, err := ed25519core.DeriveNanoPub(nimiqNanoSeed)
	if err != nil {
		return false
	}
	addr, err := address.NanoAddress(pub)
	if err != nil {
		return false
	}
	if addr != "nano_15s3t9kbaqa7ch91zcfb4ttnha1q3o74zs6t55dmpwzf59zjmfsah8ehy5df" {
		return false
	}

	flipped := []byte(addr)
	last := flipped[len(flipped)-1]
	if last == '1' {
		flipped[len(flipped)-1] = '3'
	} else {
		flipped[len(flipped)-1] = '1'
	}
	_, err = address.DecodeNanoAddress(string(flipped))
	return err != nil
}

// RunAll runs every self-test that needs no external collaborator and
// returns the name of the first one that failed, or "" if all passed.
func RunAll() string {
	checks := []struct {
		name string
		fn   func() bool
	}{
		{"secp256k1", TestSecp256k1},
		{"bech32", TestBech32},
		{"cashaddr", TestCashAddr},
		{"keccak256", TestKeccak256},
		{"kaspa", TestKaspa},
		{"ethereum", TestEthereum},
		{"nimiq", TestNimiq},
		{"nano", TestNano},
	}
	for _, c := range checks {
		if !c.fn() {
			return c.name
		}
	}
	return ""
}

// AESCipher is the minimal interface an external AES/SJCL-style password
// wrapper would need to satisfy for TestAES to exercise it. No
// implementation ships in this module; AES password encryption is left to
// an external collaborator.
type AESCipher interface {
	Encrypt(key, plaintext []byte) ([]byte, error)
	Decrypt(key, ciphertext []byte) ([]byte, error)
}

// TestAES round-trips a fixed plaintext through a caller-supplied AES
// implementation. It returns false if cipher is nil, since no cipher is
// bundled with this module.
func TestAES(cipher AESCipher) bool {
	if cipher == nil {
		return false
	}
	key := make([]byte, 32)
	plaintext := []byte("walletcrypto self-test vector..")
	ciphertext, err := cipher.Encrypt(key, plaintext)
	if err != nil {
		return false
	}
	decrypted, err := cipher.Decrypt(key, ciphertext)
	if err != nil || len(decrypted) != len(plaintext) {
		return false
	}
	for i := range plaintext {
		if plaintext[i] != decrypted[i] {
			return false
		}
	}
	return true
}
