package secp256k1

import (
	"math/big"

	"github.com/walletprimitives/walletcrypto/field"
)

// PublicKey is an affine point on the curve.
type PublicKey struct {
	X, Y *big.Int
}

// DerivePubKey derives the compressed or uncompressed public key for a
// 32-byte big-endian private key. It rejects a zero scalar or one not less
// than the curve order.
func DerivePubKey(priv []byte, compressed bool) ([]byte, error) {
	pk, err := ParsePrivateKey(priv)
	if err != nil {
		return nil, err
	}
	pub := pk.PubKey()
	if compressed {
		return pub.SerializeCompressed(), nil
	}
	return pub.SerializeUncompressed(), nil
}

// SerializeCompressed returns the 33-byte 0x02/0x03-prefixed encoding.
func (p *PublicKey) SerializeCompressed() []byte {
	out := make([]byte, 33)
	if p.Y.Bit(0) == 0 {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	xBytes := p.X.Bytes()
	copy(out[33-len(xBytes):], xBytes)
	return out
}

// SerializeUncompressed returns the 65-byte 0x04-prefixed encoding.
func (p *PublicKey) SerializeUncompressed() []byte {
	out := make([]byte, 65)
	out[0] = 0x04
	xBytes := p.X.Bytes()
	yBytes := p.Y.Bytes()
	copy(out[33-len(xBytes):33], xBytes)
	copy(out[65-len(yBytes):], yBytes)
	return out
}

// ParsePubKey decodes a compressed (33-byte) or uncompressed (65-byte)
// public key, recovering y from x via the curve equation for the
// compressed form and validating the point lies on the curve either way.
func ParsePubKey(b []byte) (*PublicKey, error) {
	switch {
	case len(b) == 33:
		return decompress(b)
	case len(b) == 65:
		if b[0] != 0x04 {
			return nil, errPubKeyInvalidFormat
		}
		x := new(big.Int).SetBytes(b[1:33])
		y := new(big.Int).SetBytes(b[33:65])
		if x.Cmp(P) >= 0 {
			return nil, errPubKeyXTooBig
		}
		if y.Cmp(P) >= 0 {
			return nil, errPubKeyYTooBig
		}
		if !isOnCurve(x, y) {
			return nil, errPubKeyNotOnCurve
		}
		return &PublicKey{X: x, Y: y}, nil
	default:
		return nil, errPubKeyInvalidLen
	}
}

// decompress recovers the full point from a 33-byte compressed encoding by
// computing y = sqrt(x^3 + 7) mod P and selecting the root matching the
// parity byte.
func decompress(b []byte) (*PublicKey, error) {
	if b[0] != 0x02 && b[0] != 0x03 {
		return nil, errPubKeyInvalidFormat
	}
	x := new(big.Int).SetBytes(b[1:33])
	if x.Cmp(P) >= 0 {
		return nil, errPubKeyXTooBig
	}

	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, B)
	rhs.Mod(rhs, P)

	y, err := field.SqrtMod(rhs, P)
	if err != nil {
		return nil, errPubKeyNotOnCurve
	}

	wantOdd := b[0] == 0x03
	if y.Bit(0) == 1 != wantOdd {
		y = new(big.Int).Sub(P, y)
	}

	if !isOnCurve(x, y) {
		return nil, errPubKeyNotOnCurve
	}
	return &PublicKey{X: x, Y: y}, nil
}

// ExpandPubKey converts a 33-byte compressed public key to its 65-byte
// uncompressed form.
func ExpandPubKey(compressed []byte) ([]byte, error) {
	pub, err := ParsePubKey(compressed)
	if err != nil {
		return nil, err
	}
	if len(compressed) != 33 {
		return nil, errPubKeyInvalidLen
	}
	return pub.SerializeUncompressed(), nil
}

// CompressPubKey converts a 65-byte uncompressed public key to its 33-byte
// compressed form.
func CompressPubKey(uncompressed []byte) ([]byte, error) {
	pub, err := ParsePubKey(uncompressed)
	if err != nil {
		return nil, err
	}
	if len(uncompressed) != 65 {
		return nil, errPubKeyInvalidLen
	}
	return pub.SerializeCompressed(), nil
}
