package secp256k1

import "math/big"

// PrivateKey is a secp256k1 scalar in [1, N-1].
type PrivateKey struct {
	D *big.Int
}

// ParsePrivateKey validates a 32-byte big-endian private key and rejects
// zero and out-of-range scalars: derivations never accept k = 0 or k >= N.
func ParsePrivateKey(priv []byte) (*PrivateKey, error) {
	if len(priv) != 32 {
		return nil, errPrivKeyInvalidLen
	}
	d := new(big.Int).SetBytes(priv)
	if d.Sign() == 0 {
		return nil, errScalarZero
	}
	if d.Cmp(N) >= 0 {
		return nil, errScalarTooBig
	}
	return &PrivateKey{D: d}, nil
}

// Serialize returns the 32-byte big-endian encoding of the scalar.
func (p *PrivateKey) Serialize() []byte {
	b := make([]byte, 32)
	dBytes := p.D.Bytes()
	copy(b[32-len(dBytes):], dBytes)
	return b
}

// PubKey derives the public key P = D*G.
func (p *PrivateKey) PubKey() *PublicKey {
	pt := scalarMultG(p.D)
	return &PublicKey{X: pt.x, Y: pt.y}
}
