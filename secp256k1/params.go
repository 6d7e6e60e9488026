package secp256k1

import "math/big"

// Curve parameters for y² = x³ + 7 over the field of order P, as defined by
// SEC 2 section 2.4.1.
var (
	// P is the field prime: 2^256 - 2^32 - 977.
	P, _ = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", 16)

	// N is the order of the base point G.
	N, _ = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)

	// B is the curve coefficient: y² = x³ + B.
	B = big.NewInt(7)

	// Gx, Gy are the coordinates of the base point G.
	Gx, _ = new(big.Int).SetString("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798", 16)
	Gy, _ = new(big.Int).SetString("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8", 16)
)
