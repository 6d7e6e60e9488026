// Package field provides prime-field arithmetic on top of math/big: modular
// reduction, modular exponentiation, modular inverse, and modular square
// root for primes congruent to 3 mod 4. Every curve engine in this module
// builds on these leaf operations.
package field

import (
	"math/big"

	"github.com/walletprimitives/walletcrypto/wcerr"
)

// Mod returns the unique representative of a in [0, p).
func Mod(a, p *big.Int) *big.Int {
	r := new(big.Int).Mod(a, p)
	return r
}

// PowMod returns b^e mod p via math/big's square-and-multiply.
func PowMod(b, e, p *big.Int) *big.Int {
	return new(big.Int).Exp(b, e, p)
}

// Invert returns the modular inverse of a mod p using the extended
// Euclidean algorithm, failing when gcd(a, p) != 1.
func Invert(a, p *big.Int) (*big.Int, error) {
	g := new(big.Int)
	x := new(big.Int)
	g.GCD(x, nil, Mod(a, p), p)
	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, wcerr.New(wcerr.ErrInvalidPoint, "field: value has no modular inverse")
	}
	return Mod(x, p), nil
}

// SqrtMod returns a square root of a mod p for a prime p congruent to 3 mod
// 4, i.e. p ≡ 3 (mod 4). It fails if a has no square root mod p.
func SqrtMod(a, p *big.Int) (*big.Int, error) {
	four := big.NewInt(4)
	if new(big.Int).Mod(p, four).Cmp(big.NewInt(3)) != 0 {
		return nil, wcerr.New(wcerr.ErrInvalidPoint, "field: sqrt_mod only supports p ≡ 3 (mod 4)")
	}
	exp := new(big.Int).Add(p, big.NewInt(1))
	exp.Rsh(exp, 2) // (p+1)/4
	root := PowMod(Mod(a, p), exp, p)
	check := PowMod(root, big.NewInt(2), p)
	if check.Cmp(Mod(a, p)) != 0 {
		return nil, wcerr.New(wcerr.ErrInvalidPoint, "field: value is not a quadratic residue")
	}
	return root, nil
}
