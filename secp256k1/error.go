package secp256k1

import "github.com/walletprimitives/walletcrypto/wcerr"

// These wrap the shared wcerr.ErrorKind values with the descriptions this
// package's callers see; the Err field is always one of wcerr's kinds so
// callers can dispatch on it with a single shared type across the module.
var (
	errScalarZero = wcerr.New(wcerr.ErrInvalidScalar, "secp256k1: scalar is zero")
	errScalarTooBig = wcerr.New(wcerr.ErrInvalidScalar, "secp256k1: scalar is not less than the curve order")

	errPubKeyInvalidLen    = wcerr.New(wcerr.ErrInvalidLength, "secp256k1: public key has an invalid byte length")
	errPubKeyInvalidFormat = wcerr.New(wcerr.ErrInvalidPoint, "secp256k1: public key has an invalid format prefix")
	errPubKeyXTooBig       = wcerr.New(wcerr.ErrInvalidPoint, "secp256k1: public key x coordinate is not in the field")
	errPubKeyYTooBig       = wcerr.New(wcerr.ErrInvalidPoint, "secp256k1: public key y coordinate is not in the field")
	errPubKeyNotOnCurve    = wcerr.New(wcerr.ErrInvalidPoint, "secp256k1: public key is not a point on the curve")

	errPrivKeyInvalidLen = wcerr.New(wcerr.ErrInvalidLength, "secp256k1: private key must be exactly 32 bytes")
)
