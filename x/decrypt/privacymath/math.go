// Package privacymath provides the pure arithmetic primitives used around
// decryption settlement: overflow-checked 256-bit unsigned arithmetic,
// blinded division, and reversible price obfuscation.
//
// The obfuscation primitives intentionally reproduce the semantics of the
// reference scheme, including its weaknesses. PrivacyDivide scales the
// numerator and denominator by the same multiplier, so the privacy benefit
// reduces to integer-truncation differences plus a small deterministic noise
// term; it does not meaningfully hide the ratio. ObfuscatePrice works modulo
// 2^256 - 1, which is not prime, so revelation is only guaranteed when the
// blinding factor is coprime to the modulus. Neither weakness is "fixed"
// here; tests characterize the observed behavior.
package privacymath

import (
	"crypto/sha256"
	"math/big"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

var (
	ErrOverflow          = sdkerrors.Register("privacymath", 2, "arithmetic overflow")
	ErrDivisionByZero    = sdkerrors.Register("privacymath", 3, "division by zero")
	ErrInvalidMultiplier = sdkerrors.Register("privacymath", 4, "multiplier outside (0, 2^64]")
	ErrInvalidPrice      = sdkerrors.Register("privacymath", 5, "price must be positive")
	ErrInvalidFactor     = sdkerrors.Register("privacymath", 6, "blinding factor must be positive")
	ErrNoModularInverse  = sdkerrors.Register("privacymath", 7, "blinding factor has no modular inverse")
)

var (
	// uint256Bound is 2^256; any result at or above it overflows.
	uint256Bound = new(big.Int).Lsh(big.NewInt(1), 256)

	// obfuscationModulus is 2^256 - 1. Not prime; see package doc.
	obfuscationModulus = new(big.Int).Sub(uint256Bound, big.NewInt(1))

	// maxMultiplier is 2^64, the inclusive upper bound for PrivacyDivide.
	maxMultiplier = new(big.Int).Lsh(big.NewInt(1), 64)

	// divisionScale is the fixed 1e18 scale the numerator is truncated by.
	divisionScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

	// noiseRange bounds the deterministic noise term of PrivacyDivide.
	noiseRange = big.NewInt(10)
)

// CheckedAdd returns a + b, or ErrOverflow if the sum does not fit in 256
// bits. It never wraps.
func CheckedAdd(a, b math.Uint) (math.Uint, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())
	if result.Cmp(uint256Bound) >= 0 {
		return math.Uint{}, ErrOverflow.Wrap("addition result exceeds maximum value")
	}
	return math.NewUintFromBigInt(result), nil
}

// CheckedMul returns a * b, or ErrOverflow if the product does not fit in
// 256 bits. Either operand being zero yields an immediate zero result.
func CheckedMul(a, b math.Uint) (math.Uint, error) {
	if a.IsZero() || b.IsZero() {
		return math.ZeroUint(), nil
	}

	result := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if result.Cmp(uint256Bound) >= 0 {
		return math.Uint{}, ErrOverflow.Wrap("multiplication result exceeds maximum value")
	}
	return math.NewUintFromBigInt(result), nil
}

// PrivacyDivide computes the blinded quotient of numerator and denominator.
// The numerator is scaled by multiplier and truncated by the fixed 1e18
// scale, divided, then folded with a deterministic noise term derived from a
// hash of the three inputs:
//
//	scaled = numerator * multiplier / 1e18
//	result = scaled / denominator
//	final  = (result + noise) mod (result + 1)
//
// The multiplier must lie in (0, 2^64]. Because numerator and denominator
// see the same multiplier the ratio itself is barely disturbed; do not rely
// on this for more than truncation-level obfuscation.
func PrivacyDivide(numerator, denominator, multiplier math.Uint) (math.Uint, error) {
	if denominator.IsZero() {
		return math.Uint{}, ErrDivisionByZero
	}
	if multiplier.IsZero() || multiplier.BigInt().Cmp(maxMultiplier) > 0 {
		return math.Uint{}, ErrInvalidMultiplier.Wrapf("got %s", multiplier.String())
	}

	scaled := new(big.Int).Mul(numerator.BigInt(), multiplier.BigInt())
	scaled.Quo(scaled, divisionScale)

	result := scaled.Quo(scaled, denominator.BigInt())

	noise := deriveNoise(numerator, denominator, multiplier)

	// final = (result + noise) mod (result + 1)
	modulus := new(big.Int).Add(result, big.NewInt(1))
	final := new(big.Int).Add(result, noise)
	final.Mod(final, modulus)

	return math.NewUintFromBigInt(final), nil
}

// deriveNoise reduces a one-way hash of the inputs to a small range. The
// same inputs always produce the same noise, keeping results reproducible.
func deriveNoise(numerator, denominator, multiplier math.Uint) *big.Int {
	h := sha256.New()
	h.Write(uint256Bytes(numerator))
	h.Write(uint256Bytes(denominator))
	h.Write(uint256Bytes(multiplier))

	noise := new(big.Int).SetBytes(h.Sum(nil))
	return noise.Mod(noise, noiseRange)
}

// ObfuscatePrice masks a price with a blinding factor: the price is XORed
// with the factor, then multiplied by the factor modulo 2^256 - 1. Both
// inputs must be positive.
func ObfuscatePrice(price, blindingFactor math.Uint) (math.Uint, error) {
	if price.IsZero() {
		return math.Uint{}, ErrInvalidPrice
	}
	if blindingFactor.IsZero() {
		return math.Uint{}, ErrInvalidFactor
	}

	xored := new(big.Int).Xor(price.BigInt(), blindingFactor.BigInt())
	obfuscated := new(big.Int).Mul(xored, blindingFactor.BigInt())
	obfuscated.Mod(obfuscated, obfuscationModulus)

	return math.NewUintFromBigInt(obfuscated), nil
}

// RevealObfuscatedValue undoes ObfuscatePrice with the same blinding factor:
// multiply by the factor's modular multiplicative inverse (extended
// Euclidean algorithm) modulo 2^256 - 1, then XOR with the factor. When
// gcd(blindingFactor, modulus) != 1 no inverse exists and
// ErrNoModularInverse is returned; for such factors the round trip is not
// recoverable.
func RevealObfuscatedValue(obfuscated, blindingFactor math.Uint) (math.Uint, error) {
	if blindingFactor.IsZero() {
		return math.Uint{}, ErrInvalidFactor
	}

	inverse := new(big.Int).ModInverse(blindingFactor.BigInt(), obfuscationModulus)
	if inverse == nil {
		return math.Uint{}, ErrNoModularInverse.Wrapf("gcd(%s, 2^256-1) != 1", blindingFactor.String())
	}

	xored := new(big.Int).Mul(obfuscated.BigInt(), inverse)
	xored.Mod(xored, obfuscationModulus)

	revealed := xored.Xor(xored, blindingFactor.BigInt())
	return math.NewUintFromBigInt(revealed), nil
}

// IsWithinSafeBounds reports whether 0 < value <= (2^256 - 1) / 2, the range
// in which downstream arithmetic cannot overflow on a single doubling.
func IsWithinSafeBounds(value math.Uint) bool {
	if value.IsZero() {
		return false
	}
	half := new(big.Int).Rsh(obfuscationModulus, 1)
	return value.BigInt().Cmp(half) <= 0
}

// uint256Bytes returns the 32-byte big-endian encoding of v.
func uint256Bytes(v math.Uint) []byte {
	buf := make([]byte, 32)
	v.BigInt().FillBytes(buf)
	return buf
}
