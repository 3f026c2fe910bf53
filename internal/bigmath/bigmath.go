// Package bigmath collects the bit-level helpers the binary and decimal
// codecs share on top of math/big.Int: the spec's "Big integer
// (primitive)" component. A codec's entire bit pattern — sign,
// exponent, and significand — lives in one *big.Int while it is being
// assembled or decomposed.
package bigmath

import "math/big"

// Zero and One are read-only singletons; callers must never mutate
// them in place (use them only as arguments, or Set from them).
var (
	Zero = big.NewInt(0)
	One  = big.NewInt(1)
)

// Mask returns (1<<n)-1, an n-bit all-ones mask. n must be >= 0.
func Mask(n int) *big.Int {
	if n <= 0 {
		return big.NewInt(0)
	}
	m := new(big.Int).Lsh(One, uint(n))
	return m.Sub(m, One)
}

// Bit reports whether bit i of v is set.
func Bit(v *big.Int, i int) bool {
	return v.Bit(i) == 1
}

// SetBit returns a new integer equal to v with bit i forced to the
// given value (0 or 1); v is not mutated.
func SetBit(v *big.Int, i int, bit uint) *big.Int {
	return new(big.Int).SetBit(v, i, bit)
}

// ShiftLeft returns v << n as a new integer; v is not mutated.
func ShiftLeft(v *big.Int, n int) *big.Int {
	return new(big.Int).Lsh(v, uint(n))
}

// ShiftRight returns v >> n as a new integer; v is not mutated.
func ShiftRight(v *big.Int, n int) *big.Int {
	return new(big.Int).Rsh(v, uint(n))
}

// Or returns a | b as a new integer.
func Or(a, b *big.Int) *big.Int {
	return new(big.Int).Or(a, b)
}

// And returns a & b as a new integer.
func And(a, b *big.Int) *big.Int {
	return new(big.Int).And(a, b)
}

// AndNot returns a &^ b (a with every bit set in b cleared) as a new integer.
func AndNot(a, b *big.Int) *big.Int {
	return new(big.Int).AndNot(a, b)
}

// Add returns a + b as a new integer.
func Add(a, b *big.Int) *big.Int {
	return new(big.Int).Add(a, b)
}

// Extract returns the `width`-bit field of v starting at bit offset
// `shift` (i.e. (v >> shift) & Mask(width)).
func Extract(v *big.Int, shift, width int) *big.Int {
	return And(ShiftRight(v, shift), Mask(width))
}

// Place returns field, shifted left by `shift` bits, ORed into acc —
// the inverse of Extract, used when assembling a bit pattern from its
// components.
func Place(acc, field *big.Int, shift int) *big.Int {
	return Or(acc, ShiftLeft(field, shift))
}

// FromUint64 constructs a *big.Int from a plain unsigned integer.
func FromUint64(v uint64) *big.Int {
	return new(big.Int).SetUint64(v)
}
