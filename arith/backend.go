// Package arith defines 64-bit word arithmetic with silent wraparound,
// shared by the plaintext reference backend and the encrypted backend.
// Both must agree value-for-value: an operation on ciphertext words
// decrypts to the result of the same operation on native uint64.
package arith

// Backend evaluates unsigned word arithmetic over words of type W.
// All operations wrap modulo 2^64 and never trap.
//
// Implementations working on encrypted words must take one fixed code
// path per public parameter (shift amount, word width): no branch and
// no loop bound may depend on an operand's value.
type Backend[W any] interface {
	// Lift injects a public constant into the word domain. Lifted
	// values carry no secret; encrypted backends may encrypt them
	// trivially.
	Lift(v uint64) W

	// Add returns a+b mod 2^64.
	Add(a, b W) W

	// Mul returns a*b mod 2^64.
	Mul(a, b W) W

	// ShiftRight returns the logical right shift of x by n bits.
	// n must be in [0, 63].
	ShiftRight(x W, n uint) W

	// And returns the bitwise conjunction of a and b.
	And(a, b W) W

	// Lsb returns And(x, 1): the least significant bit of x.
	Lsb(x W) W

	// Gt returns Lift(1) if a > b as unsigned integers, else Lift(0).
	Gt(a, b W) W
}
