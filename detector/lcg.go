package detector

import "fhe-watermark/arith"

// Accumulate folds items into seed with one LCG step per item:
//
//	acc = ((acc + item) * MULT + INC) mod 2^64
//
// The fold is deterministic and order-sensitive; permuting items
// changes the result except on hash collisions.
func Accumulate[W any](be arith.Backend[W], seed W, items []W) W {
	mult := be.Lift(lcgMult)
	inc := be.Lift(lcgInc)
	acc := seed
	for _, item := range items {
		acc = be.Add(acc, item)
		acc = be.Mul(acc, mult)
		acc = be.Add(acc, inc)
	}
	return acc
}
