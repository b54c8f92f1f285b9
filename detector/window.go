package detector

import "fhe-watermark/arith"

// ScoreWindow computes the g-value of one (context, current) pair:
// for each key channel l it hashes (ctxHash, current, l) under keys[l],
// shifts the hash right by l and keeps the low bit. The returned sum
// lies in [0, NumKeys].
//
// context must have length ContextLen and keys length NumKeys; both are
// public shapes validated by the boundary layer.
func ScoreWindow[W any](be arith.Backend[W], context []W, current W, keys []W) W {
	ctxHash := Accumulate(be, keys[0], context)
	g := be.Lift(0)
	for l := 0; l < NumKeys; l++ {
		// The channel index participates in the hash, binding each
		// bit to its key slot.
		tokHash := Accumulate(be, keys[l], []W{ctxHash, current, be.Lift(uint64(l))})
		shifted := tokHash
		if l > 0 {
			shifted = be.ShiftRight(tokHash, uint(l))
		}
		g = be.Add(g, be.Lsb(shifted))
	}
	return g
}
