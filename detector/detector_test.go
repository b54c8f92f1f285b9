package detector

import (
	"math/rand"
	"testing"

	"fhe-watermark/arith"
)

// oracleAccumulate reimplements the LCG fold directly on uint64 so the
// generic code path is checked against an independent computation.
func oracleAccumulate(seed uint64, items []uint64) uint64 {
	acc := seed
	for _, it := range items {
		acc += it
		acc *= 6364136223846793005
		acc++
	}
	return acc
}

func oracleScore(context []uint64, current uint64, keys []uint64) uint64 {
	ctxHash := oracleAccumulate(keys[0], context)
	var g uint64
	for l := 0; l < NumKeys; l++ {
		tokHash := oracleAccumulate(keys[l], []uint64{ctxHash, current, uint64(l)})
		g += (tokHash >> uint(l)) & 1
	}
	return g
}

func oracleDetect(tokens, keys []uint64) (totalG, denom uint64, flag bool) {
	windows := len(tokens) - ContextLen
	if windows <= 0 {
		return 0, 0, false
	}
	denom = uint64(windows) * NumKeys
	for i := 0; i < windows; i++ {
		totalG += oracleScore(tokens[i:i+ContextLen], tokens[i+ContextLen], keys)
	}
	return totalG, denom, 2*totalG > denom
}

var testKeys = []uint64{100, 200, 300}

func TestAccumulateMatchesOracle(t *testing.T) {
	be := arith.Plain{}
	cases := [][]uint64{
		{},
		{0},
		{10, 20, 30},
		{0xffffffffffffffff, 0xffffffffffffffff},
		{1, 0x8000000000000000, 0xfffffffffffffffe, 7},
	}
	for _, items := range cases {
		for _, seed := range []uint64{0, 1, 100, 0xffffffffffffffff} {
			got := Accumulate(be, seed, items)
			want := oracleAccumulate(seed, items)
			if got != want {
				t.Fatalf("Accumulate(seed=%#x, %v)=%#x want %#x", seed, items, got, want)
			}
		}
	}
}

func TestAccumulateOrderSensitive(t *testing.T) {
	be := arith.Plain{}
	a := Accumulate(be, 100, []uint64{10, 20, 30})
	b := Accumulate(be, 100, []uint64{20, 10, 30})
	if a == b {
		t.Fatalf("permuted inputs produced the same accumulator %#x", a)
	}
	// Pinned values from an independent modulo-2^64 evaluation.
	if a != 18278254784947110871 {
		t.Fatalf("Accumulate(100,[10,20,30])=%d want 18278254784947110871", a)
	}
	if b != 6348263702108705359 {
		t.Fatalf("Accumulate(100,[20,10,30])=%d want 6348263702108705359", b)
	}
}

// TestConcreteScenario pins the reference instantiation: params
// [100,200,300], tokens [10,20,30,40], one window, denom 3.
func TestConcreteScenario(t *testing.T) {
	be := arith.Plain{}
	res := Detect(be, []uint64{10, 20, 30, 40}, testKeys)
	if res.Denom != 3 {
		t.Fatalf("denom=%d want 3", res.Denom)
	}
	if res.TotalG != 1 {
		t.Fatalf("totalG=%d want 1", res.TotalG)
	}
	if res.Flag != 0 {
		t.Fatalf("flag=%d want 0 (totalG=1 is not a majority of 3)", res.Flag)
	}
}

func TestScoreWindowOrderSensitive(t *testing.T) {
	be := arith.Plain{}
	// Chosen so that swapping the first two context tokens flips a bit.
	g1 := ScoreWindow(be, []uint64{1, 2, 3}, 4, testKeys)
	g2 := ScoreWindow(be, []uint64{2, 1, 3}, 4, testKeys)
	if g1 != 1 || g2 != 0 {
		t.Fatalf("got g1=%d g2=%d want 1 and 0", g1, g2)
	}
}

func TestShiftByZeroEquivalence(t *testing.T) {
	// The l==0 channel skips the shift; shifting by zero must be the
	// identity so the branch is purely cosmetic.
	be := arith.Plain{}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		x := rng.Uint64()
		if be.ShiftRight(x, 0) != x {
			t.Fatalf("ShiftRight(%#x, 0) != identity", x)
		}
	}
}

func TestDegenerateShortStreams(t *testing.T) {
	be := arith.Plain{}
	for length := 0; length < NGramLen; length++ {
		tokens := make([]uint64, length)
		res := Detect(be, tokens, testKeys)
		if res.TotalG != 0 || res.Denom != 0 || res.Flag != 0 {
			t.Fatalf("len=%d: got %+v want zero result", length, res)
		}
	}
}

func TestWindowCounts(t *testing.T) {
	be := arith.Plain{}
	rng := rand.New(rand.NewSource(11))
	for k := 0; k < 20; k++ {
		tokens := make([]uint64, NGramLen+k)
		for i := range tokens {
			tokens[i] = rng.Uint64()
		}
		res := Detect(be, tokens, testKeys)
		wantDenom := uint64(k+1) * NumKeys
		if res.Denom != wantDenom {
			t.Fatalf("len=%d: denom=%d want %d", len(tokens), res.Denom, wantDenom)
		}
	}
}

func TestDetectMatchesOracleAndBounds(t *testing.T) {
	be := arith.Plain{}
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		n := NGramLen + rng.Intn(64)
		tokens := make([]uint64, n)
		for i := range tokens {
			tokens[i] = rng.Uint64()
		}
		keys := []uint64{rng.Uint64(), rng.Uint64(), rng.Uint64()}

		res := Detect(be, tokens, keys)
		totalG, denom, flag := oracleDetect(tokens, keys)
		if res.TotalG != totalG || res.Denom != denom {
			t.Fatalf("trial %d: got (%d,%d) want (%d,%d)", trial, res.TotalG, res.Denom, totalG, denom)
		}
		wantFlag := uint64(0)
		if flag {
			wantFlag = 1
		}
		if res.Flag != wantFlag {
			t.Fatalf("trial %d: flag=%d want %d", trial, res.Flag, wantFlag)
		}
		// Score bounds: totalG <= windows*NumKeys.
		if res.TotalG > res.Denom {
			t.Fatalf("trial %d: totalG=%d exceeds denom=%d", trial, res.TotalG, res.Denom)
		}
		// Flag consistency, recomputed from the returned pair.
		if (2*res.TotalG > res.Denom) != (res.Flag == 1) {
			t.Fatalf("trial %d: flag inconsistent with totalG/denom", trial)
		}
	}
}

func TestScoreWindowBounds(t *testing.T) {
	be := arith.Plain{}
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 500; trial++ {
		ctx := []uint64{rng.Uint64(), rng.Uint64(), rng.Uint64()}
		g := ScoreWindow(be, ctx, rng.Uint64(), testKeys)
		if g > NumKeys {
			t.Fatalf("g=%d out of [0,%d]", g, NumKeys)
		}
	}
}

func TestDetectDeterministic(t *testing.T) {
	be := arith.Plain{}
	tokens := []uint64{10, 20, 30, 40, 50, 60}
	first := Detect(be, tokens, testKeys)
	for i := 0; i < 10; i++ {
		if got := Detect(be, tokens, testKeys); got != first {
			t.Fatalf("run %d: %+v differs from %+v", i, got, first)
		}
	}
	// Pinned expectation for this stream: 3 windows scoring 3 in total.
	if first.TotalG != 3 || first.Denom != 9 || first.Flag != 0 {
		t.Fatalf("got %+v want {TotalG:3 Denom:9 Flag:0}", first)
	}
}
