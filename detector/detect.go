package detector

import "fhe-watermark/arith"

// Result holds one detection outcome. TotalG and Flag live in the
// backend's word domain and stay encrypted on the production path;
// Denom is windows*NumKeys, a deliberately public value (it reveals the
// stream length class, never token content).
type Result[W any] struct {
	TotalG W
	Denom  uint64
	Flag   W
}

// Detect slides the scoring window across tokens, sums the per-window
// g-values and flags the stream when 2*totalG exceeds windows*NumKeys.
//
// Streams shorter than NGramLen have zero windows; that is a defined
// degenerate outcome (no evidence, flag down, denom zero), not an
// error. keys must have length NumKeys and be the frozen watermark
// parameters; the session layer enforces both.
func Detect[W any](be arith.Backend[W], tokens []W, keys []W) Result[W] {
	windows := len(tokens) - ContextLen
	if windows <= 0 {
		return Result[W]{TotalG: be.Lift(0), Denom: 0, Flag: be.Lift(0)}
	}

	denom := uint64(windows) * NumKeys
	total := be.Lift(0)
	for i := 0; i < windows; i++ {
		score := ScoreWindow(be, tokens[i:i+ContextLen], tokens[i+ContextLen], keys)
		total = be.Add(total, score)
	}

	// 2*totalG wraps like everything else; totalG <= denom keeps it in
	// range as long as windows*NumKeys stays well below 2^63.
	doubled := be.Add(total, total)
	return Result[W]{
		TotalG: total,
		Denom:  denom,
		Flag:   be.Gt(doubled, be.Lift(denom)),
	}
}
