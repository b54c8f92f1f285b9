// Package detector implements n-gram watermark detection over an
// arbitrary word-arithmetic backend. Each position of a token stream is
// scored by hashing its context window under K secret keys, extracting
// one pseudo-random bit per key, and summing; a stream is flagged as
// watermarked when more than half of all extracted bits come back set.
//
// The package is pure: it holds no state, and all loop bounds depend
// only on public quantities (stream length, K, the n-gram length).
// Token values influence results exclusively through backend arithmetic,
// so the same code drives both the plaintext oracle and the encrypted
// production path.
package detector

const (
	// NumKeys is the number of secret-keyed channels (K).
	NumKeys = 3

	// NGramLen is the n-gram length: ContextLen context tokens plus
	// the current token form one scoring window.
	NGramLen = 4

	// ContextLen is the context length H = NGramLen - 1.
	ContextLen = NGramLen - 1

	// LCG mixing constants. The multiplier is the standard 64-bit
	// PCG/Knuth constant; both are public.
	lcgMult uint64 = 6364136223846793005
	lcgInc  uint64 = 1
)
