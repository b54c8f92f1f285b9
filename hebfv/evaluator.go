package hebfv

import (
	"github.com/tuneinsight/lattigo/v4/bfv"
	"github.com/tuneinsight/lattigo/v4/rlwe"

	"fhe-watermark/arith"
)

// Backend evaluates word arithmetic over encrypted operands. It holds
// only public material: the evaluation keys, and cached fresh
// encryptions of the constants 0 and 1 used by gate identities. It
// satisfies arith.Backend for *Word, with arithmetic modulo
// 2^WordBits (2^64 in the detector configuration).
type Backend struct {
	params Parameters
	eval   bfv.Evaluator
	enc    *Encryptor
	zero   *rlwe.Ciphertext // encryption of 0
	one    *rlwe.Ciphertext // encryption of 1
}

var _ arith.Backend[*Word] = (*Backend)(nil)

// NewBackend builds an evaluator-side backend from public key material.
func NewBackend(p Parameters, pk *rlwe.PublicKey, rlk *rlwe.RelinearizationKey) *Backend {
	enc := NewEncryptor(p, pk)
	return &Backend{
		params: p,
		eval:   bfv.NewEvaluator(p.bfv, rlwe.EvaluationKey{Rlk: rlk}),
		enc:    enc,
		zero:   enc.encryptBit(0),
		one:    enc.encryptBit(1),
	}
}

// Gate layer. Operands encrypt 0 or 1; each identity returns a fresh
// ciphertext that again encrypts 0 or 1, so gates compose freely.

func (be *Backend) and(a, b *rlwe.Ciphertext) *rlwe.Ciphertext {
	return be.eval.RelinearizeNew(be.eval.MulNew(a, b))
}

func (be *Backend) xor(a, b *rlwe.Ciphertext) *rlwe.Ciphertext {
	ab := be.and(a, b)
	out := be.eval.AddNew(a, b)
	out = be.eval.SubNew(out, ab)
	return be.eval.SubNew(out, ab)
}

func (be *Backend) or(a, b *rlwe.Ciphertext) *rlwe.Ciphertext {
	ab := be.and(a, b)
	return be.eval.SubNew(be.eval.AddNew(a, b), ab)
}

func (be *Backend) not(a *rlwe.Ciphertext) *rlwe.Ciphertext {
	return be.eval.SubNew(be.one, a)
}

// Lift encrypts a public constant bit by bit. The freshly drawn
// randomness hides nothing (the value is public); it only keeps lifted
// words well-formed ciphertexts like any other operand.
func (be *Backend) Lift(v uint64) *Word {
	return be.enc.EncryptWord(v)
}

// Add is a ripple-carry adder; the carry out of the top bit is
// discarded, which is exactly wraparound modulo 2^width.
func (be *Backend) Add(a, b *Word) *Word {
	n := be.params.wordBits
	out := make([]*rlwe.Ciphertext, n)
	carry := be.zero
	for i := 0; i < n; i++ {
		axb := be.xor(a.bits[i], b.bits[i])
		out[i] = be.xor(axb, carry)
		carry = be.or(be.and(a.bits[i], b.bits[i]), be.and(carry, axb))
	}
	return &Word{bits: out}
}

// Mul is schoolbook shift-and-add: one partial product per multiplier
// bit, each gated by that bit, summed with Add. All width^2 gate
// evaluations happen regardless of operand values.
func (be *Backend) Mul(a, b *Word) *Word {
	n := be.params.wordBits
	acc := be.zeroWord()
	for j := 0; j < n; j++ {
		partial := make([]*rlwe.Ciphertext, n)
		for i := 0; i < n; i++ {
			if i < j {
				partial[i] = be.zero
			} else {
				partial[i] = be.and(a.bits[i-j], b.bits[j])
			}
		}
		acc = be.Add(acc, &Word{bits: partial})
	}
	return acc
}

// ShiftRight relabels bit positions and fills the top with encrypted
// zeros; no ciphertext arithmetic is involved.
func (be *Backend) ShiftRight(x *Word, n uint) *Word {
	w := len(x.bits)
	out := make([]*rlwe.Ciphertext, w)
	for i := 0; i < w; i++ {
		if i+int(n) < w {
			out[i] = x.bits[i+int(n)]
		} else {
			out[i] = be.zero
		}
	}
	return &Word{bits: out}
}

// And is the positionwise conjunction.
func (be *Backend) And(a, b *Word) *Word {
	n := len(a.bits)
	out := make([]*rlwe.Ciphertext, n)
	for i := 0; i < n; i++ {
		out[i] = be.and(a.bits[i], b.bits[i])
	}
	return &Word{bits: out}
}

// Lsb keeps bit zero and zeroes the rest; equivalent to And(x, Lift(1))
// without the width-1 throwaway multiplications.
func (be *Backend) Lsb(x *Word) *Word {
	out := make([]*rlwe.Ciphertext, len(x.bits))
	out[0] = x.bits[0]
	for i := 1; i < len(out); i++ {
		out[i] = be.zero
	}
	return &Word{bits: out}
}

// Gt compares from the most significant bit down, keeping an equal-so-far
// flag: a > b once some bit has a=1, b=0 with all higher bits equal.
func (be *Backend) Gt(a, b *Word) *Word {
	n := len(a.bits)
	gt := be.zero
	eq := be.one
	for i := n - 1; i >= 0; i-- {
		aAboveB := be.and(a.bits[i], be.not(b.bits[i]))
		gt = be.or(gt, be.and(eq, aAboveB))
		eq = be.and(eq, be.not(be.xor(a.bits[i], b.bits[i])))
	}
	out := make([]*rlwe.Ciphertext, n)
	out[0] = gt
	for i := 1; i < n; i++ {
		out[i] = be.zero
	}
	return &Word{bits: out}
}

func (be *Backend) zeroWord() *Word {
	bits := make([]*rlwe.Ciphertext, be.params.wordBits)
	for i := range bits {
		bits[i] = be.zero
	}
	return &Word{bits: bits}
}
