// Package hebfv implements the encrypted word backend on BFV
// (lattigo v4). Words are bit-sliced: an n-bit word is n ciphertexts,
// least significant bit first, each encrypting 0 or 1 in the plaintext
// ring Z_t. Boolean gates are arithmetized over Z_t
//
//	AND = a*b    XOR = a + b - 2ab    OR = a + b - ab    NOT = 1 - a
//
// and word operations (ripple-carry addition, shift-and-add
// multiplication, comparison) are fixed circuits over those gates, so
// execution shape never depends on an encrypted value.
//
// The backend is leveled: the parameter set bounds the multiplicative
// depth it can evaluate before noise swamps the plaintext. Full 64-bit
// detection circuits exceed any leveled budget and belong on a
// bootstrapped evaluation environment; this package pins down the exact
// ciphertext semantics and runs live at small word widths.
package hebfv

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v4/bfv"
)

// PlaintextModulus is the BFV plaintext modulus t. 65537 is prime and
// satisfies t = 1 mod 2N for every default ring degree up to 2^16, so
// batching stays available; bits occupy {0,1} within Z_t and every gate
// identity keeps them there.
const PlaintextModulus uint64 = 65537

// ParametersLiteral selects a BFV parameter set and the word width the
// backend operates at.
type ParametersLiteral struct {
	BFV      bfv.ParametersLiteral
	WordBits int
}

var (
	// TestPN13 is small and quick: enough budget for single gates,
	// shifts and shallow words. Not a production set.
	TestPN13 = ParametersLiteral{BFV: withT(bfv.PN13QP218), WordBits: 8}

	// DepthPN15 carries the largest default modulus chain and supports
	// the deepest circuits this leveled backend can evaluate.
	DepthPN15 = ParametersLiteral{BFV: withT(bfv.PN15QP827pq), WordBits: 64}
)

func withT(l bfv.ParametersLiteral) bfv.ParametersLiteral {
	l.T = PlaintextModulus
	return l
}

// Parameters is a validated parameter set.
type Parameters struct {
	bfv      bfv.Parameters
	wordBits int
}

// NewParametersFromLiteral validates lit and compiles the underlying
// BFV parameters.
func NewParametersFromLiteral(lit ParametersLiteral) (Parameters, error) {
	if lit.WordBits <= 0 || lit.WordBits > 64 {
		return Parameters{}, fmt.Errorf("hebfv: word bits must be in [1,64], got %d", lit.WordBits)
	}
	if lit.BFV.T != PlaintextModulus {
		return Parameters{}, fmt.Errorf("hebfv: plaintext modulus must be %d, got %d", PlaintextModulus, lit.BFV.T)
	}
	p, err := bfv.NewParametersFromLiteral(lit.BFV)
	if err != nil {
		return Parameters{}, fmt.Errorf("hebfv: bfv parameters: %w", err)
	}
	return Parameters{bfv: p, wordBits: lit.WordBits}, nil
}

// WordBits returns the word width in bits.
func (p Parameters) WordBits() int { return p.wordBits }

// BFV exposes the underlying lattigo parameters.
func (p Parameters) BFV() bfv.Parameters { return p.bfv }

// mask returns the word-width bit mask.
func (p Parameters) mask() uint64 {
	if p.wordBits == 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(p.wordBits)) - 1
}
