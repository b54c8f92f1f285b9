package hebfv

import (
	"github.com/tuneinsight/lattigo/v4/bfv"
	"github.com/tuneinsight/lattigo/v4/rlwe"
)

// Encryptor turns plaintext token values into encrypted words. key may
// be either *rlwe.PublicKey or *rlwe.SecretKey.
type Encryptor struct {
	params  Parameters
	encoder bfv.Encoder
	enc     rlwe.Encryptor
}

// NewEncryptor builds an Encryptor for the given key.
func NewEncryptor(p Parameters, key interface{}) *Encryptor {
	return &Encryptor{
		params:  p,
		encoder: bfv.NewEncoder(p.bfv),
		enc:     bfv.NewEncryptor(p.bfv, key),
	}
}

// encryptBit encrypts a single 0/1 value.
func (e *Encryptor) encryptBit(b uint64) *rlwe.Ciphertext {
	pt := bfv.NewPlaintext(e.params.bfv, e.params.bfv.MaxLevel())
	e.encoder.Encode([]uint64{b & 1}, pt)
	return e.enc.EncryptNew(pt)
}

// EncryptWord encrypts v, truncated to the configured word width.
func (e *Encryptor) EncryptWord(v uint64) *Word {
	v &= e.params.mask()
	bits := make([]*rlwe.Ciphertext, e.params.wordBits)
	for i := range bits {
		bits[i] = e.encryptBit((v >> uint(i)) & 1)
	}
	return &Word{bits: bits}
}

// EncryptStream encrypts each token of a stream.
func (e *Encryptor) EncryptStream(tokens []uint64) []*Word {
	out := make([]*Word, len(tokens))
	for i, tok := range tokens {
		out[i] = e.EncryptWord(tok)
	}
	return out
}
