package hebfv

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v4/bfv"
	"github.com/tuneinsight/lattigo/v4/rlwe"
)

// Decryptor recovers word values. Only the verdict-reading party holds
// one; the evaluator never does.
type Decryptor struct {
	params  Parameters
	encoder bfv.Encoder
	dec     rlwe.Decryptor
	slots   []uint64
}

// NewDecryptor builds a Decryptor from the secret key.
func NewDecryptor(p Parameters, sk *rlwe.SecretKey) *Decryptor {
	return &Decryptor{
		params:  p,
		encoder: bfv.NewEncoder(p.bfv),
		dec:     bfv.NewDecryptor(p.bfv, sk),
		slots:   make([]uint64, p.bfv.N()),
	}
}

// decryptBit decrypts one bit ciphertext. A value outside {0,1} means
// the noise budget was exhausted.
func (d *Decryptor) decryptBit(ct *rlwe.Ciphertext) (uint64, error) {
	pt := bfv.NewPlaintext(d.params.bfv, ct.Level())
	d.dec.Decrypt(ct, pt)
	d.encoder.Decode(pt, d.slots)
	b := d.slots[0]
	if b > 1 {
		return 0, fmt.Errorf("hebfv: bit decrypted to %d, noise budget exhausted", b)
	}
	return b, nil
}

// DecryptWord recovers the integer value of w.
func (d *Decryptor) DecryptWord(w *Word) (uint64, error) {
	var v uint64
	for i, ct := range w.bits {
		b, err := d.decryptBit(ct)
		if err != nil {
			return 0, fmt.Errorf("bit %d: %w", i, err)
		}
		v |= b << uint(i)
	}
	return v, nil
}
