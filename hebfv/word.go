package hebfv

import (
	"encoding/binary"
	"fmt"

	"github.com/tuneinsight/lattigo/v4/rlwe"
)

// Word is a bit-sliced encrypted integer: one ciphertext per bit, least
// significant first. Word operations never mutate a ciphertext in
// place, so bit ciphertexts may be shared between words.
type Word struct {
	bits []*rlwe.Ciphertext
}

// Bits returns the word width.
func (w *Word) Bits() int { return len(w.bits) }

// MarshalBinary serializes the word as a bit count followed by
// length-prefixed ciphertexts.
func (w *Word) MarshalBinary() ([]byte, error) {
	var out []byte
	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(len(w.bits)))
	out = append(out, hdr[:]...)
	for i, ct := range w.bits {
		data, err := ct.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("hebfv: marshal bit %d: %w", i, err)
		}
		binary.BigEndian.PutUint32(hdr[:], uint32(len(data)))
		out = append(out, hdr[:]...)
		out = append(out, data...)
	}
	return out, nil
}

// UnmarshalBinary decodes a word serialized by MarshalBinary.
func (w *Word) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return fmt.Errorf("hebfv: word too short")
	}
	n := int(binary.BigEndian.Uint32(data))
	data = data[4:]
	bits := make([]*rlwe.Ciphertext, n)
	for i := 0; i < n; i++ {
		if len(data) < 4 {
			return fmt.Errorf("hebfv: truncated bit %d", i)
		}
		sz := int(binary.BigEndian.Uint32(data))
		data = data[4:]
		if len(data) < sz {
			return fmt.Errorf("hebfv: truncated bit %d payload", i)
		}
		ct := new(rlwe.Ciphertext)
		if err := ct.UnmarshalBinary(data[:sz]); err != nil {
			return fmt.Errorf("hebfv: unmarshal bit %d: %w", i, err)
		}
		bits[i] = ct
		data = data[sz:]
	}
	if len(data) != 0 {
		return fmt.Errorf("hebfv: %d trailing bytes", len(data))
	}
	w.bits = bits
	return nil
}
