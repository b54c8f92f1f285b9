package session

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

const handleDomain = "wm-handle-v1"

// Handle identifies one stored ciphertext word. Handles are 16-byte
// SHAKE-256 digests over a registry-local sequence number and the
// ciphertext serialization; callers treat them as opaque.
type Handle [16]byte

func (h Handle) String() string { return hex.EncodeToString(h[:]) }

// ParseHandle decodes the hex form produced by String.
func ParseHandle(s string) (Handle, error) {
	var h Handle
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Handle{}, err
	}
	if len(raw) != len(h) {
		return Handle{}, ErrUnknownHandle
	}
	copy(h[:], raw)
	return h, nil
}

// deriveHandle domain-separates on seq so equal payloads (or absent
// ones) still yield distinct handles.
func deriveHandle(seq uint64, payload []byte) Handle {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], seq)
	sh := sha3.NewShake256()
	sh.Write([]byte(handleDomain))
	sh.Write(buf[:])
	sh.Write(payload)
	var h Handle
	sh.Read(h[:])
	return h
}
