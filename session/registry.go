package session

import "fmt"

// InputVerifier is the opaque decrypt-and-verify primitive: it turns
// ciphertext handles plus a well-formedness attestation into verified
// words the core algorithm can consume. Proof validation itself lives
// with the platform; implementations here only honor the contract that
// a non-nil error means nothing was ingested.
type InputVerifier[W any] interface {
	Verify(handles []Handle, proof []byte) ([]W, error)
}

// Registry stores ciphertext words against opaque handles. It doubles
// as the InputVerifier for deployments where the words were ingested
// through this process and the attestation was checked upstream.
type Registry[W any] struct {
	seq   uint64
	words map[Handle]W
}

// NewRegistry returns an empty registry.
func NewRegistry[W any]() *Registry[W] {
	return &Registry[W]{words: make(map[Handle]W)}
}

// Put stores word and returns its handle. payload feeds the handle
// derivation; pass the ciphertext serialization when one is available,
// nil otherwise.
func (r *Registry[W]) Put(word W, payload []byte) Handle {
	h := deriveHandle(r.seq, payload)
	r.seq++
	r.words[h] = word
	return h
}

// Get resolves a single handle.
func (r *Registry[W]) Get(h Handle) (W, error) {
	w, ok := r.words[h]
	if !ok {
		var zero W
		return zero, fmt.Errorf("%w: %s", ErrUnknownHandle, h)
	}
	return w, nil
}

// Resolve maps handles to words, failing on the first unknown handle.
func (r *Registry[W]) Resolve(handles []Handle) ([]W, error) {
	out := make([]W, len(handles))
	for i, h := range handles {
		w, err := r.Get(h)
		if err != nil {
			return nil, fmt.Errorf("handle %d: %w", i, err)
		}
		out[i] = w
	}
	return out, nil
}

// Verify implements InputVerifier; the proof content is not inspected
// here (the boundary has already rejected empty attestations and the
// platform checked well-formedness at ingestion).
func (r *Registry[W]) Verify(handles []Handle, proof []byte) ([]W, error) {
	return r.Resolve(handles)
}

// Len reports the number of stored words.
func (r *Registry[W]) Len() int { return len(r.words) }
