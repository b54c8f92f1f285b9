// Package session holds the stateful boundary around the pure detector
// core: one-time parameter freezing, handle ingestion, result storage
// and completion events. Concurrent callers must be serialized by the
// host (single-writer); the session itself takes no locks.
package session

import (
	"fhe-watermark/arith"
	"fhe-watermark/detector"
)

// Config assembles a Detector's collaborators. Backend, Verifier and
// Registry are required; Auth defaults to AllowAll and Obs to
// NopObserver.
type Config[W any] struct {
	Backend  arith.Backend[W]
	Verifier InputVerifier[W]
	Registry *Registry[W]
	Auth     Authorizer
	Obs      Observer
}

// Detector owns the watermark parameter state and the last detection
// result. Parameters move through a two-state machine, unset then
// frozen; the only legal transition is a single authorized SetParams.
type Detector[W any] struct {
	backend  arith.Backend[W]
	verifier InputVerifier[W]
	registry *Registry[W]
	auth     Authorizer
	obs      Observer

	frozen bool
	keys   []W

	last *storedResult[W]
}

type storedResult[W any] struct {
	totalG       W
	flag         W
	denom        uint64
	totalGHandle Handle
	flagHandle   Handle
}

// New builds a Detector from cfg.
func New[W any](cfg Config[W]) *Detector[W] {
	if cfg.Auth == nil {
		cfg.Auth = AllowAll{}
	}
	if cfg.Obs == nil {
		cfg.Obs = NopObserver{}
	}
	return &Detector[W]{
		backend:  cfg.Backend,
		verifier: cfg.Verifier,
		registry: cfg.Registry,
		auth:     cfg.Auth,
		obs:      cfg.Obs,
	}
}

// Frozen reports whether the watermark parameters have been set.
func (d *Detector[W]) Frozen() bool { return d.frozen }

// SetParams freezes the K watermark keys. It fails with
// ErrUnauthorized for callers the access-control collaborator rejects,
// ErrBadKeyCount unless exactly detector.NumKeys keys are supplied, and
// ErrAlreadyFrozen on any second call; the first call's keys survive a
// rejected retry unchanged.
func (d *Detector[W]) SetParams(caller string, keys []W) error {
	if !d.auth.Allow(caller) {
		return ErrUnauthorized
	}
	if d.frozen {
		return ErrAlreadyFrozen
	}
	if len(keys) != detector.NumKeys {
		return ErrBadKeyCount
	}
	d.keys = append([]W(nil), keys...)
	d.frozen = true
	return nil
}

// Detect runs one full detection over the referenced token stream.
// Preconditions, in order: parameters frozen (ErrParamsNotSet), at
// least detector.NGramLen handles (ErrStreamTooShort), a non-empty
// attestation (ErrMissingProof), and successful handle verification.
// All are checked before any ciphertext arithmetic; a failure mutates
// nothing. On success the previous result is replaced atomically, the
// encrypted outputs are registered under fresh handles, and the
// observer is notified.
func (d *Detector[W]) Detect(caller string, handles []Handle, proof []byte) (detector.Result[W], error) {
	var zero detector.Result[W]
	if !d.frozen {
		return zero, ErrParamsNotSet
	}
	if len(handles) < detector.NGramLen {
		return zero, ErrStreamTooShort
	}
	if len(proof) == 0 {
		return zero, ErrMissingProof
	}
	tokens, err := d.verifier.Verify(handles, proof)
	if err != nil {
		return zero, err
	}

	res := detector.Detect(d.backend, tokens, d.keys)

	stored := &storedResult[W]{
		totalG: res.TotalG,
		flag:   res.Flag,
		denom:  res.Denom,
	}
	stored.totalGHandle = d.registry.Put(res.TotalG, nil)
	stored.flagHandle = d.registry.Put(res.Flag, nil)
	d.last = stored

	d.obs.DetectionDone(caller, stored.denom, stored.totalGHandle, stored.flagHandle)
	return res, nil
}

// TotalG returns the handle of the most recent encrypted bit-count sum.
func (d *Detector[W]) TotalG() (Handle, error) {
	if d.last == nil {
		return Handle{}, ErrNoResult
	}
	return d.last.totalGHandle, nil
}

// Flag returns the handle of the most recent encrypted verdict.
func (d *Detector[W]) Flag() (Handle, error) {
	if d.last == nil {
		return Handle{}, ErrNoResult
	}
	return d.last.flagHandle, nil
}

// Denom returns the most recent plaintext denominator, windows*K. It
// is deliberately public: it reveals the stream length class and
// nothing else.
func (d *Detector[W]) Denom() (uint64, error) {
	if d.last == nil {
		return 0, ErrNoResult
	}
	return d.last.denom, nil
}
