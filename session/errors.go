package session

import "errors"

// Boundary failure taxonomy. Every precondition is checked before any
// ciphertext arithmetic runs; a failed call leaves both the frozen
// parameters and the previous detection result untouched.
var (
	ErrAlreadyFrozen  = errors.New("session: watermark params already frozen")
	ErrParamsNotSet   = errors.New("session: watermark params not set")
	ErrStreamTooShort = errors.New("session: token stream shorter than the n-gram length")
	ErrMissingProof   = errors.New("session: empty input proof")
	ErrUnauthorized   = errors.New("session: caller not authorized")
	ErrBadKeyCount    = errors.New("session: wrong number of watermark keys")
	ErrUnknownHandle  = errors.New("session: unknown ciphertext handle")
	ErrNoResult       = errors.New("session: no detection result recorded yet")
)
