package session

// Authorizer is the access-control collaborator consulted before
// parameter freezing.
type Authorizer interface {
	Allow(caller string) bool
}

// OwnerOnly authorizes exactly one caller identity.
type OwnerOnly string

func (o OwnerOnly) Allow(caller string) bool { return string(o) == caller }

// AllowAll accepts any caller; for tests and single-tenant deployments.
type AllowAll struct{}

func (AllowAll) Allow(string) bool { return true }

// Observer receives the completion event of a successful detection.
// The payload mirrors what a ledger collaborator records: the caller,
// the public denominator and the handles of the encrypted outputs.
type Observer interface {
	DetectionDone(caller string, denom uint64, totalG, flag Handle)
}

// NopObserver discards events.
type NopObserver struct{}

func (NopObserver) DetectionDone(string, uint64, Handle, Handle) {}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(caller string, denom uint64, totalG, flag Handle)

func (f ObserverFunc) DetectionDone(caller string, denom uint64, totalG, flag Handle) {
	f(caller, denom, totalG, flag)
}
