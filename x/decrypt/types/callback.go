package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// CallbackOutcome is the three-way result of dispatching a decryption
// callback. Rejected (the handler returned false) and Faulted (the handler
// panicked, or no handler was registered for the target) are treated
// identically by the lifecycle; both fail the request.
type CallbackOutcome int

const (
	CallbackSuccess CallbackOutcome = iota
	CallbackRejected
	CallbackFaulted
)

// String returns the attribute value used when emitting outcome events.
func (o CallbackOutcome) String() string {
	switch o {
	case CallbackSuccess:
		return "success"
	case CallbackRejected:
		return "rejected"
	case CallbackFaulted:
		return "faulted"
	}
	return "unknown"
}

// DecryptionCallback is implemented by any component that wants to receive
// decrypted results. It is invoked synchronously from within CompleteRequest
// after the request has been moved to PROCESSING; a reentrant call back into
// the lifecycle therefore never observes PENDING. Returning false rejects
// the result; panicking is captured by the dispatcher and treated the same.
type DecryptionCallback interface {
	OnDecryptionComplete(ctx sdk.Context, requestID string, requester sdk.AccAddress, payload, decryptedPayload []byte) bool
}

// CallbackRouter maps callback target addresses to their registered
// handlers. Registration happens at app wiring time, before any message is
// handled, so no locking is needed at dispatch time.
type CallbackRouter struct {
	handlers map[string]DecryptionCallback
	sealed   bool
}

// NewCallbackRouter creates an empty callback router.
func NewCallbackRouter() *CallbackRouter {
	return &CallbackRouter{handlers: make(map[string]DecryptionCallback)}
}

// Register binds a handler to a callback target address. It panics if the
// router is sealed or the target is already bound, mirroring how the SDK's
// message router treats duplicate routes.
func (r *CallbackRouter) Register(target string, handler DecryptionCallback) {
	if r.sealed {
		panic("callback router is sealed")
	}
	if handler == nil {
		panic("callback handler cannot be nil")
	}
	if _, exists := r.handlers[target]; exists {
		panic("callback target already registered: " + target)
	}
	r.handlers[target] = handler
}

// Seal prevents further registrations.
func (r *CallbackRouter) Seal() {
	r.sealed = true
}

// Resolve returns the handler bound to target, or nil if none is registered.
func (r *CallbackRouter) Resolve(target string) DecryptionCallback {
	return r.handlers[target]
}
