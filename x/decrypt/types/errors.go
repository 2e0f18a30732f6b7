package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Decrypt module sentinel errors. Codes are grouped by failure class so
// integrators can distinguish "retry later" from "will never succeed".

var (
	// Validation errors - the request parameters themselves are unacceptable
	ErrInvalidDeposit   = sdkerrors.Register(ModuleName, 2, "deposit must be positive")
	ErrEmptyPayload     = sdkerrors.Register(ModuleName, 3, "encrypted payload cannot be empty")
	ErrPayloadTooLarge  = sdkerrors.Register(ModuleName, 4, "encrypted payload exceeds maximum size")
	ErrInvalidCallback  = sdkerrors.Register(ModuleName, 5, "invalid callback target")
	ErrInvalidTimeout   = sdkerrors.Register(ModuleName, 6, "timeout outside configured bounds")
	ErrInvalidAddress   = sdkerrors.Register(ModuleName, 7, "invalid address")
	ErrInvalidParams    = sdkerrors.Register(ModuleName, 8, "invalid module parameters")
	ErrValidationFailed = sdkerrors.Register(ModuleName, 9, "message validation failed")

	// Authorization errors
	ErrUnauthorized        = sdkerrors.Register(ModuleName, 10, "unauthorized")
	ErrExecutorNotApproved = sdkerrors.Register(ModuleName, 11, "executor is not approved")
	ErrAlreadyApproved     = sdkerrors.Register(ModuleName, 12, "executor already approved")
	ErrExecutorNotFound    = sdkerrors.Register(ModuleName, 13, "executor not found")

	// State errors - the record exists but is not in the required state
	ErrDuplicateRequest = sdkerrors.Register(ModuleName, 20, "duplicate request")
	ErrRequestNotFound  = sdkerrors.Register(ModuleName, 21, "request not found")
	ErrInvalidStatus    = sdkerrors.Register(ModuleName, 22, "request is not in the required status")

	// Expiry errors
	ErrRequestExpired    = sdkerrors.Register(ModuleName, 30, "request has expired")
	ErrRequestNotExpired = sdkerrors.Register(ModuleName, 31, "request has not expired yet")

	// Fee ledger errors
	ErrNoFeesAccrued  = sdkerrors.Register(ModuleName, 40, "no fees accrued")
	ErrTransferFailed = sdkerrors.Register(ModuleName, 41, "fund transfer failed")
)
