package types

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RequestStatus is the lifecycle state of a decryption request.
// Transitions are monotonic: PENDING -> PROCESSING -> {COMPLETED | FAILED},
// FAILED -> REFUNDED, plus the direct PENDING -> FAILED edge on forced
// timeout. COMPLETED and REFUNDED are terminal.
type RequestStatus string

const (
	StatusPending    RequestStatus = "pending"
	StatusProcessing RequestStatus = "processing"
	StatusCompleted  RequestStatus = "completed"
	StatusFailed     RequestStatus = "failed"
	StatusRefunded   RequestStatus = "refunded"
)

// Valid reports whether s is a known request status.
func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusRefunded:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition may leave s.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRefunded
}

// DecryptionRequest is one decryption-and-settlement job. Everything except
// Status (and the executor/timestamp fields filled in as the job advances)
// is immutable after submission. Records are never deleted; terminal records
// remain as an audit trail. CompletedAt and RefundedAt stay at the zero time
// until the corresponding transition happens; the amino store codec does not
// preserve pointer nil-ness, so zero-valued means unset.
type DecryptionRequest struct {
	Id             string        `json:"id"`
	Requester      string        `json:"requester"`
	Deposit        math.Int      `json:"deposit"`
	Payload        []byte        `json:"payload"`
	CallbackTarget string        `json:"callback_target"`
	Status         RequestStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	TimeoutSeconds uint64        `json:"timeout_seconds"`
	Executor       string        `json:"executor,omitempty"`
	CompletedAt    time.Time     `json:"completed_at"`
	RefundedAt     time.Time     `json:"refunded_at"`
}

// ExpiresAt returns the instant after which the request is expired.
func (r DecryptionRequest) ExpiresAt() time.Time {
	return r.CreatedAt.Add(time.Duration(r.TimeoutSeconds) * time.Second)
}

// IsExpired reports whether the request is strictly past its expiry at now.
func (r DecryptionRequest) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt())
}

// ExecutorApproval is the membership record for an executor identity.
// Revocation flips Approved to false but keeps the record as history.
// RevokedAt is the zero time while the approval is live.
type ExecutorApproval struct {
	Executor   string    `json:"executor"`
	Approved   bool      `json:"approved"`
	ApprovedAt time.Time `json:"approved_at"`
	RevokedAt  time.Time `json:"revoked_at"`
}

// FeeBalance is the accrued, withdrawable fee amount of one executor.
type FeeBalance struct {
	Executor string   `json:"executor"`
	Amount   math.Int `json:"amount"`
}

// DeriveRequestID computes the deterministic request identifier from the
// requester identity, the submission block time and the payload content.
// Resubmitting identical data at the same instant therefore collides and is
// rejected as a duplicate.
func DeriveRequestID(requester sdk.AccAddress, createdAt time.Time, payload []byte) string {
	h := sha256.New()
	h.Write(requester.Bytes())

	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(createdAt.UnixNano()))
	h.Write(ts[:])

	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}
