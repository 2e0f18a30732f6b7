package types

// Event types for the decrypt module
// All event types use lowercase with underscore separator (module_action format)
const (
	EventTypeRequestCreated   = "decrypt_request_created"
	EventTypeRequestCompleted = "decrypt_request_completed"
	EventTypeRequestFailed    = "decrypt_request_failed"
	EventTypeRefundProcessed  = "decrypt_refund_processed"
	EventTypeRefundDeferred   = "decrypt_refund_deferred"
	EventTypeTimeoutActivated = "decrypt_timeout_activated"
	EventTypeExecutorApproved = "decrypt_executor_approved"
	EventTypeExecutorRevoked  = "decrypt_executor_revoked"
	EventTypeFeesWithdrawn    = "decrypt_fees_withdrawn"
	EventTypeParamsUpdated    = "decrypt_params_updated"
	EventTypeCallbackFaulted  = "decrypt_callback_faulted"
)

// Event attribute keys for the decrypt module
const (
	AttributeKeyRequestID      = "request_id"
	AttributeKeyRequester      = "requester"
	AttributeKeyExecutor       = "executor"
	AttributeKeyCallbackTarget = "callback_target"
	AttributeKeyDeposit        = "deposit"
	AttributeKeyAmount         = "amount"
	AttributeKeyRecipient      = "recipient"
	AttributeKeySuccess        = "success"
	AttributeKeyReason         = "reason"
	AttributeKeyExpiresAt      = "expires_at"
	AttributeKeyRefundPath     = "refund_path"
)

// Refund path attribute values. Push refunds happen inside CompleteRequest on
// callback failure, pull refunds via an explicit ClaimRefund.
const (
	RefundPathPush = "push"
	RefundPathPull = "pull"
)
