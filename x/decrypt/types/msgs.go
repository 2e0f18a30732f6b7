package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgSubmitRequest   = "submit_request"
	TypeMsgCompleteRequest = "complete_request"
	TypeMsgForceTimeout    = "force_timeout"
	TypeMsgClaimRefund     = "claim_refund"
	TypeMsgApproveExecutor = "approve_executor"
	TypeMsgRevokeExecutor  = "revoke_executor"
	TypeMsgWithdrawFees    = "withdraw_fees"
	TypeMsgUpdateParams    = "update_params"
)

var (
	_ sdk.Msg = &MsgSubmitRequest{}
	_ sdk.Msg = &MsgCompleteRequest{}
	_ sdk.Msg = &MsgForceTimeout{}
	_ sdk.Msg = &MsgClaimRefund{}
	_ sdk.Msg = &MsgApproveExecutor{}
	_ sdk.Msg = &MsgRevokeExecutor{}
	_ sdk.Msg = &MsgWithdrawFees{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgSubmitRequest submits an encrypted payload together with a deposit and
// a callback target. A zero TimeoutSeconds selects the configured default.
type MsgSubmitRequest struct {
	Requester      string   `json:"requester"`
	Payload        []byte   `json:"payload"`
	CallbackTarget string   `json:"callback_target"`
	TimeoutSeconds uint64   `json:"timeout_seconds"`
	Deposit        sdk.Coin `json:"deposit"`
}

type MsgSubmitRequestResponse struct {
	RequestId string `json:"request_id"`
}

// MsgCompleteRequest reports a decrypted result for a pending request.
// Only currently approved executors may send it.
type MsgCompleteRequest struct {
	Executor         string `json:"executor"`
	RequestId        string `json:"request_id"`
	DecryptedPayload []byte `json:"decrypted_payload"`
}

type MsgCompleteRequestResponse struct {
	Status RequestStatus `json:"status"`
}

// MsgForceTimeout marks an expired request as failed. Anyone may send it;
// it moves no funds.
type MsgForceTimeout struct {
	Sender    string `json:"sender"`
	RequestId string `json:"request_id"`
}

type MsgForceTimeoutResponse struct{}

// MsgClaimRefund returns the deposit of a failed or expired request to its
// requester.
type MsgClaimRefund struct {
	Requester string `json:"requester"`
	RequestId string `json:"request_id"`
}

type MsgClaimRefundResponse struct{}

// MsgApproveExecutor adds an executor to the approved set. Authority-only.
type MsgApproveExecutor struct {
	Authority string `json:"authority"`
	Executor  string `json:"executor"`
}

type MsgApproveExecutorResponse struct{}

// MsgRevokeExecutor removes an executor from the approved set while keeping
// its history entry. Authority-only.
type MsgRevokeExecutor struct {
	Authority string `json:"authority"`
	Executor  string `json:"executor"`
}

type MsgRevokeExecutorResponse struct{}

// MsgWithdrawFees drains an executor's accrued fee balance. The executor
// itself or the authority (on the executor's behalf) may send it.
type MsgWithdrawFees struct {
	Sender   string `json:"sender"`
	Executor string `json:"executor"`
}

type MsgWithdrawFeesResponse struct {
	Amount sdk.Coin `json:"amount"`
}

// MsgUpdateParams replaces the module parameters. Authority-only.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

// GetSigners implementations - these assume addresses are valid (validated in ValidateBasic)

// GetSigners returns the expected signers for MsgSubmitRequest
func (msg *MsgSubmitRequest) GetSigners() []sdk.AccAddress {
	requester, _ := sdk.AccAddressFromBech32(msg.Requester)
	return []sdk.AccAddress{requester}
}

// GetSigners returns the expected signers for MsgCompleteRequest
func (msg *MsgCompleteRequest) GetSigners() []sdk.AccAddress {
	executor, _ := sdk.AccAddressFromBech32(msg.Executor)
	return []sdk.AccAddress{executor}
}

// GetSigners returns the expected signers for MsgForceTimeout
func (msg *MsgForceTimeout) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{sender}
}

// GetSigners returns the expected signers for MsgClaimRefund
func (msg *MsgClaimRefund) GetSigners() []sdk.AccAddress {
	requester, _ := sdk.AccAddressFromBech32(msg.Requester)
	return []sdk.AccAddress{requester}
}

// GetSigners returns the expected signers for MsgApproveExecutor
func (msg *MsgApproveExecutor) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSigners returns the expected signers for MsgRevokeExecutor
func (msg *MsgRevokeExecutor) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSigners returns the expected signers for MsgWithdrawFees
func (msg *MsgWithdrawFees) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{sender}
}

// GetSigners returns the expected signers for MsgUpdateParams
func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs basic validation of MsgSubmitRequest
func (msg *MsgSubmitRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return fmt.Errorf("invalid requester address: %w", err)
	}

	if len(msg.Payload) == 0 {
		return fmt.Errorf("payload cannot be empty")
	}

	if _, err := sdk.AccAddressFromBech32(msg.CallbackTarget); err != nil {
		return fmt.Errorf("invalid callback target: %w", err)
	}

	if err := msg.Deposit.Validate(); err != nil {
		return fmt.Errorf("invalid deposit: %w", err)
	}
	if msg.Deposit.IsZero() {
		return fmt.Errorf("deposit must be positive")
	}

	return nil
}

// ValidateBasic performs basic validation of MsgCompleteRequest
func (msg *MsgCompleteRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Executor); err != nil {
		return fmt.Errorf("invalid executor address: %w", err)
	}

	if msg.RequestId == "" {
		return fmt.Errorf("request ID cannot be empty")
	}

	if len(msg.DecryptedPayload) == 0 {
		return fmt.Errorf("decrypted payload cannot be empty")
	}

	return nil
}

// ValidateBasic performs basic validation of MsgForceTimeout
func (msg *MsgForceTimeout) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}

	if msg.RequestId == "" {
		return fmt.Errorf("request ID cannot be empty")
	}

	return nil
}

// ValidateBasic performs basic validation of MsgClaimRefund
func (msg *MsgClaimRefund) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return fmt.Errorf("invalid requester address: %w", err)
	}

	if msg.RequestId == "" {
		return fmt.Errorf("request ID cannot be empty")
	}

	return nil
}

// ValidateBasic performs basic validation of MsgApproveExecutor
func (msg *MsgApproveExecutor) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.Executor); err != nil {
		return fmt.Errorf("invalid executor address: %w", err)
	}

	return nil
}

// ValidateBasic performs basic validation of MsgRevokeExecutor
func (msg *MsgRevokeExecutor) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.Executor); err != nil {
		return fmt.Errorf("invalid executor address: %w", err)
	}

	return nil
}

// ValidateBasic performs basic validation of MsgWithdrawFees
func (msg *MsgWithdrawFees) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.Executor); err != nil {
		return fmt.Errorf("invalid executor address: %w", err)
	}

	return nil
}

// ValidateBasic performs basic validation of MsgUpdateParams
func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}

	if err := msg.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	return nil
}
