package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veil-chain/veil/x/decrypt/types"
)

// MsgServer is the transaction-handling surface of the decrypt module.
// The module carries no generated gRPC service descriptor, so the app does
// not wire it through module.Configurator: it constructs the server with
// NewMsgServerImpl at app setup and registers each handler on its message
// router keyed by the sdk.Msg type.
type MsgServer interface {
	SubmitRequest(context.Context, *types.MsgSubmitRequest) (*types.MsgSubmitRequestResponse, error)
	CompleteRequest(context.Context, *types.MsgCompleteRequest) (*types.MsgCompleteRequestResponse, error)
	ForceTimeout(context.Context, *types.MsgForceTimeout) (*types.MsgForceTimeoutResponse, error)
	ClaimRefund(context.Context, *types.MsgClaimRefund) (*types.MsgClaimRefundResponse, error)
	ApproveExecutor(context.Context, *types.MsgApproveExecutor) (*types.MsgApproveExecutorResponse, error)
	RevokeExecutor(context.Context, *types.MsgRevokeExecutor) (*types.MsgRevokeExecutorResponse, error)
	WithdrawFees(context.Context, *types.MsgWithdrawFees) (*types.MsgWithdrawFeesResponse, error)
	UpdateParams(context.Context, *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error)
}

var _ MsgServer = msgServer{}

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
func NewMsgServerImpl(keeper Keeper) MsgServer {
	return &msgServer{Keeper: keeper}
}

// SubmitRequest handles the submission of a new decryption request
func (ms msgServer) SubmitRequest(goCtx context.Context, msg *types.MsgSubmitRequest) (*types.MsgSubmitRequestResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}

	requester, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid requester address: %v", err)
	}

	if msg.Deposit.Denom != types.DefaultDenom {
		return nil, types.ErrInvalidDeposit.Wrapf("expected denom %s, got %s", types.DefaultDenom, msg.Deposit.Denom)
	}

	requestID, err := ms.Keeper.SubmitRequest(ctx, requester, msg.Payload, msg.CallbackTarget, msg.TimeoutSeconds, msg.Deposit.Amount)
	if err != nil {
		return nil, err
	}

	return &types.MsgSubmitRequestResponse{RequestId: requestID}, nil
}

// CompleteRequest handles an executor reporting a decrypted result
func (ms msgServer) CompleteRequest(goCtx context.Context, msg *types.MsgCompleteRequest) (*types.MsgCompleteRequestResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}

	executor, err := sdk.AccAddressFromBech32(msg.Executor)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid executor address: %v", err)
	}

	status, err := ms.Keeper.CompleteRequest(ctx, msg.RequestId, executor, msg.DecryptedPayload)
	if err != nil {
		return nil, err
	}

	return &types.MsgCompleteRequestResponse{Status: status}, nil
}

// ForceTimeout handles marking an expired request as failed
func (ms msgServer) ForceTimeout(goCtx context.Context, msg *types.MsgForceTimeout) (*types.MsgForceTimeoutResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}

	if err := ms.Keeper.ForceTimeout(ctx, msg.RequestId); err != nil {
		return nil, err
	}

	return &types.MsgForceTimeoutResponse{}, nil
}

// ClaimRefund handles a requester pulling the deposit of a failed or expired
// request
func (ms msgServer) ClaimRefund(goCtx context.Context, msg *types.MsgClaimRefund) (*types.MsgClaimRefundResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}

	requester, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid requester address: %v", err)
	}

	if err := ms.Keeper.ClaimRefund(ctx, msg.RequestId, requester); err != nil {
		return nil, err
	}

	return &types.MsgClaimRefundResponse{}, nil
}

// ApproveExecutor handles adding an executor to the approved set
func (ms msgServer) ApproveExecutor(goCtx context.Context, msg *types.MsgApproveExecutor) (*types.MsgApproveExecutorResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}

	executor, err := sdk.AccAddressFromBech32(msg.Executor)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid executor address: %v", err)
	}

	if err := ms.Keeper.ApproveExecutor(ctx, msg.Authority, executor); err != nil {
		return nil, err
	}

	return &types.MsgApproveExecutorResponse{}, nil
}

// RevokeExecutor handles removing an executor from the approved set
func (ms msgServer) RevokeExecutor(goCtx context.Context, msg *types.MsgRevokeExecutor) (*types.MsgRevokeExecutorResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}

	executor, err := sdk.AccAddressFromBech32(msg.Executor)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid executor address: %v", err)
	}

	if err := ms.Keeper.RevokeExecutor(ctx, msg.Authority, executor); err != nil {
		return nil, err
	}

	return &types.MsgRevokeExecutorResponse{}, nil
}

// WithdrawFees handles draining an executor's accrued fee balance
func (ms msgServer) WithdrawFees(goCtx context.Context, msg *types.MsgWithdrawFees) (*types.MsgWithdrawFeesResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}

	executor, err := sdk.AccAddressFromBech32(msg.Executor)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid executor address: %v", err)
	}

	caller, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid sender address: %v", err)
	}

	amount, err := ms.Keeper.WithdrawFees(ctx, executor, caller)
	if err != nil {
		return nil, err
	}

	return &types.MsgWithdrawFeesResponse{
		Amount: sdk.NewCoin(types.DefaultDenom, amount),
	}, nil
}

// UpdateParams handles replacing the module parameters
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}

	if err := ms.Keeper.UpdateParams(ctx, msg.Authority, msg.Params); err != nil {
		return nil, err
	}

	return &types.MsgUpdateParamsResponse{}, nil
}
