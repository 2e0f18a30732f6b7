package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/veil-chain/veil/testutil/keeper"
	"github.com/veil-chain/veil/x/decrypt/keeper"
	"github.com/veil-chain/veil/x/decrypt/types"
)

// TestMsgServer_FullLifecycle tests the whole message surface end to end:
// submit, complete, withdraw
func TestMsgServer_FullLifecycle(t *testing.T) {
	f := setupLifecycle(t, acceptAllCallback{})
	ms := keeper.NewMsgServerImpl(*f.k)

	submitResp, err := ms.SubmitRequest(f.ctx, &types.MsgSubmitRequest{
		Requester:      f.requester.String(),
		Payload:        []byte("ciphertext"),
		CallbackTarget: f.target.String(),
		TimeoutSeconds: 3600,
		Deposit:        sdk.NewCoin(types.DefaultDenom, math.NewInt(100)),
	})
	require.NoError(t, err)
	require.NotEmpty(t, submitResp.RequestId)

	completeResp, err := ms.CompleteRequest(f.ctx, &types.MsgCompleteRequest{
		Executor:         f.executor.String(),
		RequestId:        submitResp.RequestId,
		DecryptedPayload: []byte("plaintext"),
	})
	require.NoError(t, err)
	require.Equal(t, types.StatusCompleted, completeResp.Status)

	withdrawResp, err := ms.WithdrawFees(f.ctx, &types.MsgWithdrawFees{
		Sender:   f.executor.String(),
		Executor: f.executor.String(),
	})
	require.NoError(t, err)
	require.Equal(t, sdk.NewCoin(types.DefaultDenom, math.NewInt(100)), withdrawResp.Amount)
}

// TestMsgServer_TimeoutAndRefund tests the timeout/claim pair through the
// message surface
func TestMsgServer_TimeoutAndRefund(t *testing.T) {
	f := setupLifecycle(t, acceptAllCallback{})
	ms := keeper.NewMsgServerImpl(*f.k)
	id := f.submitRequest(t, 100, 3600)

	lateCtx := f.ctx.WithBlockTime(f.ctx.BlockTime().Add(3601 * time.Second))

	// Any account may force the timeout.
	_, err := ms.ForceTimeout(lateCtx, &types.MsgForceTimeout{
		Sender:    testAddr("bystander").String(),
		RequestId: id,
	})
	require.NoError(t, err)

	_, err = ms.ClaimRefund(lateCtx, &types.MsgClaimRefund{
		Requester: f.requester.String(),
		RequestId: id,
	})
	require.NoError(t, err)

	request, err := f.k.GetRequest(f.ctx, id)
	require.NoError(t, err)
	require.Equal(t, types.StatusRefunded, request.Status)
}

// TestMsgServer_SubmitRequest_WrongDenom tests rejection of a deposit in a
// foreign denom
func TestMsgServer_SubmitRequest_WrongDenom(t *testing.T) {
	f := setupLifecycle(t, acceptAllCallback{})
	ms := keeper.NewMsgServerImpl(*f.k)

	_, err := ms.SubmitRequest(f.ctx, &types.MsgSubmitRequest{
		Requester:      f.requester.String(),
		Payload:        []byte("ciphertext"),
		CallbackTarget: f.target.String(),
		TimeoutSeconds: 3600,
		Deposit:        sdk.NewCoin("uatom", math.NewInt(100)),
	})
	require.ErrorIs(t, err, types.ErrInvalidDeposit)
}

// TestMsgServer_SubmitRequest_InvalidMsg tests that ValidateBasic failures
// surface as validation errors before any state change
func TestMsgServer_SubmitRequest_InvalidMsg(t *testing.T) {
	f := setupLifecycle(t, acceptAllCallback{})
	ms := keeper.NewMsgServerImpl(*f.k)

	_, err := ms.SubmitRequest(f.ctx, &types.MsgSubmitRequest{
		Requester:      "garbage",
		Payload:        []byte("ciphertext"),
		CallbackTarget: f.target.String(),
		TimeoutSeconds: 3600,
		Deposit:        sdk.NewCoin(types.DefaultDenom, math.NewInt(100)),
	})
	require.ErrorIs(t, err, types.ErrValidationFailed)

	// A non-address defect reports the same validation class, not an
	// address error.
	_, err = ms.SubmitRequest(f.ctx, &types.MsgSubmitRequest{
		Requester:      f.requester.String(),
		Payload:        nil,
		CallbackTarget: f.target.String(),
		TimeoutSeconds: 3600,
		Deposit:        sdk.NewCoin(types.DefaultDenom, math.NewInt(100)),
	})
	require.ErrorIs(t, err, types.ErrValidationFailed)
	require.NotErrorIs(t, err, types.ErrInvalidAddress)

	all, err := f.k.GetAllRequests(f.ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

// TestMsgServer_ExecutorRegistry tests approve and revoke through the
// message surface, including the authority gate
func TestMsgServer_ExecutorRegistry(t *testing.T) {
	k, ctx := keepertest.DecryptKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)
	executor := testAddr("new_executor")

	_, err := ms.ApproveExecutor(ctx, &types.MsgApproveExecutor{
		Authority: testAddr("impostor").String(),
		Executor:  executor.String(),
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = ms.ApproveExecutor(ctx, &types.MsgApproveExecutor{
		Authority: keepertest.Authority(),
		Executor:  executor.String(),
	})
	require.NoError(t, err)
	require.True(t, k.IsApprovedExecutor(ctx, executor.String()))

	_, err = ms.RevokeExecutor(ctx, &types.MsgRevokeExecutor{
		Authority: keepertest.Authority(),
		Executor:  executor.String(),
	})
	require.NoError(t, err)
	require.False(t, k.IsApprovedExecutor(ctx, executor.String()))
}

// TestMsgServer_UpdateParams tests the params governance path
func TestMsgServer_UpdateParams(t *testing.T) {
	k, ctx := keepertest.DecryptKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)

	updated := types.DefaultParams()
	updated.DefaultTimeoutSeconds = 7200

	_, err := ms.UpdateParams(ctx, &types.MsgUpdateParams{
		Authority: testAddr("impostor").String(),
		Params:    updated,
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = ms.UpdateParams(ctx, &types.MsgUpdateParams{
		Authority: keepertest.Authority(),
		Params:    updated,
	})
	require.NoError(t, err)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(7200), params.DefaultTimeoutSeconds)
}
