package keeper

import (
	"context"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veil-chain/veil/x/decrypt/types"
)

// CompleteRequest reports a decrypted result for a pending request. Only a
// currently approved executor may call it, and only while the request is
// PENDING and unexpired.
//
// The status is moved to PROCESSING and persisted before the callback target
// is invoked: a reentrant call into the lifecycle from inside the callback
// observes PROCESSING and is rejected, never PENDING. The callback outcome
// is captured as a value; a failing or faulting callback is not an error of
// this operation. On success the full deposit becomes the executor's fee; on
// failure the deposit is push-refunded to the requester within this same
// call.
func (k Keeper) CompleteRequest(
	ctx context.Context,
	id string,
	executor sdk.AccAddress,
	decryptedPayload []byte,
) (types.RequestStatus, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if !k.IsApprovedExecutor(ctx, executor.String()) {
		return "", types.ErrExecutorNotApproved.Wrapf("executor %s", executor.String())
	}

	request, err := k.GetRequest(ctx, id)
	if err != nil {
		return "", err
	}

	if request.Status != types.StatusPending {
		return "", types.ErrInvalidStatus.Wrapf("request %s is %s, expected %s", id, request.Status, types.StatusPending)
	}

	now := sdkCtx.BlockTime()
	if request.IsExpired(now) {
		return "", types.ErrRequestExpired.Wrapf("request %s expired at %s", id, request.ExpiresAt().Format(time.RFC3339))
	}

	// Effects before interactions: commit PROCESSING before the external
	// call. This is the reentrancy defense.
	request.Status = types.StatusProcessing
	request.Executor = executor.String()
	if err := k.SetRequest(ctx, request); err != nil {
		return "", err
	}
	k.metrics.PendingRequests.Dec()

	outcome := k.dispatchCallback(sdkCtx, request, decryptedPayload)

	if outcome == types.CallbackSuccess {
		return k.settleCompleted(sdkCtx, request, executor, now)
	}
	return k.settleFailed(sdkCtx, request, outcome, now)
}

// dispatchCallback invokes the request's callback target inside an isolated
// fault boundary. The handler runs on a branched context so that a rejected
// or faulted callback leaves no partial writes behind; a panic is recovered
// and converted into CallbackFaulted. An unregistered target faults as well.
func (k Keeper) dispatchCallback(ctx sdk.Context, request types.DecryptionRequest, decryptedPayload []byte) (outcome types.CallbackOutcome) {
	handler := k.callbackRouter.Resolve(request.CallbackTarget)
	if handler == nil {
		k.Logger(ctx).Error("no callback handler registered",
			"request_id", request.Id,
			"callback_target", request.CallbackTarget,
		)
		return types.CallbackFaulted
	}

	branchCtx, writeCache := ctx.CacheContext()

	defer func() {
		if r := recover(); r != nil {
			k.Logger(ctx).Error("callback panicked",
				"request_id", request.Id,
				"callback_target", request.CallbackTarget,
				"panic", r,
			)
			k.metrics.CallbackFaults.Inc()
			ctx.EventManager().EmitEvent(
				sdk.NewEvent(
					types.EventTypeCallbackFaulted,
					sdk.NewAttribute(types.AttributeKeyRequestID, request.Id),
					sdk.NewAttribute(types.AttributeKeyCallbackTarget, request.CallbackTarget),
				),
			)
			outcome = types.CallbackFaulted
		}
	}()

	requester, err := sdk.AccAddressFromBech32(request.Requester)
	if err != nil {
		return types.CallbackFaulted
	}

	if !handler.OnDecryptionComplete(branchCtx, request.Id, requester, request.Payload, decryptedPayload) {
		return types.CallbackRejected
	}

	writeCache()
	return types.CallbackSuccess
}

// settleCompleted finalizes a successful completion: COMPLETED status and
// the entire escrowed deposit credited to the executor's fee balance.
func (k Keeper) settleCompleted(ctx sdk.Context, request types.DecryptionRequest, executor sdk.AccAddress, now time.Time) (types.RequestStatus, error) {
	request.Status = types.StatusCompleted
	request.CompletedAt = now
	if err := k.SetRequest(ctx, request); err != nil {
		return "", err
	}

	if err := k.creditFee(ctx, executor.String(), request.Deposit); err != nil {
		return "", err
	}

	k.metrics.RequestsCompleted.Inc()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequestCompleted,
			sdk.NewAttribute(types.AttributeKeyRequestID, request.Id),
			sdk.NewAttribute(types.AttributeKeyExecutor, executor.String()),
			sdk.NewAttribute(types.AttributeKeySuccess, "true"),
			sdk.NewAttribute(types.AttributeKeyAmount, request.Deposit.String()),
		),
	)

	return types.StatusCompleted, nil
}

// settleFailed records the failure and immediately push-refunds the deposit
// to the requester. When the refund transfer itself cannot complete the
// record is left FAILED so the requester can still pull the refund via
// ClaimRefund later; a misbehaving callback or an unpayable requester must
// not strand funds or fail the executor's transaction.
func (k Keeper) settleFailed(ctx sdk.Context, request types.DecryptionRequest, outcome types.CallbackOutcome, now time.Time) (types.RequestStatus, error) {
	request.Status = types.StatusFailed
	if err := k.SetRequest(ctx, request); err != nil {
		return "", err
	}

	k.metrics.RequestsFailed.WithLabelValues(outcome.String()).Inc()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequestFailed,
			sdk.NewAttribute(types.AttributeKeyRequestID, request.Id),
			sdk.NewAttribute(types.AttributeKeyReason, outcome.String()),
		),
	)

	requester, err := sdk.AccAddressFromBech32(request.Requester)
	if err != nil {
		return "", types.ErrInvalidAddress.Wrapf("stored requester %s: %v", request.Requester, err)
	}

	coins := sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, request.Deposit))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, requester, coins); err != nil {
		k.Logger(ctx).Error("push refund failed, deposit remains claimable",
			"request_id", request.Id,
			"requester", request.Requester,
			"error", err,
		)
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeRefundDeferred,
				sdk.NewAttribute(types.AttributeKeyRequestID, request.Id),
				sdk.NewAttribute(types.AttributeKeyReason, err.Error()),
			),
		)
		return types.StatusFailed, nil
	}

	request.Status = types.StatusRefunded
	request.RefundedAt = now
	if err := k.SetRequest(ctx, request); err != nil {
		return "", err
	}

	k.metrics.RefundsProcessed.WithLabelValues(types.RefundPathPush).Inc()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRefundProcessed,
			sdk.NewAttribute(types.AttributeKeyRequestID, request.Id),
			sdk.NewAttribute(types.AttributeKeyRecipient, request.Requester),
			sdk.NewAttribute(types.AttributeKeyAmount, request.Deposit.String()),
			sdk.NewAttribute(types.AttributeKeyRefundPath, types.RefundPathPush),
		),
	)

	return types.StatusRefunded, nil
}
