package keeper

import (
	"context"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veil-chain/veil/x/decrypt/types"
)

// ClaimRefund returns the escrowed deposit of a failed or expired request to
// its requester. Only the requester may claim. A request already past its
// expiry is claimable directly, without a prior ForceTimeout.
//
// The status is written before the transfer (effects before interactions);
// if the transfer fails the handler errors out and transaction rollback
// restores the previous status, so the two commit as one atomic unit and the
// record stays retryable.
func (k Keeper) ClaimRefund(ctx context.Context, id string, claimant sdk.AccAddress) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	request, err := k.GetRequest(ctx, id)
	if err != nil {
		return err
	}

	if request.Requester != claimant.String() {
		return types.ErrUnauthorized.Wrapf("only requester %s may claim, got %s", request.Requester, claimant.String())
	}

	if request.Status.IsTerminal() {
		return types.ErrInvalidStatus.Wrapf("request %s already %s", id, request.Status)
	}

	now := sdkCtx.BlockTime()
	if request.Status != types.StatusFailed && !request.IsExpired(now) {
		return types.ErrRequestNotExpired.Wrapf("request %s is %s and expires at %s",
			id, request.Status, request.ExpiresAt().Format(time.RFC3339))
	}

	wasPending := request.Status == types.StatusPending

	request.Status = types.StatusRefunded
	request.RefundedAt = now
	if err := k.SetRequest(ctx, request); err != nil {
		return err
	}

	coins := sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, request.Deposit))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(sdkCtx, types.ModuleName, claimant, coins); err != nil {
		return types.ErrTransferFailed.Wrapf("refund for request %s: %v", id, err)
	}

	if wasPending {
		k.metrics.PendingRequests.Dec()
	}
	k.metrics.RefundsProcessed.WithLabelValues(types.RefundPathPull).Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRefundProcessed,
			sdk.NewAttribute(types.AttributeKeyRequestID, id),
			sdk.NewAttribute(types.AttributeKeyRecipient, claimant.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, request.Deposit.String()),
			sdk.NewAttribute(types.AttributeKeyRefundPath, types.RefundPathPull),
		),
	)

	return nil
}
