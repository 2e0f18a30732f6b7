package keeper

import (
	"context"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veil-chain/veil/x/decrypt/types"
)

// ForceTimeout marks an expired request as FAILED. Anyone may call it; it
// exists so a third party can unblock a stalled request, and it deliberately
// moves no funds. The requester pulls the refund afterwards via ClaimRefund
// (or skips this step entirely, since ClaimRefund also accepts expiry
// directly).
func (k Keeper) ForceTimeout(ctx context.Context, id string) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	request, err := k.GetRequest(ctx, id)
	if err != nil {
		return err
	}

	if request.Status != types.StatusPending && request.Status != types.StatusProcessing {
		return types.ErrInvalidStatus.Wrapf("request %s is %s, expected %s or %s",
			id, request.Status, types.StatusPending, types.StatusProcessing)
	}

	now := sdkCtx.BlockTime()
	if !request.IsExpired(now) {
		return types.ErrRequestNotExpired.Wrapf("request %s expires at %s",
			id, request.ExpiresAt().Format(time.RFC3339))
	}

	wasPending := request.Status == types.StatusPending

	request.Status = types.StatusFailed
	if err := k.SetRequest(ctx, request); err != nil {
		return err
	}

	if wasPending {
		k.metrics.PendingRequests.Dec()
	}
	k.metrics.TimeoutsForced.Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTimeoutActivated,
			sdk.NewAttribute(types.AttributeKeyRequestID, id),
			sdk.NewAttribute(types.AttributeKeyExpiresAt, request.ExpiresAt().Format(time.RFC3339)),
		),
	)

	return nil
}
