package keeper

import (
	"context"
	"time"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veil-chain/veil/x/decrypt/types"
)

// SubmitRequest creates a new decryption request and escrows the deposit.
// The request identifier is derived from the requester, the block time and
// the payload, so resubmitting identical data in the same block is rejected
// as a duplicate. Returns the identifier of the stored PENDING record.
func (k Keeper) SubmitRequest(
	ctx context.Context,
	requester sdk.AccAddress,
	payload []byte,
	callbackTarget string,
	timeoutSeconds uint64,
	deposit math.Int,
) (string, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	params, err := k.GetParams(ctx)
	if err != nil {
		return "", err
	}

	if deposit.IsNil() || !deposit.IsPositive() {
		return "", types.ErrInvalidDeposit
	}
	if len(payload) == 0 {
		return "", types.ErrEmptyPayload
	}
	if uint64(len(payload)) > params.MaxPayloadBytes {
		return "", types.ErrPayloadTooLarge.Wrapf("%d bytes, max %d", len(payload), params.MaxPayloadBytes)
	}
	if _, err := sdk.AccAddressFromBech32(callbackTarget); err != nil {
		return "", types.ErrInvalidCallback.Wrap(err.Error())
	}

	effectiveTimeout := params.EffectiveTimeout(timeoutSeconds)
	if err := params.ValidateTimeout(effectiveTimeout); err != nil {
		return "", types.ErrInvalidTimeout.Wrap(err.Error())
	}

	now := sdkCtx.BlockTime()
	requestID := types.DeriveRequestID(requester, now, payload)

	if k.HasRequest(ctx, requestID) {
		return "", types.ErrDuplicateRequest.Wrapf("id %s", requestID)
	}

	// Escrow the deposit before writing any state. If the transfer fails the
	// whole submission fails and nothing is stored.
	coins := sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, deposit))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(sdkCtx, requester, types.ModuleName, coins); err != nil {
		return "", types.ErrTransferFailed.Wrapf("failed to escrow deposit: %v", err)
	}

	request := types.DecryptionRequest{
		Id:             requestID,
		Requester:      requester.String(),
		Deposit:        deposit,
		Payload:        payload,
		CallbackTarget: callbackTarget,
		Status:         types.StatusPending,
		CreatedAt:      now,
		TimeoutSeconds: effectiveTimeout,
	}

	if err := k.SetRequest(ctx, request); err != nil {
		return "", err
	}

	k.metrics.RequestsSubmitted.Inc()
	k.metrics.PendingRequests.Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequestCreated,
			sdk.NewAttribute(types.AttributeKeyRequestID, requestID),
			sdk.NewAttribute(types.AttributeKeyRequester, requester.String()),
			sdk.NewAttribute(types.AttributeKeyCallbackTarget, callbackTarget),
			sdk.NewAttribute(types.AttributeKeyDeposit, deposit.String()),
			sdk.NewAttribute(types.AttributeKeyExpiresAt, request.ExpiresAt().Format(time.RFC3339)),
		),
	)

	return requestID, nil
}

// GetRequest retrieves a request record by id
func (k Keeper) GetRequest(ctx context.Context, id string) (types.DecryptionRequest, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.RequestKey(id))
	if bz == nil {
		return types.DecryptionRequest{}, types.ErrRequestNotFound.Wrapf("id %s", id)
	}

	var request types.DecryptionRequest
	if err := k.cdc.Unmarshal(bz, &request); err != nil {
		return types.DecryptionRequest{}, err
	}
	return request, nil
}

// HasRequest reports whether a request record exists for id
func (k Keeper) HasRequest(ctx context.Context, id string) bool {
	return k.getStore(ctx).Has(types.RequestKey(id))
}

// SetRequest stores a request record
func (k Keeper) SetRequest(ctx context.Context, request types.DecryptionRequest) error {
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(&request)
	if err != nil {
		return err
	}
	store.Set(types.RequestKey(request.Id), bz)
	return nil
}

// IterateRequests iterates over all stored request records
func (k Keeper) IterateRequests(ctx context.Context, cb func(request types.DecryptionRequest) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.KeyPrefix(types.RequestKeyPrefix))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var request types.DecryptionRequest
		if err := k.cdc.Unmarshal(iterator.Value(), &request); err != nil {
			return err
		}
		if cb(request) {
			break
		}
	}
	return nil
}

// GetAllRequests returns every stored request record
func (k Keeper) GetAllRequests(ctx context.Context) ([]types.DecryptionRequest, error) {
	var requests []types.DecryptionRequest
	err := k.IterateRequests(ctx, func(request types.DecryptionRequest) bool {
		requests = append(requests, request)
		return false
	})
	return requests, err
}
