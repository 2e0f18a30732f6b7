package keeper

import (
	"context"
	"time"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veil-chain/veil/x/decrypt/types"
)

// ApproveExecutor adds an executor to the approved set. Only the authority
// may call it. Approving a currently approved executor fails; a previously
// revoked executor is re-approved in place, keeping a single history entry.
func (k Keeper) ApproveExecutor(ctx context.Context, authority string, executor sdk.AccAddress) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected authority %s, got %s", k.authority, authority)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()

	approval, found := k.getExecutorApproval(ctx, executor.String())
	if found && approval.Approved {
		return types.ErrAlreadyApproved.Wrapf("executor %s", executor.String())
	}

	if !found {
		approval = types.ExecutorApproval{Executor: executor.String()}
	}
	approval.Approved = true
	approval.ApprovedAt = now
	approval.RevokedAt = time.Time{}

	if err := k.setExecutorApproval(ctx, approval); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeExecutorApproved,
			sdk.NewAttribute(types.AttributeKeyExecutor, executor.String()),
		),
	)

	return nil
}

// RevokeExecutor removes an executor from the approved set. The approval
// record is kept with Approved set to false, preserving the ever-approved
// history.
func (k Keeper) RevokeExecutor(ctx context.Context, authority string, executor sdk.AccAddress) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected authority %s, got %s", k.authority, authority)
	}

	approval, found := k.getExecutorApproval(ctx, executor.String())
	if !found {
		return types.ErrExecutorNotFound.Wrapf("executor %s", executor.String())
	}
	if !approval.Approved {
		return types.ErrExecutorNotApproved.Wrapf("executor %s already revoked", executor.String())
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()

	approval.Approved = false
	approval.RevokedAt = now

	if err := k.setExecutorApproval(ctx, approval); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeExecutorRevoked,
			sdk.NewAttribute(types.AttributeKeyExecutor, executor.String()),
		),
	)

	return nil
}

// IsApprovedExecutor reports whether executor is currently approved. This is
// the predicate CompleteRequest gates on.
func (k Keeper) IsApprovedExecutor(ctx context.Context, executor string) bool {
	approval, found := k.getExecutorApproval(ctx, executor)
	return found && approval.Approved
}

// GetExecutors returns every approval record ever created, including revoked
// ones. Callers filter on Approved for the current membership snapshot.
func (k Keeper) GetExecutors(ctx context.Context) ([]types.ExecutorApproval, error) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.KeyPrefix(types.ExecutorKeyPrefix))
	defer iterator.Close()

	var executors []types.ExecutorApproval
	for ; iterator.Valid(); iterator.Next() {
		var approval types.ExecutorApproval
		if err := k.cdc.Unmarshal(iterator.Value(), &approval); err != nil {
			return nil, err
		}
		executors = append(executors, approval)
	}
	return executors, nil
}

// GetApprovedExecutors returns the currently approved membership snapshot.
func (k Keeper) GetApprovedExecutors(ctx context.Context) ([]types.ExecutorApproval, error) {
	all, err := k.GetExecutors(ctx)
	if err != nil {
		return nil, err
	}

	var approved []types.ExecutorApproval
	for _, exec := range all {
		if exec.Approved {
			approved = append(approved, exec)
		}
	}
	return approved, nil
}

func (k Keeper) getExecutorApproval(ctx context.Context, executor string) (types.ExecutorApproval, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.ExecutorKey(executor))
	if bz == nil {
		return types.ExecutorApproval{}, false
	}

	var approval types.ExecutorApproval
	if err := k.cdc.Unmarshal(bz, &approval); err != nil {
		return types.ExecutorApproval{}, false
	}
	return approval, true
}

func (k Keeper) setExecutorApproval(ctx context.Context, approval types.ExecutorApproval) error {
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(&approval)
	if err != nil {
		return err
	}
	store.Set(types.ExecutorKey(approval.Executor), bz)
	return nil
}
