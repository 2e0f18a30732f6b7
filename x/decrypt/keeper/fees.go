package keeper

import (
	"context"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veil-chain/veil/x/decrypt/privacymath"
	"github.com/veil-chain/veil/x/decrypt/types"
)

// creditFee adds amount to an executor's accrued fee balance. Called only by
// the lifecycle on verified completion; the funds themselves stay in the
// module account until withdrawn.
func (k Keeper) creditFee(ctx context.Context, executor string, amount math.Int) error {
	balance := k.GetFeeBalance(ctx, executor)

	sum, err := privacymath.CheckedAdd(
		math.NewUintFromBigInt(balance.BigInt()),
		math.NewUintFromBigInt(amount.BigInt()),
	)
	if err != nil {
		return err
	}

	return k.setFeeBalance(ctx, types.FeeBalance{
		Executor: executor,
		Amount:   math.NewIntFromBigInt(sum.BigInt()),
	})
}

// GetFeeBalance returns an executor's accrued fee balance, zero if none.
func (k Keeper) GetFeeBalance(ctx context.Context, executor string) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(types.FeeBalanceKey(executor))
	if bz == nil {
		return math.ZeroInt()
	}

	var balance types.FeeBalance
	if err := k.cdc.Unmarshal(bz, &balance); err != nil {
		return math.ZeroInt()
	}
	return balance.Amount
}

// WithdrawFees drains an executor's accrued fee balance to the executor's
// account. The executor itself or the authority (on the executor's behalf)
// may call it. The stored balance is zeroed before the transfer is attempted
// so that a reentrant withdrawal observes an empty ledger; a failed transfer
// errors the handler and rollback restores the balance, keeping the
// operation atomic and retryable. Returns the withdrawn amount.
func (k Keeper) WithdrawFees(ctx context.Context, executor sdk.AccAddress, caller sdk.AccAddress) (math.Int, error) {
	if !caller.Equals(executor) && caller.String() != k.authority {
		return math.Int{}, types.ErrUnauthorized.Wrapf("caller %s may not withdraw for %s", caller.String(), executor.String())
	}

	balance := k.GetFeeBalance(ctx, executor.String())
	if !balance.IsPositive() {
		return math.Int{}, types.ErrNoFeesAccrued.Wrapf("executor %s", executor.String())
	}

	// Zero the balance before the transfer.
	if err := k.setFeeBalance(ctx, types.FeeBalance{
		Executor: executor.String(),
		Amount:   math.ZeroInt(),
	}); err != nil {
		return math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	coins := sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, balance))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(sdkCtx, types.ModuleName, executor, coins); err != nil {
		return math.Int{}, types.ErrTransferFailed.Wrapf("fee withdrawal for %s: %v", executor.String(), err)
	}

	k.metrics.FeesWithdrawn.Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeesWithdrawn,
			sdk.NewAttribute(types.AttributeKeyExecutor, executor.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, balance.String()),
		),
	)

	return balance, nil
}

// GetAllFeeBalances returns every stored fee balance record.
func (k Keeper) GetAllFeeBalances(ctx context.Context) ([]types.FeeBalance, error) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.KeyPrefix(types.FeeBalanceKeyPrefix))
	defer iterator.Close()

	var balances []types.FeeBalance
	for ; iterator.Valid(); iterator.Next() {
		var balance types.FeeBalance
		if err := k.cdc.Unmarshal(iterator.Value(), &balance); err != nil {
			return nil, err
		}
		balances = append(balances, balance)
	}
	return balances, nil
}

func (k Keeper) setFeeBalance(ctx context.Context, balance types.FeeBalance) error {
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(&balance)
	if err != nil {
		return err
	}
	store.Set(types.FeeBalanceKey(balance.Executor), bz)
	return nil
}
