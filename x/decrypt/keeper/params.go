package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veil-chain/veil/x/decrypt/types"
)

// GetParams returns the current decrypt module parameters, falling back to
// the defaults when none have been stored yet.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.KeyPrefix(types.ParamsKey))
	if bz == nil {
		return types.DefaultParams(), nil
	}

	var params types.Params
	if err := k.cdc.Unmarshal(bz, &params); err != nil {
		return types.Params{}, err
	}
	return params, nil
}

// SetParams stores the decrypt module parameters after validation.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return types.ErrInvalidParams.Wrap(err.Error())
	}

	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(&params)
	if err != nil {
		return err
	}
	store.Set(types.KeyPrefix(types.ParamsKey), bz)
	return nil
}

// UpdateParams replaces the module parameters. Only the authority may call
// it; timeout reconfiguration takes effect for subsequent submissions only,
// existing records keep the timeout they were stored with.
func (k Keeper) UpdateParams(ctx context.Context, authority string, params types.Params) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected authority %s, got %s", k.authority, authority)
	}

	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeParamsUpdated,
			sdk.NewAttribute("default_timeout_seconds", formatUint(params.DefaultTimeoutSeconds)),
			sdk.NewAttribute("min_timeout_seconds", formatUint(params.MinTimeoutSeconds)),
			sdk.NewAttribute("max_timeout_seconds", formatUint(params.MaxTimeoutSeconds)),
		),
	)

	return nil
}
