package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"

	"github.com/veil-chain/veil/x/decrypt/types"
)

// Keeper of the decrypt store. The authority address is the module owner:
// it alone may approve or revoke executors and update parameters, and it is
// fixed at construction.
type Keeper struct {
	storeKey       storetypes.StoreKey
	cdc            *codec.LegacyAmino
	bankKeeper     bankkeeper.Keeper
	authority      string
	callbackRouter *types.CallbackRouter

	metrics *DecryptMetrics
}

type kvStoreProvider interface {
	KVStore(key storetypes.StoreKey) storetypes.KVStore
}

// NewKeeper creates a new decrypt Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	bankKeeper bankkeeper.Keeper,
	authority string,
	callbackRouter *types.CallbackRouter,
) *Keeper {
	if callbackRouter == nil {
		callbackRouter = types.NewCallbackRouter()
	}

	return &Keeper{
		storeKey:       key,
		cdc:            cdc,
		bankKeeper:     bankKeeper,
		authority:      authority,
		callbackRouter: callbackRouter,
		metrics:        NewDecryptMetrics(),
	}
}

// GetAuthority returns the module's authority (owner) address.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// CallbackRouter exposes the router so app wiring can register callback
// targets before sealing it.
func (k Keeper) CallbackRouter() *types.CallbackRouter {
	return k.callbackRouter
}

// BankKeeper returns the bank keeper the module escrows through.
func (k Keeper) BankKeeper() bankkeeper.Keeper {
	return k.bankKeeper
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the decrypt module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	if provider, ok := ctx.(kvStoreProvider); ok {
		return provider.KVStore(k.storeKey)
	}

	unwrapped := sdk.UnwrapSDKContext(ctx)
	return unwrapped.KVStore(k.storeKey)
}
