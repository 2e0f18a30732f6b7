package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktestutil "github.com/cosmos/cosmos-sdk/x/bank/testutil"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	"github.com/stretchr/testify/require"

	"github.com/veil-chain/veil/x/decrypt/keeper"
	"github.com/veil-chain/veil/x/decrypt/types"
)

// DecryptKeeper creates a test keeper for the decrypt module backed by an
// in-memory multistore and real auth/bank keepers.
func DecryptKeeper(t testing.TB) (*keeper.Keeper, sdk.Context) {
	return DecryptKeeperWithRouter(t, types.NewCallbackRouter())
}

// DecryptKeeperWithRouter is DecryptKeeper with a caller-supplied callback
// router, so tests can register callback handlers before submitting.
func DecryptKeeperWithRouter(t testing.TB, router *types.CallbackRouter) (*keeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)

	amino := codec.NewLegacyAmino()
	types.RegisterLegacyAminoCodec(amino)
	sdk.RegisterLegacyAminoCodec(amino)

	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	maccPerms := map[string][]string{
		authtypes.FeeCollectorName: nil,
		minttypes.ModuleName:       {authtypes.Minter},
		types.ModuleName:           nil,
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authStoreKey),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		authority.String(),
	)

	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankStoreKey),
		accountKeeper,
		map[string]bool{},
		authority.String(),
		log.NewNopLogger(),
	)

	k := keeper.NewKeeper(
		amino,
		storeKey,
		bankKeeper,
		authority.String(),
		router,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	ctx = ctx.WithBlockTime(time.Now().UTC())

	require.NoError(t, k.SetParams(ctx, types.DefaultParams()))

	return k, ctx
}

// Authority returns the authority address the test keeper was built with.
func Authority() string {
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}

// BankKeeperOf is a convenience accessor used by tests that assert on
// account balances after settlement.
func BankKeeperOf(t testing.TB, k *keeper.Keeper) bankkeeper.Keeper {
	t.Helper()
	return k.BankKeeper()
}

// FundAccount mints coins and sends them to addr.
func FundAccount(t testing.TB, ctx sdk.Context, bk bankkeeper.Keeper, addr sdk.AccAddress, amount math.Int) {
	t.Helper()
	coins := sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, amount))
	require.NoError(t, banktestutil.FundAccount(ctx, bk, addr, coins))
}
