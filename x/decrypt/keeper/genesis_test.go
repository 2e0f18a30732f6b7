package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/veil-chain/veil/testutil/keeper"
	"github.com/veil-chain/veil/x/decrypt/types"
)

// TestGenesis_Default tests init and export with the default genesis state
func TestGenesis_Default(t *testing.T) {
	k, ctx := keepertest.DecryptKeeper(t)

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), exported.Params)
	require.Empty(t, exported.Requests)
	require.Empty(t, exported.Executors)
	require.Empty(t, exported.FeeBalances)
}

// TestGenesis_RoundTrip tests that live module state survives an
// export/import cycle
func TestGenesis_RoundTrip(t *testing.T) {
	f := setupLifecycle(t, acceptAllCallback{})

	completed := f.submitRequest(t, 100, 3600)
	_, err := f.k.SubmitRequest(f.ctx, f.requester, []byte("still-pending"), f.target.String(), 3600, math.NewInt(40))
	require.NoError(t, err)

	_, err = f.k.CompleteRequest(f.ctx, completed, f.executor, []byte("plaintext"))
	require.NoError(t, err)

	exported, err := f.k.ExportGenesis(f.ctx)
	require.NoError(t, err)
	require.Len(t, exported.Requests, 2)
	require.Len(t, exported.Executors, 1)
	require.Len(t, exported.FeeBalances, 1)

	// Import into a fresh keeper and compare what it exports.
	fresh, freshCtx := keepertest.DecryptKeeper(t)
	require.NoError(t, fresh.InitGenesis(freshCtx, *exported))

	reExported, err := fresh.ExportGenesis(freshCtx)
	require.NoError(t, err)
	require.Equal(t, exported.Params, reExported.Params)
	require.ElementsMatch(t, exported.Requests, reExported.Requests)
	require.ElementsMatch(t, exported.Executors, reExported.Executors)
	require.ElementsMatch(t, exported.FeeBalances, reExported.FeeBalances)

	// The imported state is live: completion gates still hold.
	require.True(t, fresh.IsApprovedExecutor(freshCtx, f.executor.String()))
	require.Equal(t, math.NewInt(100), fresh.GetFeeBalance(freshCtx, f.executor.String()))
}

// TestInitGenesis_RejectsInvalidState tests that a corrupted genesis file
// does not initialize the module
func TestInitGenesis_RejectsInvalidState(t *testing.T) {
	k, ctx := keepertest.DecryptKeeper(t)

	now := time.Now().UTC()
	genesis := types.GenesisState{
		Params: types.DefaultParams(),
		Requests: []types.DecryptionRequest{
			{
				Id:             "dup",
				Requester:      testAddr("requester").String(),
				Deposit:        math.NewInt(100),
				Payload:        []byte("x"),
				CallbackTarget: testAddr("callback_target").String(),
				Status:         types.StatusPending,
				CreatedAt:      now,
				TimeoutSeconds: 3600,
			},
			{
				Id:             "dup",
				Requester:      testAddr("requester").String(),
				Deposit:        math.NewInt(100),
				Payload:        []byte("y"),
				CallbackTarget: testAddr("callback_target").String(),
				Status:         types.StatusPending,
				CreatedAt:      now,
				TimeoutSeconds: 3600,
			},
		},
	}

	err := k.InitGenesis(ctx, genesis)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid decrypt genesis")
}
