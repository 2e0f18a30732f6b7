package keeper

import (
	"context"
	"fmt"

	"github.com/veil-chain/veil/x/decrypt/types"
)

// InitGenesis initializes the decrypt module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid decrypt genesis: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}

	for _, request := range genState.Requests {
		if err := k.SetRequest(ctx, request); err != nil {
			return err
		}
	}

	for _, approval := range genState.Executors {
		if err := k.setExecutorApproval(ctx, approval); err != nil {
			return err
		}
	}

	for _, balance := range genState.FeeBalances {
		if err := k.setFeeBalance(ctx, balance); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis returns the decrypt module state as a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := k.GetAllRequests(ctx)
	if err != nil {
		return nil, err
	}

	executors, err := k.GetExecutors(ctx)
	if err != nil {
		return nil, err
	}

	balances, err := k.GetAllFeeBalances(ctx)
	if err != nil {
		return nil, err
	}

	return &types.GenesisState{
		Params:      params,
		Requests:    requests,
		Executors:   executors,
		FeeBalances: balances,
	}, nil
}
