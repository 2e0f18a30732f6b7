package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState is the module state at genesis.
type GenesisState struct {
	Params      Params              `json:"params"`
	Requests    []DecryptionRequest `json:"requests"`
	Executors   []ExecutorApproval  `json:"executors"`
	FeeBalances []FeeBalance        `json:"fee_balances"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:      DefaultParams(),
		Requests:    []DecryptionRequest{},
		Executors:   []ExecutorApproval{},
		FeeBalances: []FeeBalance{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	seenIds := make(map[string]bool)
	for i, req := range gs.Requests {
		if req.Id == "" {
			return fmt.Errorf("request %d: id cannot be empty", i)
		}
		if seenIds[req.Id] {
			return fmt.Errorf("request %d: duplicate request id %s", i, req.Id)
		}
		seenIds[req.Id] = true

		if _, err := sdk.AccAddressFromBech32(req.Requester); err != nil {
			return fmt.Errorf("request %d (id=%s): invalid requester: %w", i, req.Id, err)
		}
		if _, err := sdk.AccAddressFromBech32(req.CallbackTarget); err != nil {
			return fmt.Errorf("request %d (id=%s): invalid callback target: %w", i, req.Id, err)
		}
		if req.Deposit.IsNil() || !req.Deposit.IsPositive() {
			return fmt.Errorf("request %d (id=%s): deposit must be positive", i, req.Id)
		}
		if len(req.Payload) == 0 {
			return fmt.Errorf("request %d (id=%s): payload cannot be empty", i, req.Id)
		}
		if !req.Status.Valid() {
			return fmt.Errorf("request %d (id=%s): invalid status %q", i, req.Id, req.Status)
		}
		if req.TimeoutSeconds == 0 {
			return fmt.Errorf("request %d (id=%s): timeout cannot be zero", i, req.Id)
		}
		if req.Status == StatusCompleted && req.Executor == "" {
			return fmt.Errorf("request %d (id=%s): completed request without executor", i, req.Id)
		}
	}

	seenExecutors := make(map[string]bool)
	for i, exec := range gs.Executors {
		if _, err := sdk.AccAddressFromBech32(exec.Executor); err != nil {
			return fmt.Errorf("executor %d: invalid address: %w", i, err)
		}
		if seenExecutors[exec.Executor] {
			return fmt.Errorf("executor %d: duplicate executor %s", i, exec.Executor)
		}
		seenExecutors[exec.Executor] = true
	}

	seenBalances := make(map[string]bool)
	for i, bal := range gs.FeeBalances {
		if _, err := sdk.AccAddressFromBech32(bal.Executor); err != nil {
			return fmt.Errorf("fee balance %d: invalid executor: %w", i, err)
		}
		if seenBalances[bal.Executor] {
			return fmt.Errorf("fee balance %d: duplicate executor %s", i, bal.Executor)
		}
		seenBalances[bal.Executor] = true

		if bal.Amount.IsNil() || bal.Amount.IsNegative() {
			return fmt.Errorf("fee balance %d (%s): amount cannot be negative", i, bal.Executor)
		}
	}

	return nil
}
