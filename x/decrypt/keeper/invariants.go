package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/veil-chain/veil/x/decrypt/types"
)

// RegisterInvariants registers all decrypt module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "module-balance",
		ModuleBalanceInvariant(k))
	ir.RegisterRoute(types.ModuleName, "request-status",
		RequestStatusInvariant(k))
}

// AllInvariants runs all invariants of the decrypt module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ModuleBalanceInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return RequestStatusInvariant(k)(ctx)
	}
}

// ModuleBalanceInvariant checks that the module account holds at least the
// deposits of all live (non-refunded, non-withdrawn) requests plus every
// accrued fee balance. A deposit is live while its request is PENDING,
// PROCESSING or FAILED; COMPLETED deposits live on as fee balances until
// withdrawal, REFUNDED deposits have left the module account.
func ModuleBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		expected := math.ZeroInt()

		err := k.IterateRequests(ctx, func(request types.DecryptionRequest) bool {
			switch request.Status {
			case types.StatusPending, types.StatusProcessing, types.StatusFailed:
				expected = expected.Add(request.Deposit)
			}
			return false
		})
		if err != nil {
			return fmt.Sprintf("decrypt: failed to iterate requests: %v", err), true
		}

		balances, err := k.GetAllFeeBalances(ctx)
		if err != nil {
			return fmt.Sprintf("decrypt: failed to read fee balances: %v", err), true
		}
		for _, balance := range balances {
			expected = expected.Add(balance.Amount)
		}

		moduleAddr := authtypes.NewModuleAddress(types.ModuleName)
		held := k.bankKeeper.GetBalance(ctx, moduleAddr, types.DefaultDenom).Amount

		broken := held.LT(expected)
		return sdk.FormatInvariant(types.ModuleName, "module-balance",
			fmt.Sprintf("module account holds %s, live deposits plus fees require %s", held, expected),
		), broken
	}
}

// RequestStatusInvariant checks structural consistency of stored records:
// every status is known, completed requests name their executor, and
// refunded requests carry a refund timestamp.
func RequestStatusInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)

		err := k.IterateRequests(ctx, func(request types.DecryptionRequest) bool {
			if !request.Status.Valid() {
				broken = true
				msg = fmt.Sprintf("request %s has invalid status %q", request.Id, request.Status)
				return true
			}
			if request.Status == types.StatusCompleted && request.Executor == "" {
				broken = true
				msg = fmt.Sprintf("completed request %s has no executor", request.Id)
				return true
			}
			if request.Status == types.StatusRefunded && request.RefundedAt.IsZero() {
				broken = true
				msg = fmt.Sprintf("refunded request %s has no refund timestamp", request.Id)
				return true
			}
			return false
		})
		if err != nil {
			return fmt.Sprintf("decrypt: failed to iterate requests: %v", err), true
		}

		return sdk.FormatInvariant(types.ModuleName, "request-status", msg), broken
	}
}
