package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	abci "github.com/cometbft/cometbft/abci/types"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/veil-chain/veil/x/decrypt/types"
)

// GetQueryCmd returns the cli query commands for the decrypt module
func GetQueryCmd() *cobra.Command {
	decryptQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the decrypt module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	decryptQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryRequest(),
		GetCmdQueryFeeBalance(),
	)

	return decryptQueryCmd
}

// queryStore fetches a raw value from the decrypt module store.
func queryStore(clientCtx client.Context, key []byte) ([]byte, error) {
	res, err := clientCtx.QueryABCI(abci.RequestQuery{
		Path: fmt.Sprintf("/store/%s/key", types.StoreKey),
		Data: key,
	})
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current decrypt module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, err := queryStore(clientCtx, types.KeyPrefix(types.ParamsKey))
			if err != nil {
				return err
			}

			params := types.DefaultParams()
			if bz != nil {
				if err := types.ModuleCdc.Unmarshal(bz, &params); err != nil {
					return err
				}
			}

			return clientCtx.PrintObjectLegacy(params)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryRequest returns the command to query a request by id
func GetCmdQueryRequest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request [id]",
		Short: "Query a decryption request by id",
		Long: `Query the full record of a decryption request, including its
lifecycle status and settlement timestamps.

Example:
  $ veild query decrypt request 4f2d...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, err := queryStore(clientCtx, types.RequestKey(args[0]))
			if err != nil {
				return err
			}
			if bz == nil {
				return fmt.Errorf("request %s not found", args[0])
			}

			var request types.DecryptionRequest
			if err := types.ModuleCdc.Unmarshal(bz, &request); err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(request)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryFeeBalance returns the command to query an executor's fee balance
func GetCmdQueryFeeBalance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fee-balance [executor-address]",
		Short: "Query an executor's accrued fee balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, err := queryStore(clientCtx, types.FeeBalanceKey(args[0]))
			if err != nil {
				return err
			}
			if bz == nil {
				return fmt.Errorf("no fee balance for executor %s", args[0])
			}

			var balance types.FeeBalance
			if err := types.ModuleCdc.Unmarshal(bz, &balance); err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(balance)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
