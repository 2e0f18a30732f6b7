package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veil-chain/veil/x/decrypt/types"
)

// GetTxCmd returns the transaction commands for the decrypt module
func GetTxCmd() *cobra.Command {
	decryptTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Decrypt transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	decryptTxCmd.AddCommand(
		CmdSubmitRequest(),
		CmdCompleteRequest(),
		CmdForceTimeout(),
		CmdClaimRefund(),
		CmdApproveExecutor(),
		CmdRevokeExecutor(),
		CmdWithdrawFees(),
	)

	return decryptTxCmd
}

// CmdSubmitRequest returns a CLI command handler for submitting a decryption request
func CmdSubmitRequest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-request [hex-payload]",
		Short: "Submit an encrypted payload with a deposit and callback target",
		Long: `Submit an encrypted payload for off-chain decryption. The deposit is
escrowed and either paid to the executor on verified success or returned on
failure or expiry. A timeout of 0 selects the configured default.

Example:
  $ veild tx decrypt submit-request deadbeef \
    --callback-target veil1abcdef... \
    --timeout-seconds 3600 \
    --deposit 100uveil \
    --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			payload, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("payload must be hex encoded: %w", err)
			}

			callbackTarget, err := cmd.Flags().GetString(FlagCallbackTarget)
			if err != nil {
				return err
			}

			timeoutSeconds, err := cmd.Flags().GetUint64(FlagTimeoutSeconds)
			if err != nil {
				return err
			}

			depositStr, err := cmd.Flags().GetString(FlagDeposit)
			if err != nil {
				return err
			}
			deposit, err := sdk.ParseCoinNormalized(depositStr)
			if err != nil {
				return fmt.Errorf("invalid deposit: %w", err)
			}

			msg := &types.MsgSubmitRequest{
				Requester:      clientCtx.GetFromAddress().String(),
				Payload:        payload,
				CallbackTarget: callbackTarget,
				TimeoutSeconds: timeoutSeconds,
				Deposit:        deposit,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagCallbackTarget, "", "Address of the callback target receiving the result")
	cmd.Flags().Uint64(FlagTimeoutSeconds, 0, "Request timeout in seconds (0 = configured default)")
	cmd.Flags().String(FlagDeposit, "", "Deposit escrowed with the request, e.g. 100uveil")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCompleteRequest returns a CLI command handler for reporting a decrypted result
func CmdCompleteRequest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete-request [request-id] [hex-decrypted-payload]",
		Short: "Report a decrypted result for a pending request (approved executors only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			decrypted, err := hex.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("decrypted payload must be hex encoded: %w", err)
			}

			msg := &types.MsgCompleteRequest{
				Executor:         clientCtx.GetFromAddress().String(),
				RequestId:        args[0],
				DecryptedPayload: decrypted,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdForceTimeout returns a CLI command handler for marking an expired request failed
func CmdForceTimeout() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "force-timeout [request-id]",
		Short: "Mark an expired request as failed (moves no funds)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgForceTimeout{
				Sender:    clientCtx.GetFromAddress().String(),
				RequestId: args[0],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdClaimRefund returns a CLI command handler for claiming a refund
func CmdClaimRefund() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim-refund [request-id]",
		Short: "Claim the deposit of a failed or expired request back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgClaimRefund{
				Requester: clientCtx.GetFromAddress().String(),
				RequestId: args[0],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdApproveExecutor returns a CLI command handler for approving an executor
func CmdApproveExecutor() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve-executor [executor-address]",
		Short: "Approve an executor identity (authority only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgApproveExecutor{
				Authority: clientCtx.GetFromAddress().String(),
				Executor:  args[0],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRevokeExecutor returns a CLI command handler for revoking an executor
func CmdRevokeExecutor() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revoke-executor [executor-address]",
		Short: "Revoke an executor identity (authority only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgRevokeExecutor{
				Authority: clientCtx.GetFromAddress().String(),
				Executor:  args[0],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawFees returns a CLI command handler for withdrawing accrued fees
func CmdWithdrawFees() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-fees [executor-address]",
		Short: "Withdraw an executor's accrued fees (executor or authority)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgWithdrawFees{
				Sender:   clientCtx.GetFromAddress().String(),
				Executor: args[0],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
