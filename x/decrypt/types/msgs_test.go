package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/veil-chain/veil/x/decrypt/types"
)

// TestMsgSubmitRequest_ValidateBasic tests stateless submission validation
func TestMsgSubmitRequest_ValidateBasic(t *testing.T) {
	valid := types.MsgSubmitRequest{
		Requester:      addr("requester").String(),
		Payload:        []byte("ciphertext"),
		CallbackTarget: addr("target").String(),
		TimeoutSeconds: 3600,
		Deposit:        sdk.NewCoin(types.DefaultDenom, math.NewInt(100)),
	}
	require.NoError(t, valid.ValidateBasic())

	bad := valid
	bad.Requester = "garbage"
	require.Error(t, bad.ValidateBasic())

	bad = valid
	bad.Payload = nil
	require.Error(t, bad.ValidateBasic())

	bad = valid
	bad.CallbackTarget = "garbage"
	require.Error(t, bad.ValidateBasic())

	bad = valid
	bad.Deposit = sdk.NewCoin(types.DefaultDenom, math.ZeroInt())
	require.Error(t, bad.ValidateBasic())
}

// TestMsgSubmitRequest_GetSigners tests the requester signs
func TestMsgSubmitRequest_GetSigners(t *testing.T) {
	msg := types.MsgSubmitRequest{Requester: addr("requester").String()}
	signers := msg.GetSigners()
	require.Len(t, signers, 1)
	require.Equal(t, addr("requester"), signers[0])
}

// TestMsgCompleteRequest_ValidateBasic tests completion validation
func TestMsgCompleteRequest_ValidateBasic(t *testing.T) {
	valid := types.MsgCompleteRequest{
		Executor:         addr("executor").String(),
		RequestId:        "abc123",
		DecryptedPayload: []byte("plaintext"),
	}
	require.NoError(t, valid.ValidateBasic())

	bad := valid
	bad.Executor = "garbage"
	require.Error(t, bad.ValidateBasic())

	bad = valid
	bad.RequestId = ""
	require.Error(t, bad.ValidateBasic())

	bad = valid
	bad.DecryptedPayload = nil
	require.Error(t, bad.ValidateBasic())
}

// TestMsgClaimRefund_ValidateBasic tests refund claim validation
func TestMsgClaimRefund_ValidateBasic(t *testing.T) {
	valid := types.MsgClaimRefund{
		Requester: addr("requester").String(),
		RequestId: "abc123",
	}
	require.NoError(t, valid.ValidateBasic())

	bad := valid
	bad.RequestId = ""
	require.Error(t, bad.ValidateBasic())

	bad = valid
	bad.Requester = "garbage"
	require.Error(t, bad.ValidateBasic())
}

// TestMsgForceTimeout_ValidateBasic tests force-timeout validation
func TestMsgForceTimeout_ValidateBasic(t *testing.T) {
	valid := types.MsgForceTimeout{
		Sender:    addr("anyone").String(),
		RequestId: "abc123",
	}
	require.NoError(t, valid.ValidateBasic())

	bad := valid
	bad.Sender = "garbage"
	require.Error(t, bad.ValidateBasic())

	bad = valid
	bad.RequestId = ""
	require.Error(t, bad.ValidateBasic())
}

// TestMsgApproveExecutor_ValidateBasic tests registry message validation
func TestMsgApproveExecutor_ValidateBasic(t *testing.T) {
	valid := types.MsgApproveExecutor{
		Authority: addr("authority").String(),
		Executor:  addr("executor").String(),
	}
	require.NoError(t, valid.ValidateBasic())

	bad := valid
	bad.Authority = "garbage"
	require.Error(t, bad.ValidateBasic())

	bad = valid
	bad.Executor = "garbage"
	require.Error(t, bad.ValidateBasic())
}

// TestMsgWithdrawFees_ValidateBasic tests withdrawal message validation
func TestMsgWithdrawFees_ValidateBasic(t *testing.T) {
	valid := types.MsgWithdrawFees{
		Sender:   addr("executor").String(),
		Executor: addr("executor").String(),
	}
	require.NoError(t, valid.ValidateBasic())

	bad := valid
	bad.Sender = "garbage"
	require.Error(t, bad.ValidateBasic())

	bad = valid
	bad.Executor = "garbage"
	require.Error(t, bad.ValidateBasic())
}

// TestMsgUpdateParams_ValidateBasic tests params message validation
func TestMsgUpdateParams_ValidateBasic(t *testing.T) {
	valid := types.MsgUpdateParams{
		Authority: addr("authority").String(),
		Params:    types.DefaultParams(),
	}
	require.NoError(t, valid.ValidateBasic())

	bad := valid
	bad.Authority = "garbage"
	require.Error(t, bad.ValidateBasic())

	bad = valid
	bad.Params.MinTimeoutSeconds = 0
	require.Error(t, bad.ValidateBasic())
}
