package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the necessary x/decrypt interfaces and
// concrete types on the provided LegacyAmino codec. These types are used for
// Amino JSON serialization and for state encoding.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgSubmitRequest{}, "veil/decrypt/MsgSubmitRequest", nil)
	cdc.RegisterConcrete(&MsgCompleteRequest{}, "veil/decrypt/MsgCompleteRequest", nil)
	cdc.RegisterConcrete(&MsgForceTimeout{}, "veil/decrypt/MsgForceTimeout", nil)
	cdc.RegisterConcrete(&MsgClaimRefund{}, "veil/decrypt/MsgClaimRefund", nil)
	cdc.RegisterConcrete(&MsgApproveExecutor{}, "veil/decrypt/MsgApproveExecutor", nil)
	cdc.RegisterConcrete(&MsgRevokeExecutor{}, "veil/decrypt/MsgRevokeExecutor", nil)
	cdc.RegisterConcrete(&MsgWithdrawFees{}, "veil/decrypt/MsgWithdrawFees", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "veil/decrypt/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the x/decrypt interface types with the
// interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgSubmitRequest{},
		&MsgCompleteRequest{},
		&MsgForceTimeout{},
		&MsgClaimRefund{},
		&MsgApproveExecutor{},
		&MsgRevokeExecutor{},
		&MsgWithdrawFees{},
		&MsgUpdateParams{},
	)
}

// ModuleCdc is the module-wide amino codec used for state encoding.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	sdk.RegisterLegacyAminoCodec(ModuleCdc)
}
