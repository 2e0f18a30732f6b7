package types_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/veil-chain/veil/x/decrypt/types"
)

type noopCallback struct{}

func (noopCallback) OnDecryptionComplete(sdk.Context, string, sdk.AccAddress, []byte, []byte) bool {
	return true
}

// TestCallbackRouter_RegisterAndResolve tests basic routing
func TestCallbackRouter_RegisterAndResolve(t *testing.T) {
	router := types.NewCallbackRouter()
	target := addr("target").String()

	require.Nil(t, router.Resolve(target))

	handler := noopCallback{}
	router.Register(target, handler)
	require.NotNil(t, router.Resolve(target))
	require.Nil(t, router.Resolve(addr("other").String()))
}

// TestCallbackRouter_DuplicateTarget tests that double registration panics
func TestCallbackRouter_DuplicateTarget(t *testing.T) {
	router := types.NewCallbackRouter()
	target := addr("target").String()

	router.Register(target, noopCallback{})
	require.PanicsWithValue(t, "callback target already registered: "+target, func() {
		router.Register(target, noopCallback{})
	})
}

// TestCallbackRouter_NilHandler tests that a nil handler panics
func TestCallbackRouter_NilHandler(t *testing.T) {
	router := types.NewCallbackRouter()
	require.Panics(t, func() {
		router.Register(addr("target").String(), nil)
	})
}

// TestCallbackRouter_Sealed tests that registration after Seal panics
func TestCallbackRouter_Sealed(t *testing.T) {
	router := types.NewCallbackRouter()
	router.Register(addr("target").String(), noopCallback{})
	router.Seal()

	require.PanicsWithValue(t, "callback router is sealed", func() {
		router.Register(addr("other").String(), noopCallback{})
	})

	// Already registered handlers survive sealing.
	require.NotNil(t, router.Resolve(addr("target").String()))
}

// TestCallbackOutcome_String tests the event attribute values
func TestCallbackOutcome_String(t *testing.T) {
	require.Equal(t, "success", types.CallbackSuccess.String())
	require.Equal(t, "rejected", types.CallbackRejected.String())
	require.Equal(t, "faulted", types.CallbackFaulted.String())
	require.Equal(t, "unknown", types.CallbackOutcome(99).String())
}
