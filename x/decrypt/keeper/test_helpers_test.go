package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/veil-chain/veil/testutil/keeper"
	"github.com/veil-chain/veil/x/decrypt/keeper"
	"github.com/veil-chain/veil/x/decrypt/types"
)

// testAddr derives a deterministic test address from a name.
func testAddr(name string) sdk.AccAddress {
	buf := make([]byte, 20)
	copy(buf, name)
	return sdk.AccAddress(buf)
}

// acceptAllCallback accepts every decrypted result.
type acceptAllCallback struct{}

func (acceptAllCallback) OnDecryptionComplete(sdk.Context, string, sdk.AccAddress, []byte, []byte) bool {
	return true
}

// rejectAllCallback rejects every decrypted result.
type rejectAllCallback struct{}

func (rejectAllCallback) OnDecryptionComplete(sdk.Context, string, sdk.AccAddress, []byte, []byte) bool {
	return false
}

// panicCallback simulates a faulting consumer.
type panicCallback struct{}

func (panicCallback) OnDecryptionComplete(sdk.Context, string, sdk.AccAddress, []byte, []byte) bool {
	panic("callback target misbehaved")
}

// recordingCallback captures the arguments it was invoked with so tests can
// assert on what the dispatcher delivered.
type recordingCallback struct {
	invoked          bool
	requestID        string
	requester        sdk.AccAddress
	payload          []byte
	decryptedPayload []byte
	accept           bool
}

func (c *recordingCallback) OnDecryptionComplete(_ sdk.Context, requestID string, requester sdk.AccAddress, payload, decryptedPayload []byte) bool {
	c.invoked = true
	c.requestID = requestID
	c.requester = requester
	c.payload = payload
	c.decryptedPayload = decryptedPayload
	return c.accept
}

// reentrantCallback attempts to complete its own request again from inside
// the callback and records the error the reentrant call produced.
type reentrantCallback struct {
	k            *keeper.Keeper
	executor     sdk.AccAddress
	reentrantErr error
}

func (c *reentrantCallback) OnDecryptionComplete(ctx sdk.Context, requestID string, _ sdk.AccAddress, _, _ []byte) bool {
	_, c.reentrantErr = c.k.CompleteRequest(ctx, requestID, c.executor, []byte("reentrant"))
	return true
}

// lifecycleFixture bundles the keeper, context and actors most lifecycle
// tests need: a funded requester, an approved executor, and a callback
// target wired into the router.
type lifecycleFixture struct {
	k         *keeper.Keeper
	ctx       sdk.Context
	requester sdk.AccAddress
	executor  sdk.AccAddress
	target    sdk.AccAddress
}

// setupLifecycle builds a fixture with the given handler registered for the
// fixture's callback target. A nil handler leaves the target unregistered.
func setupLifecycle(t *testing.T, handler types.DecryptionCallback) lifecycleFixture {
	t.Helper()

	target := testAddr("callback_target")
	router := types.NewCallbackRouter()
	if handler != nil {
		router.Register(target.String(), handler)
	}

	k, ctx := keepertest.DecryptKeeperWithRouter(t, router)

	requester := testAddr("requester")
	executor := testAddr("executor")

	keepertest.FundAccount(t, ctx, keepertest.BankKeeperOf(t, k), requester, math.NewInt(1_000_000))
	require.NoError(t, k.ApproveExecutor(ctx, keepertest.Authority(), executor))

	return lifecycleFixture{k: k, ctx: ctx, requester: requester, executor: executor, target: target}
}

// submitRequest submits a request with the fixture's requester and returns
// the derived request id.
func (f lifecycleFixture) submitRequest(t *testing.T, deposit int64, timeoutSeconds uint64) string {
	t.Helper()

	id, err := f.k.SubmitRequest(f.ctx, f.requester, []byte("encrypted-payload"), f.target.String(), timeoutSeconds, math.NewInt(deposit))
	require.NoError(t, err)
	return id
}

// balanceOf returns an account's uveil balance.
func balanceOf(t *testing.T, k *keeper.Keeper, ctx sdk.Context, addr sdk.AccAddress) math.Int {
	t.Helper()
	return keepertest.BankKeeperOf(t, k).GetBalance(ctx, addr, types.DefaultDenom).Amount
}

// findEvent returns the first emitted event of the given type, if any.
func findEvent(ctx sdk.Context, eventType string) (sdk.Event, bool) {
	for _, event := range ctx.EventManager().Events() {
		if event.Type == eventType {
			return event, true
		}
	}
	return sdk.Event{}, false
}

// eventAttribute returns the value of an event attribute.
func eventAttribute(t *testing.T, event sdk.Event, key string) string {
	t.Helper()
	for _, attr := range event.Attributes {
		if attr.Key == key {
			return attr.Value
		}
	}
	t.Fatalf("event %s has no attribute %s", event.Type, key)
	return ""
}
