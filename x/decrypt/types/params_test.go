package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veil-chain/veil/x/decrypt/types"
)

// TestParams_DefaultValid tests that the defaults validate
func TestParams_DefaultValid(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())
}

// TestParams_Validate tests each parameter invariant
func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.Params)
		wantErr string
	}{
		{
			name:    "zero min timeout",
			mutate:  func(p *types.Params) { p.MinTimeoutSeconds = 0 },
			wantErr: "min timeout must be positive",
		},
		{
			name:    "max not above min",
			mutate:  func(p *types.Params) { p.MaxTimeoutSeconds = p.MinTimeoutSeconds },
			wantErr: "must exceed min timeout",
		},
		{
			name:    "default below min",
			mutate:  func(p *types.Params) { p.DefaultTimeoutSeconds = p.MinTimeoutSeconds - 1 },
			wantErr: "outside bounds",
		},
		{
			name:    "default above max",
			mutate:  func(p *types.Params) { p.DefaultTimeoutSeconds = p.MaxTimeoutSeconds + 1 },
			wantErr: "outside bounds",
		},
		{
			name:    "zero payload cap",
			mutate:  func(p *types.Params) { p.MaxPayloadBytes = 0 },
			wantErr: "max payload size must be positive",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := types.DefaultParams()
			tc.mutate(&params)
			err := params.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

// TestParams_EffectiveTimeout tests the zero-selects-default resolution
func TestParams_EffectiveTimeout(t *testing.T) {
	params := types.DefaultParams()

	require.Equal(t, params.DefaultTimeoutSeconds, params.EffectiveTimeout(0))
	require.Equal(t, uint64(120), params.EffectiveTimeout(120))
}

// TestParams_ValidateTimeout tests the configured timeout window, inclusive
// at both ends
func TestParams_ValidateTimeout(t *testing.T) {
	params := types.DefaultParams()

	require.NoError(t, params.ValidateTimeout(params.MinTimeoutSeconds))
	require.NoError(t, params.ValidateTimeout(params.MaxTimeoutSeconds))
	require.Error(t, params.ValidateTimeout(params.MinTimeoutSeconds-1))
	require.Error(t, params.ValidateTimeout(params.MaxTimeoutSeconds+1))
}
