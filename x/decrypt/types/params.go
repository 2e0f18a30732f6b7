package types

import (
	"fmt"
)

// Default parameter values. Timeouts are expressed in seconds.
const (
	DefaultTimeoutSeconds    uint64 = 3600
	DefaultMinTimeoutSeconds uint64 = 60
	DefaultMaxTimeoutSeconds uint64 = 86400
	DefaultMaxPayloadBytes   uint64 = 65536
)

// Params defines the configurable parameters of the decrypt module.
type Params struct {
	DefaultTimeoutSeconds uint64 `json:"default_timeout_seconds"`
	MinTimeoutSeconds     uint64 `json:"min_timeout_seconds"`
	MaxTimeoutSeconds     uint64 `json:"max_timeout_seconds"`
	MaxPayloadBytes       uint64 `json:"max_payload_bytes"`
}

// DefaultParams returns default decrypt parameters
func DefaultParams() Params {
	return Params{
		DefaultTimeoutSeconds: DefaultTimeoutSeconds,
		MinTimeoutSeconds:     DefaultMinTimeoutSeconds,
		MaxTimeoutSeconds:     DefaultMaxTimeoutSeconds,
		MaxPayloadBytes:       DefaultMaxPayloadBytes,
	}
}

// Validate checks the parameter invariants: the minimum timeout is positive,
// the maximum exceeds the minimum, and the default lies within the bounds.
func (p Params) Validate() error {
	if p.MinTimeoutSeconds == 0 {
		return fmt.Errorf("min timeout must be positive")
	}
	if p.MaxTimeoutSeconds <= p.MinTimeoutSeconds {
		return fmt.Errorf("max timeout %d must exceed min timeout %d", p.MaxTimeoutSeconds, p.MinTimeoutSeconds)
	}
	if p.DefaultTimeoutSeconds < p.MinTimeoutSeconds || p.DefaultTimeoutSeconds > p.MaxTimeoutSeconds {
		return fmt.Errorf("default timeout %d outside bounds [%d, %d]",
			p.DefaultTimeoutSeconds, p.MinTimeoutSeconds, p.MaxTimeoutSeconds)
	}
	if p.MaxPayloadBytes == 0 {
		return fmt.Errorf("max payload size must be positive")
	}
	return nil
}

// ValidateTimeout checks a requested timeout duration against the configured
// bounds. A zero duration is the caller asking for the default and is
// resolved by EffectiveTimeout before this check.
func (p Params) ValidateTimeout(timeoutSeconds uint64) error {
	if timeoutSeconds < p.MinTimeoutSeconds || timeoutSeconds > p.MaxTimeoutSeconds {
		return fmt.Errorf("timeout %d outside bounds [%d, %d]",
			timeoutSeconds, p.MinTimeoutSeconds, p.MaxTimeoutSeconds)
	}
	return nil
}

// EffectiveTimeout resolves a submitted timeout: zero selects the configured
// default, any other value is used as given.
func (p Params) EffectiveTimeout(timeoutSeconds uint64) uint64 {
	if timeoutSeconds == 0 {
		return p.DefaultTimeoutSeconds
	}
	return timeoutSeconds
}
