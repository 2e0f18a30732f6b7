package cli

// Flag names used by the decrypt tx commands
const (
	FlagCallbackTarget = "callback-target"
	FlagTimeoutSeconds = "timeout-seconds"
	FlagDeposit        = "deposit"
)
