package types

const (
	// ModuleName defines the module name
	ModuleName = "decrypt"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for decrypt
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName

	// DefaultDenom is the denomination escrowed by the module
	DefaultDenom = "uveil"
)

func KeyPrefix(p string) []byte {
	return []byte(p)
}

const (
	// RequestKeyPrefix is the prefix for the request store
	RequestKeyPrefix = "Request/value/"

	// ExecutorKeyPrefix is the prefix for the executor approval store
	ExecutorKeyPrefix = "Executor/value/"

	// FeeBalanceKeyPrefix is the prefix for the executor fee balance store
	FeeBalanceKeyPrefix = "FeeBalance/value/"

	// ParamsKey is the key under which module parameters are stored
	ParamsKey = "Params/value"
)

// RequestKey returns the store key for a request record
func RequestKey(id string) []byte {
	return append(KeyPrefix(RequestKeyPrefix), []byte(id)...)
}

// ExecutorKey returns the store key for an executor approval record
func ExecutorKey(executor string) []byte {
	return append(KeyPrefix(ExecutorKeyPrefix), []byte(executor)...)
}

// FeeBalanceKey returns the store key for an executor fee balance
func FeeBalanceKey(executor string) []byte {
	return append(KeyPrefix(FeeBalanceKeyPrefix), []byte(executor)...)
}
