package cli

// Flag constants for amm CLI commands
const (
	// Liquidity flags
	FlagMinA = "min-a"
	FlagMinB = "min-b"

	// Swap flags
	FlagMinAmountOut = "min-amount-out"

	// Shared flags
	FlagRecipient = "recipient"
	FlagDeadline  = "deadline"
)
