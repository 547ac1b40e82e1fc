package types

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// PriceDecimals is the number of decimals in fixed-point spot prices
// returned by the Price query: price = reserveB * 10^PriceDecimals / reserveA.
const PriceDecimals = 18
