package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-dex/helix/x/amm/types"
)

var (
	// PoolKeyPrefix is the prefix for pool store keys
	PoolKeyPrefix = []byte{0x01}

	// ShareKeyPrefix is the prefix for liquidity share position keys
	ShareKeyPrefix = []byte{0x02}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x03}
)

// PoolKey returns the store key for a pool by its canonical pair.
func PoolKey(pair types.Pair) []byte {
	return append(PoolKeyPrefix, pair.Key()...)
}

// ShareKey returns the store key for one provider's share position in a pool.
func ShareKey(pair types.Pair, provider sdk.AccAddress) []byte {
	key := append(ShareKeyPrefix, pair.Key()...)
	return append(key, provider.Bytes()...)
}

// SharesByPoolPrefix returns the prefix covering every share position in a pool.
func SharesByPoolPrefix(pair types.Pair) []byte {
	return append(ShareKeyPrefix, pair.Key()...)
}
