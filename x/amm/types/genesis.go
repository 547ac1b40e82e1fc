package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SharePosition is one provider's liquidity share balance in one pool.
type SharePosition struct {
	Pair     Pair        `json:"pair"`
	Provider string      `json:"provider"`
	Shares   sdkmath.Int `json:"shares"`
}

// GenesisState defines the AMM module's genesis state.
type GenesisState struct {
	Params    Params          `json:"params"`
	Pools     []Pool          `json:"pools"`
	Positions []SharePosition `json:"positions"`
}

// NewGenesisState creates a genesis state from its components.
func NewGenesisState(params Params, pools []Pool, positions []SharePosition) *GenesisState {
	return &GenesisState{
		Params:    params,
		Pools:     pools,
		Positions: positions,
	}
}

// DefaultGenesis returns the default genesis state: default parameters and
// no pools.
func DefaultGenesis() *GenesisState {
	return NewGenesisState(DefaultParams(), []Pool{}, []SharePosition{})
}

// Validate ensures the genesis state is well-formed: every pool satisfies
// the pool invariant, pairs are unique, and each pool's share supply equals
// the sum of its positions.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	// Maps are keyed by the length-prefixed pair key; Pair.String() is
	// ambiguous for denoms containing "/".
	seen := make(map[string]bool, len(gs.Pools))
	shareTotals := make(map[string]sdkmath.Int, len(gs.Pools))
	pairNames := make(map[string]string, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return err
		}
		key := string(pool.Pair.Key())
		if seen[key] {
			return fmt.Errorf("duplicate pool for pair %s", pool.Pair)
		}
		seen[key] = true
		shareTotals[key] = pool.TotalShares
		pairNames[key] = pool.Pair.String()
	}

	posSeen := make(map[string]bool, len(gs.Positions))
	for _, pos := range gs.Positions {
		if err := pos.Pair.Validate(); err != nil {
			return err
		}
		if _, err := sdk.AccAddressFromBech32(pos.Provider); err != nil {
			return fmt.Errorf("invalid position provider address %q: %w", pos.Provider, err)
		}
		if pos.Shares.IsNil() || !pos.Shares.IsPositive() {
			return fmt.Errorf("position for %s/%s must hold positive shares", pos.Provider, pos.Pair)
		}
		key := string(pos.Pair.Key())
		total, ok := shareTotals[key]
		if !ok {
			return fmt.Errorf("position references unknown pool %s", pos.Pair)
		}
		posKey := key + "|" + pos.Provider
		if posSeen[posKey] {
			return fmt.Errorf("duplicate position for %s in pool %s", pos.Provider, pos.Pair)
		}
		posSeen[posKey] = true
		shareTotals[key] = total.Sub(pos.Shares)
	}

	for key, remainder := range shareTotals {
		if !remainder.IsZero() {
			return fmt.Errorf("pool %s share supply does not match positions (off by %s)", pairNames[key], remainder)
		}
	}

	return nil
}
