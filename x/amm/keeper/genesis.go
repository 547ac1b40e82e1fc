package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-dex/helix/x/amm/types"
)

// InitGenesis initializes the amm module's state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid amm genesis: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	for _, pool := range genState.Pools {
		if err := k.SetPool(ctx, pool); err != nil {
			return fmt.Errorf("failed to set pool %s: %w", pool.Pair, err)
		}
	}

	for _, pos := range genState.Positions {
		provider, err := sdk.AccAddressFromBech32(pos.Provider)
		if err != nil {
			return fmt.Errorf("invalid position provider address %s: %w", pos.Provider, err)
		}
		k.setShares(ctx, pos.Pair, provider, pos.Shares)
	}

	return nil
}

// ExportGenesis exports the amm module's state to a genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	return types.NewGenesisState(
		k.GetParams(ctx),
		k.GetAllPools(ctx),
		k.GetAllPositions(ctx),
	)
}
