package keeper

import (
	"context"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-dex/helix/x/amm/types"
)

// Keeper of the amm store
type Keeper struct {
	storeKey   storetypes.StoreKey
	cdc        codec.BinaryCodec
	bankKeeper types.BankKeeper

	hooks   types.AmmHooks
	metrics *Metrics
}

// NewKeeper creates a new amm Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
) *Keeper {
	return &Keeper{
		storeKey:   key,
		cdc:        cdc,
		bankKeeper: bankKeeper,
	}
}

// SetHooks sets the module hooks. Panics if called more than once, matching
// the convention of other keepers.
func (k *Keeper) SetHooks(hooks types.AmmHooks) *Keeper {
	if k.hooks != nil {
		panic("cannot set amm hooks twice")
	}
	k.hooks = hooks
	return k
}

// SetMetrics enables Prometheus instrumentation. Safe to leave unset.
func (k *Keeper) SetMetrics(m *Metrics) {
	k.metrics = m
}

// getStore returns the KVStore for the amm module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// afterPoolCreated notifies registered hooks that a pair was seeded. Hook
// failures are logged, never propagated: listeners cannot veto completed
// state transitions.
func (k Keeper) afterPoolCreated(ctx sdk.Context, pair types.Pair, creator string) {
	if k.hooks == nil {
		return
	}
	if err := k.hooks.AfterPoolCreated(ctx, pair, creator); err != nil {
		ctx.Logger().Error("amm hook AfterPoolCreated failed", "pair", pair.String(), "err", err)
	}
}

func (k Keeper) afterLiquidityChanged(ctx sdk.Context, pair types.Pair, provider string, deltaA, deltaB math.Int, isAdd bool) {
	if k.hooks == nil {
		return
	}
	if err := k.hooks.AfterLiquidityChanged(ctx, pair, provider, deltaA, deltaB, isAdd); err != nil {
		ctx.Logger().Error("amm hook AfterLiquidityChanged failed", "pair", pair.String(), "err", err)
	}
}

func (k Keeper) afterSwap(ctx sdk.Context, trader string, path []string, amounts []math.Int) {
	if k.hooks == nil {
		return
	}
	if err := k.hooks.AfterSwap(ctx, trader, path, amounts); err != nil {
		ctx.Logger().Error("amm hook AfterSwap failed", "trader", trader, "err", err)
	}
}
