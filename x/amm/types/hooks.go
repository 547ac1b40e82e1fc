package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

// AmmHooks defines the interface for AMM module callbacks. Hook errors are
// logged and dropped by the keeper; a misbehaving listener cannot roll back
// a completed operation.
type AmmHooks interface {
	// AfterPoolCreated is called the first time liquidity seeds a pair.
	AfterPoolCreated(ctx context.Context, pair Pair, creator string) error

	// AfterLiquidityChanged is called when liquidity is added or removed.
	// deltaA and deltaB are the canonical-order reserve deltas, isAdd the
	// direction.
	AfterLiquidityChanged(ctx context.Context, pair Pair, provider string, deltaA, deltaB sdkmath.Int, isAdd bool) error

	// AfterSwap is called once per completed route with the full amount
	// trace. amounts[0] is the input amount.
	AfterSwap(ctx context.Context, trader string, path []string, amounts []sdkmath.Int) error
}

// MultiAmmHooks combines multiple AMM hooks into a single hook that calls all of them.
type MultiAmmHooks []AmmHooks

// NewMultiAmmHooks creates a new MultiAmmHooks from a list of hooks.
func NewMultiAmmHooks(hooks ...AmmHooks) MultiAmmHooks {
	return hooks
}

// AfterPoolCreated calls AfterPoolCreated on all registered hooks.
func (h MultiAmmHooks) AfterPoolCreated(ctx context.Context, pair Pair, creator string) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterPoolCreated(ctx, pair, creator); err != nil {
			return err
		}
	}
	return nil
}

// AfterLiquidityChanged calls AfterLiquidityChanged on all registered hooks.
func (h MultiAmmHooks) AfterLiquidityChanged(ctx context.Context, pair Pair, provider string, deltaA, deltaB sdkmath.Int, isAdd bool) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterLiquidityChanged(ctx, pair, provider, deltaA, deltaB, isAdd); err != nil {
			return err
		}
	}
	return nil
}

// AfterSwap calls AfterSwap on all registered hooks.
func (h MultiAmmHooks) AfterSwap(ctx context.Context, trader string, path []string, amounts []sdkmath.Int) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterSwap(ctx, trader, path, amounts); err != nil {
			return err
		}
	}
	return nil
}
