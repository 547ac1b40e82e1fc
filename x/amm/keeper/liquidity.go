package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-dex/helix/x/amm/types"
)

// AddLiquidity deposits up to desiredA/desiredB of the two denoms into the
// pair's pool and mints shares to recipient. The first deposit into an empty
// pool takes both desired amounts in full and mints sqrt(a*b) shares; later
// deposits are scaled down to the current reserve ratio. Amounts are taken
// and returned in the caller's token order.
func (k Keeper) AddLiquidity(
	ctx sdk.Context,
	provider, recipient sdk.AccAddress,
	tokenA, tokenB string,
	desiredA, desiredB, minA, minB math.Int,
) (amountA, amountB, shares math.Int, err error) {
	pair, err := types.NewPair(tokenA, tokenB)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}

	// Reorient the caller's amounts to canonical pair order.
	flipped := tokenA != pair.TokenA
	if flipped {
		desiredA, desiredB = desiredB, desiredA
		minA, minB = minB, minA
	}

	pool := k.GetPool(ctx, pair)
	created := pool.IsEmpty()

	depositA, depositB, err := k.matchReserveRatio(pool, desiredA, desiredB, minA, minB)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}

	shares, err = k.sharesForDeposit(pool, depositA, depositB)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	if !shares.IsPositive() {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrZeroLiquidityMinted.Wrapf(
			"deposit of %s%s/%s%s mints no shares", depositA, pair.TokenA, depositB, pair.TokenB)
	}

	// Pull the deposit into the module account before touching pool state.
	coins := sdk.NewCoins(
		sdk.NewCoin(pair.TokenA, depositA),
		sdk.NewCoin(pair.TokenB, depositB),
	)
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, provider, types.ModuleName, coins); err != nil {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrTransferFailed.Wrapf("deposit: %v", err)
	}

	if err := k.mintShares(ctx, &pool, recipient, shares); err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	if pool.ReserveA, err = SafeAdd(pool.ReserveA, depositA); err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	if pool.ReserveB, err = SafeAdd(pool.ReserveB, depositB); err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}

	if created {
		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypePoolCreated,
			sdk.NewAttribute(types.AttributeKeyPair, pair.String()),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
		))
		k.afterPoolCreated(ctx, pair, provider.String())
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAddLiquidity,
		sdk.NewAttribute(types.AttributeKeyPair, pair.String()),
		sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
		sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
		sdk.NewAttribute(types.AttributeKeyAmountA, depositA.String()),
		sdk.NewAttribute(types.AttributeKeyAmountB, depositB.String()),
		sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		sdk.NewAttribute(types.AttributeKeyTotalShares, pool.TotalShares.String()),
	))
	k.afterLiquidityChanged(ctx, pair, provider.String(), depositA, depositB, true)

	if k.metrics != nil {
		k.metrics.LiquidityAdds.WithLabelValues(pair.String()).Inc()
		if created {
			k.metrics.PoolsTotal.Inc()
		}
	}

	if flipped {
		depositA, depositB = depositB, depositA
	}
	return depositA, depositB, shares, nil
}

// matchReserveRatio scales a desired deposit down to the pool's reserve
// ratio. For an empty pool both desired amounts are taken as given. The
// scaled-down leg must still clear its minimum.
func (k Keeper) matchReserveRatio(pool types.Pool, desiredA, desiredB, minA, minB math.Int) (math.Int, math.Int, error) {
	if pool.IsEmpty() {
		return desiredA, desiredB, nil
	}

	optimalB, err := SafeMulDiv(desiredA, pool.ReserveB, pool.ReserveA)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if optimalB.LTE(desiredB) {
		if optimalB.LT(minB) {
			return math.Int{}, math.Int{}, types.ErrInsufficientAmount.Wrapf(
				"ratio-matched %s deposit %s below minimum %s", pool.Pair.TokenB, optimalB, minB)
		}
		return desiredA, optimalB, nil
	}

	optimalA, err := SafeMulDiv(desiredB, pool.ReserveA, pool.ReserveB)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if optimalA.GT(desiredA) {
		return math.Int{}, math.Int{}, types.ErrInvalidPoolState.Wrapf(
			"reserve ratio of %s produced no feasible deposit", pool.Pair)
	}
	if optimalA.LT(minA) {
		return math.Int{}, math.Int{}, types.ErrInsufficientAmount.Wrapf(
			"ratio-matched %s deposit %s below minimum %s", pool.Pair.TokenA, optimalA, minA)
	}
	return optimalA, desiredB, nil
}

// sharesForDeposit computes the shares minted for a deposit: sqrt(a*b) for
// the seeding deposit, otherwise the conservative pro-rata amount
// min(a*S/reserveA, b*S/reserveB) so that rounding always favors the pool.
func (k Keeper) sharesForDeposit(pool types.Pool, depositA, depositB math.Int) (math.Int, error) {
	if pool.IsEmpty() {
		product, err := SafeMul(depositA, depositB)
		if err != nil {
			return math.Int{}, err
		}
		return Isqrt(product)
	}

	byA, err := SafeMulDiv(depositA, pool.TotalShares, pool.ReserveA)
	if err != nil {
		return math.Int{}, err
	}
	byB, err := SafeMulDiv(depositB, pool.TotalShares, pool.ReserveB)
	if err != nil {
		return math.Int{}, err
	}
	return math.MinInt(byA, byB), nil
}

// RemoveLiquidity burns shares from provider and pays the pro-rata portion
// of both reserves to recipient. Withdrawal amounts round down, leaving the
// remainder with the pool. Amounts are returned in the caller's token order.
func (k Keeper) RemoveLiquidity(
	ctx sdk.Context,
	provider, recipient sdk.AccAddress,
	tokenA, tokenB string,
	shares, minA, minB math.Int,
) (amountA, amountB math.Int, err error) {
	pair, err := types.NewPair(tokenA, tokenB)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	flipped := tokenA != pair.TokenA
	if flipped {
		minA, minB = minB, minA
	}

	pool := k.GetPool(ctx, pair)
	if pool.IsEmpty() {
		return math.Int{}, math.Int{}, types.ErrNoLiquidity.Wrapf("pool %s has no liquidity", pair)
	}

	withdrawA, err := SafeMulDiv(shares, pool.ReserveA, pool.TotalShares)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	withdrawB, err := SafeMulDiv(shares, pool.ReserveB, pool.TotalShares)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	if !withdrawA.IsPositive() || !withdrawB.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrInsufficientAmount.Wrapf(
			"%s shares redeem to a zero withdrawal", shares)
	}
	if withdrawA.LT(minA) || withdrawB.LT(minB) {
		return math.Int{}, math.Int{}, types.ErrInsufficientAmount.Wrapf(
			"withdrawal %s%s/%s%s below minimums %s/%s",
			withdrawA, pair.TokenA, withdrawB, pair.TokenB, minA, minB)
	}

	if err := k.burnShares(ctx, &pool, provider, shares); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if pool.ReserveA, err = SafeSub(pool.ReserveA, withdrawA); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if pool.ReserveB, err = SafeSub(pool.ReserveB, withdrawB); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, math.Int{}, err
	}

	// Pay out only after pool state is settled.
	coins := sdk.NewCoins(
		sdk.NewCoin(pair.TokenA, withdrawA),
		sdk.NewCoin(pair.TokenB, withdrawB),
	)
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, coins); err != nil {
		return math.Int{}, math.Int{}, types.ErrTransferFailed.Wrapf("withdrawal: %v", err)
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRemoveLiquidity,
		sdk.NewAttribute(types.AttributeKeyPair, pair.String()),
		sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
		sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
		sdk.NewAttribute(types.AttributeKeyAmountA, withdrawA.String()),
		sdk.NewAttribute(types.AttributeKeyAmountB, withdrawB.String()),
		sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		sdk.NewAttribute(types.AttributeKeyTotalShares, pool.TotalShares.String()),
	))
	k.afterLiquidityChanged(ctx, pair, provider.String(), withdrawA, withdrawB, false)

	if k.metrics != nil {
		k.metrics.LiquidityRemovals.WithLabelValues(pair.String()).Inc()
		if pool.IsEmpty() {
			k.metrics.PoolsTotal.Dec()
		}
	}

	if flipped {
		withdrawA, withdrawB = withdrawB, withdrawA
	}
	return withdrawA, withdrawB, nil
}
