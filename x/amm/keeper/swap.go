package keeper

import (
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-dex/helix/x/amm/types"
)

// GetAmountOut computes the constant-product output for a single hop. The
// fee is charged on the input, all arithmetic multiplies before dividing,
// and the final division truncates in the pool's favor:
//
//	out = (in * (den-num) * reserveOut) / (reserveIn * den + in * (den-num))
func GetAmountOut(params types.Params, amountIn, reserveIn, reserveOut math.Int) (math.Int, error) {
	if !amountIn.IsPositive() {
		return math.Int{}, types.ErrInsufficientAmount.Wrap("swap input must be positive")
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, types.ErrNoLiquidity.Wrap("pool has no liquidity")
	}

	feeMultiplier := math.NewIntFromUint64(params.SwapFeeDenominator - params.SwapFeeNumerator)
	feeDenominator := math.NewIntFromUint64(params.SwapFeeDenominator)

	amountInWithFee, err := SafeMul(amountIn, feeMultiplier)
	if err != nil {
		return math.Int{}, err
	}
	numerator, err := SafeMul(amountInWithFee, reserveOut)
	if err != nil {
		return math.Int{}, err
	}
	scaledReserveIn, err := SafeMul(reserveIn, feeDenominator)
	if err != nil {
		return math.Int{}, err
	}
	denominator, err := SafeAdd(scaledReserveIn, amountInWithFee)
	if err != nil {
		return math.Int{}, err
	}
	out, err := SafeQuo(numerator, denominator)
	if err != nil {
		return math.Int{}, err
	}
	if out.GTE(reserveOut) {
		return math.Int{}, types.ErrInsufficientLiquidity.Wrapf(
			"output %s would drain reserve %s", out, reserveOut)
	}
	return out, nil
}

// Quote simulates a swap of amountIn along path against current reserves
// without executing it. The returned slice holds the amount at every step of
// the route, amounts[0] being the input. Routes that cross the same pool
// twice see their own earlier hops reflected in the later reserves.
func (k Keeper) Quote(ctx sdk.Context, amountIn math.Int, path []string) ([]math.Int, error) {
	amounts, _, err := k.routeAmounts(ctx, amountIn, path)
	return amounts, err
}

// routeAmounts walks a route hop by hop, computing the amount at each step
// and the updated pool states the route would leave behind.
func (k Keeper) routeAmounts(ctx sdk.Context, amountIn math.Int, path []string) ([]math.Int, map[string]types.Pool, error) {
	if err := types.ValidatePath(path); err != nil {
		return nil, nil, err
	}
	params := k.GetParams(ctx)
	if uint64(len(path)) > params.MaxPathLength {
		return nil, nil, types.ErrInvalidRoute.Wrapf(
			"path of %d denoms exceeds maximum of %d", len(path), params.MaxPathLength)
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return nil, nil, types.ErrInsufficientAmount.Wrap("swap input must be positive")
	}

	amounts := make([]math.Int, len(path))
	amounts[0] = amountIn
	poolUpdates := make(map[string]types.Pool)

	for i := 0; i < len(path)-1; i++ {
		denomIn, denomOut := path[i], path[i+1]
		pair, err := types.NewPair(denomIn, denomOut)
		if err != nil {
			return nil, nil, err
		}

		// Keyed by the length-prefixed pair key, not Pair.String(): denoms
		// may contain "/" (ibc/...), so the display form is ambiguous.
		pool, seen := poolUpdates[string(pair.Key())]
		if !seen {
			pool = k.GetPool(ctx, pair)
		}

		reserveIn, reserveOut := pool.ReservesFor(denomIn)
		out, err := GetAmountOut(params, amounts[i], reserveIn, reserveOut)
		if err != nil {
			return nil, nil, err
		}

		newIn, err := SafeAdd(reserveIn, amounts[i])
		if err != nil {
			return nil, nil, err
		}
		newOut, err := SafeSub(reserveOut, out)
		if err != nil {
			return nil, nil, err
		}
		if denomIn == pair.TokenA {
			pool.ReserveA, pool.ReserveB = newIn, newOut
		} else {
			pool.ReserveA, pool.ReserveB = newOut, newIn
		}
		poolUpdates[string(pair.Key())] = pool

		amounts[i+1] = out
	}

	return amounts, poolUpdates, nil
}

// SwapExactIn trades amounts[0] = amountIn of path[0] along the route and
// pays the final output to recipient. Intermediate hop outputs are internal
// pool-to-pool moves; only the final amount is checked against minAmountOut.
func (k Keeper) SwapExactIn(
	ctx sdk.Context,
	trader, recipient sdk.AccAddress,
	amountIn, minAmountOut math.Int,
	path []string,
) ([]math.Int, error) {
	amounts, poolUpdates, err := k.routeAmounts(ctx, amountIn, path)
	if err != nil {
		return nil, err
	}

	amountOut := amounts[len(amounts)-1]
	if amountOut.LT(minAmountOut) {
		return nil, types.ErrInsufficientOutput.Wrapf(
			"output %s%s below minimum %s", amountOut, path[len(path)-1], minAmountOut)
	}
	if amountOut.IsZero() {
		return nil, types.ErrInsufficientOutput.Wrap("route yields zero output")
	}

	// Pull the input before writing state, pay out after.
	inCoins := sdk.NewCoins(sdk.NewCoin(path[0], amountIn))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, trader, types.ModuleName, inCoins); err != nil {
		return nil, types.ErrTransferFailed.Wrapf("swap input: %v", err)
	}

	for _, pool := range poolUpdates {
		if err := k.SetPool(ctx, pool); err != nil {
			return nil, err
		}
	}

	outCoins := sdk.NewCoins(sdk.NewCoin(path[len(path)-1], amountOut))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, outCoins); err != nil {
		return nil, types.ErrTransferFailed.Wrapf("swap output: %v", err)
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSwap,
		sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
		sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
		sdk.NewAttribute(types.AttributeKeyPath, strings.Join(path, ",")),
		sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
		sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
	))
	k.afterSwap(ctx, trader.String(), path, amounts)

	if k.metrics != nil {
		k.metrics.Swaps.WithLabelValues(path[0], path[len(path)-1]).Inc()
	}

	return amounts, nil
}

// Price returns the spot price of base denominated in quote, scaled by
// 10^PriceDecimals: reserveQuote * 10^18 / reserveBase.
func (k Keeper) Price(ctx sdk.Context, base, quote string) (math.Int, error) {
	pair, err := types.NewPair(base, quote)
	if err != nil {
		return math.Int{}, err
	}
	pool := k.GetPool(ctx, pair)
	if pool.IsEmpty() {
		return math.Int{}, types.ErrNoLiquidity.Wrapf("pool %s has no liquidity", pair)
	}

	reserveBase, reserveQuote := pool.ReservesFor(base)
	scale := math.NewIntWithDecimal(1, types.PriceDecimals)
	return SafeMulDiv(reserveQuote, scale, reserveBase)
}
