package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/helix-dex/helix/x/amm/types"
)

// RegisterInvariants registers all AMM invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "pool-state", PoolStateInvariant(k))
	ir.RegisterRoute(types.ModuleName, "share-supply", ShareSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "module-account-balance", ModuleAccountBalanceInvariant(k))
}

// AllInvariants runs all invariants of the AMM module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := PoolStateInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = ShareSupplyInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return ModuleAccountBalanceInvariant(k)(ctx)
	}
}

// PoolStateInvariant checks that every stored pool satisfies the zero-together
// rule: reserves and share supply are either all zero or all positive.
func PoolStateInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		k.IteratePools(ctx, func(pool types.Pool) bool {
			if err := pool.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("pool %s: %v\n", pool.Pair, err)
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pool-state",
			fmt.Sprintf("found %d pools in invalid state\n%s", count, msg),
		), broken
	}
}

// ShareSupplyInvariant checks that each pool's share supply equals the sum
// of its providers' positions.
func ShareSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		k.IteratePools(ctx, func(pool types.Pool) bool {
			sum := math.ZeroInt()
			k.IterateShares(ctx, pool.Pair, func(_ sdk.AccAddress, shares math.Int) bool {
				sum = sum.Add(shares)
				return false
			})
			if !sum.Equal(pool.TotalShares) {
				count++
				msg += fmt.Sprintf("pool %s: positions sum to %s, supply is %s\n",
					pool.Pair, sum, pool.TotalShares)
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "share-supply",
			fmt.Sprintf("found %d pools with mismatched share supply\n%s", count, msg),
		), broken
	}
}

// ModuleAccountBalanceInvariant checks that the module account holds at least
// the sum of all pool reserves per denom.
func ModuleAccountBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		totals := make(map[string]math.Int)
		k.IteratePools(ctx, func(pool types.Pool) bool {
			for denom, reserve := range map[string]math.Int{
				pool.Pair.TokenA: pool.ReserveA,
				pool.Pair.TokenB: pool.ReserveB,
			} {
				if existing, ok := totals[denom]; ok {
					totals[denom] = existing.Add(reserve)
				} else {
					totals[denom] = reserve
				}
			}
			return false
		})

		moduleAddr := authtypes.NewModuleAddress(types.ModuleName)
		for denom, total := range totals {
			balance := k.bankKeeper.GetBalance(ctx, moduleAddr, denom)
			if balance.Amount.LT(total) {
				count++
				msg += fmt.Sprintf("module balance for %s (%s) < summed reserves (%s)\n",
					denom, balance.Amount, total)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "module-account-balance",
			fmt.Sprintf("found %d denoms with reserves exceeding module balance\n%s", count, msg),
		), broken
	}
}
