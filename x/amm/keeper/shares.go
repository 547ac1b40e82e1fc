package keeper

import (
	"context"

	"cosmossdk.io/math"
	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-dex/helix/x/amm/types"
)

// GetShares returns a provider's share balance in a pool, zero if none.
func (k Keeper) GetShares(ctx context.Context, pair types.Pair, provider sdk.AccAddress) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(ShareKey(pair, provider))
	if bz == nil {
		return math.ZeroInt()
	}
	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		panic(err)
	}
	return shares
}

// setShares writes a share balance, deleting the entry when it reaches zero
// so drained positions do not accumulate in the store.
func (k Keeper) setShares(ctx context.Context, pair types.Pair, provider sdk.AccAddress, shares math.Int) {
	store := k.getStore(ctx)
	key := ShareKey(pair, provider)
	if shares.IsZero() {
		store.Delete(key)
		return
	}
	bz, err := shares.Marshal()
	if err != nil {
		panic(err)
	}
	store.Set(key, bz)
}

// mintShares credits newly minted shares to a provider and grows the pool's
// share supply by the same amount.
func (k Keeper) mintShares(ctx context.Context, pool *types.Pool, provider sdk.AccAddress, shares math.Int) error {
	newBalance, err := SafeAdd(k.GetShares(ctx, pool.Pair, provider), shares)
	if err != nil {
		return err
	}
	newTotal, err := SafeAdd(pool.TotalShares, shares)
	if err != nil {
		return err
	}
	k.setShares(ctx, pool.Pair, provider, newBalance)
	pool.TotalShares = newTotal
	return nil
}

// burnShares debits shares from a provider and shrinks the pool's share
// supply. Fails with ErrInsufficientShares if the balance is too small.
func (k Keeper) burnShares(ctx context.Context, pool *types.Pool, provider sdk.AccAddress, shares math.Int) error {
	balance := k.GetShares(ctx, pool.Pair, provider)
	if balance.LT(shares) {
		return types.ErrInsufficientShares.Wrapf("have %s, need %s", balance, shares)
	}
	newTotal, err := SafeSub(pool.TotalShares, shares)
	if err != nil {
		return err
	}
	k.setShares(ctx, pool.Pair, provider, balance.Sub(shares))
	pool.TotalShares = newTotal
	return nil
}

// IterateShares calls fn for every share position in a pool until fn
// returns true.
func (k Keeper) IterateShares(ctx context.Context, pair types.Pair, fn func(provider sdk.AccAddress, shares math.Int) bool) {
	store := prefix.NewStore(k.getStore(ctx), SharesByPoolPrefix(pair))
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			panic(err)
		}
		if fn(sdk.AccAddress(iterator.Key()), shares) {
			break
		}
	}
}

// GetAllPositions returns every share position, used for genesis export.
func (k Keeper) GetAllPositions(ctx context.Context) []types.SharePosition {
	var positions []types.SharePosition
	k.IteratePools(ctx, func(pool types.Pool) bool {
		k.IterateShares(ctx, pool.Pair, func(provider sdk.AccAddress, shares math.Int) bool {
			positions = append(positions, types.SharePosition{
				Pair:     pool.Pair,
				Provider: provider.String(),
				Shares:   shares,
			})
			return false
		})
		return false
	})
	return positions
}
