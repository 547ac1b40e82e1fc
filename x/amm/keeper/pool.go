package keeper

import (
	"context"
	"encoding/json"

	"cosmossdk.io/store/prefix"

	"github.com/helix-dex/helix/x/amm/types"
)

// GetPool returns the pool for a pair. Pools are implicit: a pair that has
// never been funded resolves to the empty pool rather than an error.
func (k Keeper) GetPool(ctx context.Context, pair types.Pair) types.Pool {
	store := k.getStore(ctx)
	bz := store.Get(PoolKey(pair))
	if bz == nil {
		return types.NewPool(pair)
	}
	var pool types.Pool
	if err := json.Unmarshal(bz, &pool); err != nil {
		panic(err)
	}
	return pool
}

// HasPool reports whether a pool has ever been written for the pair.
func (k Keeper) HasPool(ctx context.Context, pair types.Pair) bool {
	return k.getStore(ctx).Has(PoolKey(pair))
}

// SetPool persists a pool after checking the state invariant.
func (k Keeper) SetPool(ctx context.Context, pool types.Pool) error {
	if err := pool.Validate(); err != nil {
		return err
	}
	bz, err := json.Marshal(pool)
	if err != nil {
		return types.ErrInvalidPoolState.Wrapf("marshal pool %s: %v", pool.Pair, err)
	}
	k.getStore(ctx).Set(PoolKey(pool.Pair), bz)
	return nil
}

// IteratePools calls fn for every stored pool until fn returns true.
func (k Keeper) IteratePools(ctx context.Context, fn func(pool types.Pool) bool) {
	store := prefix.NewStore(k.getStore(ctx), PoolKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := json.Unmarshal(iterator.Value(), &pool); err != nil {
			panic(err)
		}
		if fn(pool) {
			break
		}
	}
}

// GetAllPools returns every stored pool, used for genesis export.
func (k Keeper) GetAllPools(ctx context.Context) []types.Pool {
	var pools []types.Pool
	k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		return false
	})
	return pools
}
