package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/helix-dex/helix/x/amm/types"
)

type queryServer struct {
	Keeper
}

const (
	defaultPaginationLimit = 100
	maxPaginationLimit     = 1000
)

// NewQueryServerImpl returns an implementation of the amm QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Params returns the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	return &types.QueryParamsResponse{
		Params: qs.Keeper.GetParams(goCtx),
	}, nil
}

// Pool returns the pool for a token pair, in canonical order.
func (qs queryServer) Pool(goCtx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pair, err := types.NewPair(req.TokenA, req.TokenB)
	if err != nil {
		return nil, err
	}

	return &types.QueryPoolResponse{
		Pool: qs.Keeper.GetPool(goCtx, pair),
	}, nil
}

// Pools returns all pools with pagination
func (qs queryServer) Pools(goCtx context.Context, req *types.QueryPoolsRequest) (*types.QueryPoolsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	// Enforce sane pagination defaults and caps to protect against unbounded queries.
	if req.Pagination == nil {
		req.Pagination = &query.PageRequest{Limit: defaultPaginationLimit}
	} else {
		if req.Pagination.Limit == 0 {
			req.Pagination.Limit = defaultPaginationLimit
		}
		if req.Pagination.Limit > maxPaginationLimit {
			req.Pagination.Limit = maxPaginationLimit
		}
	}

	// Charge gas proportional to the requested limit.
	ctx.GasMeter().ConsumeGas(req.Pagination.Limit*100, "paginated pools query")

	pools := make([]types.Pool, 0, int(req.Pagination.Limit))
	poolStore := prefix.NewStore(qs.Keeper.getStore(goCtx), PoolKeyPrefix)

	pageRes, err := query.Paginate(poolStore, req.Pagination, func(key []byte, value []byte) error {
		var pool types.Pool
		if err := json.Unmarshal(value, &pool); err != nil {
			return fmt.Errorf("unmarshal pool: %w", err)
		}
		pools = append(pools, pool)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Pools: paginate: %w", err)
	}

	return &types.QueryPoolsResponse{
		Pools:      pools,
		Pagination: pageRes,
	}, nil
}

// Liquidity returns a provider's share position and its redemption value.
func (qs queryServer) Liquidity(goCtx context.Context, req *types.QueryLiquidityRequest) (*types.QueryLiquidityResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pair, err := types.NewPair(req.TokenA, req.TokenB)
	if err != nil {
		return nil, err
	}
	provider, err := sdk.AccAddressFromBech32(req.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid provider address: %v", err)
	}

	shares := qs.Keeper.GetShares(goCtx, pair, provider)
	amountA, amountB := math.ZeroInt(), math.ZeroInt()

	pool := qs.Keeper.GetPool(goCtx, pair)
	if shares.IsPositive() && !pool.IsEmpty() {
		if amountA, err = SafeMulDiv(shares, pool.ReserveA, pool.TotalShares); err != nil {
			return nil, err
		}
		if amountB, err = SafeMulDiv(shares, pool.ReserveB, pool.TotalShares); err != nil {
			return nil, err
		}
	}

	return &types.QueryLiquidityResponse{
		Shares:  shares,
		AmountA: amountA,
		AmountB: amountB,
	}, nil
}

// TotalShares returns the outstanding share supply of a pool.
func (qs queryServer) TotalShares(goCtx context.Context, req *types.QueryTotalSharesRequest) (*types.QueryTotalSharesResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pair, err := types.NewPair(req.TokenA, req.TokenB)
	if err != nil {
		return nil, err
	}

	return &types.QueryTotalSharesResponse{
		TotalShares: qs.Keeper.GetPool(goCtx, pair).TotalShares,
	}, nil
}

// Quote simulates a swap along a route without executing it.
func (qs queryServer) Quote(goCtx context.Context, req *types.QueryQuoteRequest) (*types.QueryQuoteResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	amounts, err := qs.Keeper.Quote(ctx, req.AmountIn, req.Path)
	if err != nil {
		return nil, err
	}

	return &types.QueryQuoteResponse{Amounts: amounts}, nil
}

// Price returns the spot price of base denominated in quote, scaled by 10^18.
func (qs queryServer) Price(goCtx context.Context, req *types.QueryPriceRequest) (*types.QueryPriceResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	price, err := qs.Keeper.Price(ctx, req.Base, req.Quote)
	if err != nil {
		return nil, err
	}

	return &types.QueryPriceResponse{Price: price}, nil
}
