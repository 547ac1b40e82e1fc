package types

import (
	"context"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/query"
)

// QueryServer defines the query server interface
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	Pools(context.Context, *QueryPoolsRequest) (*QueryPoolsResponse, error)
	Liquidity(context.Context, *QueryLiquidityRequest) (*QueryLiquidityResponse, error)
	TotalShares(context.Context, *QueryTotalSharesRequest) (*QueryTotalSharesResponse, error)
	Quote(context.Context, *QueryQuoteRequest) (*QueryQuoteResponse, error)
	Price(context.Context, *QueryPriceRequest) (*QueryPriceResponse, error)
}

// QueryParamsRequest requests the module parameters.
type QueryParamsRequest struct{}

// QueryParamsResponse returns the module parameters.
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryPoolRequest requests the pool for a token pair. The tokens may be
// given in either order.
type QueryPoolRequest struct {
	TokenA string `json:"token_a"`
	TokenB string `json:"token_b"`
}

// QueryPoolResponse returns the pool state in canonical order.
type QueryPoolResponse struct {
	Pool Pool `json:"pool"`
}

// QueryPoolsRequest requests all pools, paginated.
type QueryPoolsRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

// QueryPoolsResponse returns a page of pools.
type QueryPoolsResponse struct {
	Pools      []Pool              `json:"pools"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

// QueryLiquidityRequest requests one provider's share position in a pool.
type QueryLiquidityRequest struct {
	TokenA   string `json:"token_a"`
	TokenB   string `json:"token_b"`
	Provider string `json:"provider"`
}

// QueryLiquidityResponse returns the provider's shares and their current
// redemption value in both reserves.
type QueryLiquidityResponse struct {
	Shares  math.Int `json:"shares"`
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

// QueryTotalSharesRequest requests the outstanding share supply of a pool.
type QueryTotalSharesRequest struct {
	TokenA string `json:"token_a"`
	TokenB string `json:"token_b"`
}

// QueryTotalSharesResponse returns the outstanding share supply.
type QueryTotalSharesResponse struct {
	TotalShares math.Int `json:"total_shares"`
}

// QueryQuoteRequest simulates a swap of AmountIn along Path without
// executing it.
type QueryQuoteRequest struct {
	AmountIn math.Int `json:"amount_in"`
	Path     []string `json:"path"`
}

// QueryQuoteResponse returns the simulated amount at every step of the
// route. Amounts[0] is the input amount.
type QueryQuoteResponse struct {
	Amounts []math.Int `json:"amounts"`
}

// QueryPriceRequest requests the spot price of Base denominated in Quote.
type QueryPriceRequest struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
}

// QueryPriceResponse returns the spot price scaled by 10^18.
type QueryPriceResponse struct {
	Price math.Int `json:"price"`
}
