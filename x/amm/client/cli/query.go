package cli

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/helix-dex/helix/x/amm/types"
)

// GetQueryCmd returns the cli query commands for the amm module
func GetQueryCmd() *cobra.Command {
	ammQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the amm module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryPool(),
		GetCmdQueryPools(),
		GetCmdQueryLiquidity(),
		GetCmdQueryTotalShares(),
		GetCmdQueryQuote(),
		GetCmdQueryPrice(),
	)

	return ammQueryCmd
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current amm module parameters",
		Long: `Query the current parameters of the amm module including the swap fee.

Example:
  $ helixd query amm params`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Params(context.Background(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPool returns the command to query a pool by token pair
func GetCmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [token-a] [token-b]",
		Short: "Query the liquidity pool for a token pair",
		Long: `Query the pool for a token pair. Order doesn't matter; reserves are
reported in canonical order.

Example:
  $ helixd query amm pool uatom uusdt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Pool(context.Background(), &types.QueryPoolRequest{
				TokenA: args[0],
				TokenB: args[1],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPools returns the command to query all pools
func GetCmdQueryPools() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "Query all liquidity pools",
		Long: `Query all liquidity pools with pagination support.

Example:
  $ helixd query amm pools
  $ helixd query amm pools --limit 10 --offset 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			pageReq, err := client.ReadPageRequest(cmd.Flags())
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Pools(context.Background(), &types.QueryPoolsRequest{
				Pagination: pageReq,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	flags.AddPaginationFlagsToCmd(cmd, "pools")
	return cmd
}

// GetCmdQueryLiquidity returns the command to query a provider's position
func GetCmdQueryLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liquidity [token-a] [token-b] [provider]",
		Short: "Query a provider's liquidity in a pool",
		Long: `Query a provider's share balance in a pool and its current redemption
value in both tokens.

Example:
  $ helixd query amm liquidity uatom uusdt helix1abcdef...`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Liquidity(context.Background(), &types.QueryLiquidityRequest{
				TokenA:   args[0],
				TokenB:   args[1],
				Provider: args[2],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryTotalShares returns the command to query a pool's share supply
func GetCmdQueryTotalShares() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "total-shares [token-a] [token-b]",
		Short: "Query the outstanding liquidity shares of a pool",
		Long: `Query the total liquidity shares outstanding for a pool.

Example:
  $ helixd query amm total-shares uatom uusdt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.TotalShares(context.Background(), &types.QueryTotalSharesRequest{
				TokenA: args[0],
				TokenB: args[1],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryQuote returns the command to simulate a swap
func GetCmdQueryQuote() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote [amount-in] [denom...]",
		Short: "Simulate a swap along a route without executing it",
		Long: `Simulate a swap of the given input amount along a route of denoms and
report the amount at every hop, fees included.

Example:
  $ helixd query amm quote 1000000 uatom uusdt
  $ helixd query amm quote 1000000 uatom uosmo uusdt`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			amountIn, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid amount-in: %s (must be integer)", args[0])
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Quote(context.Background(), &types.QueryQuoteRequest{
				AmountIn: amountIn,
				Path:     args[1:],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPrice returns the command to query a pool's spot price
func GetCmdQueryPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price [base] [quote]",
		Short: "Query the spot price of base denominated in quote",
		Long: `Query the spot price of the base denom in units of the quote denom,
scaled by 10^18.

Example:
  $ helixd query amm price uatom uusdt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Price(context.Background(), &types.QueryPriceRequest{
				Base:  args[0],
				Quote: args[1],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
