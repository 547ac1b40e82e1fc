package cli

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/helix-dex/helix/x/amm/types"
)

// defaultDeadlineOffset is applied when --deadline is not given.
const defaultDeadlineOffset = 10 * time.Minute

// GetTxCmd returns the transaction commands for the amm module
func GetTxCmd() *cobra.Command {
	ammTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "AMM transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammTxCmd.AddCommand(
		CmdAddLiquidity(),
		CmdRemoveLiquidity(),
		CmdSwapExactIn(),
	)

	return ammTxCmd
}

// resolveDeadline reads the --deadline flag. It accepts a duration from now
// ("5m") or an absolute unix timestamp, falling back to the default offset
// when unset.
func resolveDeadline(cmd *cobra.Command) (int64, error) {
	raw, err := cmd.Flags().GetString(FlagDeadline)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return time.Now().Add(defaultDeadlineOffset).Unix(), nil
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return time.Now().Add(d).Unix(), nil
	}
	ts, err := cast.ToInt64E(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid deadline: %s (must be a duration or unix timestamp)", raw)
	}
	return ts, nil
}

// CmdAddLiquidity returns a CLI command handler for adding liquidity to a pool
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [token-a] [desired-a] [token-b] [desired-b]",
		Short: "Add liquidity to a pool, creating it if needed",
		Long: `Deposit both tokens into the pool for the pair. The first deposit seeds
the pool at the given ratio; later deposits are scaled down to match the
current reserve ratio, never exceeding the desired amounts.

Use --min-a and --min-b to bound how far the ratio matching may reduce
each deposit.

Example:
  $ helixd tx amm add-liquidity uatom 1000000 uusdt 2000000 --from mykey
  $ helixd tx amm add-liquidity uatom 1000000 uusdt 2000000 --min-a 990000 --min-b 1980000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			tokenA := args[0]
			tokenB := args[2]

			if tokenA == tokenB {
				return fmt.Errorf("tokens must be different")
			}

			desiredA, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid desired-a: %s (must be integer)", args[1])
			}

			desiredB, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid desired-b: %s (must be integer)", args[3])
			}

			minA, minB, err := readMinFlags(cmd)
			if err != nil {
				return err
			}

			recipient, err := cmd.Flags().GetString(FlagRecipient)
			if err != nil {
				return err
			}

			deadline, err := resolveDeadline(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgAddLiquidity{
				Provider:  clientCtx.GetFromAddress().String(),
				TokenA:    tokenA,
				TokenB:    tokenB,
				DesiredA:  desiredA,
				DesiredB:  desiredB,
				MinA:      minA,
				MinB:      minB,
				Recipient: recipient,
				Deadline:  deadline,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	addLiquidityFlags(cmd.Flags())
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveLiquidity returns a CLI command handler for removing liquidity from a pool
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [token-a] [token-b] [shares]",
		Short: "Remove liquidity from a pool",
		Long: `Burn liquidity shares and withdraw both tokens pro rata from the pool.

Use --min-a and --min-b to abort if the withdrawal falls short.

Example:
  $ helixd tx amm remove-liquidity uatom uusdt 1000000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			shares, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid shares: %s (must be integer)", args[2])
			}

			minA, minB, err := readMinFlags(cmd)
			if err != nil {
				return err
			}

			recipient, err := cmd.Flags().GetString(FlagRecipient)
			if err != nil {
				return err
			}

			deadline, err := resolveDeadline(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgRemoveLiquidity{
				Provider:  clientCtx.GetFromAddress().String(),
				TokenA:    args[0],
				TokenB:    args[1],
				Shares:    shares,
				MinA:      minA,
				MinB:      minB,
				Recipient: recipient,
				Deadline:  deadline,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	addLiquidityFlags(cmd.Flags())
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwapExactIn returns a CLI command handler for swapping a fixed input amount
func CmdSwapExactIn() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-exact-in [amount-in] [denom...]",
		Short: "Swap a fixed input amount along a route of denoms",
		Long: `Swap a fixed input amount of the first denom in the route for the last,
hopping through each intermediate pool.

The --min-amount-out flag protects against slippage: the transaction fails
if the final output is less than the minimum. Use the quote query to
estimate the output first.

Examples:
  $ helixd tx amm swap-exact-in 1000000 uatom uusdt --min-amount-out 1900000 --from mykey
  $ helixd tx amm swap-exact-in 1000000 uatom uosmo uusdt --min-amount-out 1800000 --from mykey`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountIn, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid amount-in: %s (must be integer)", args[0])
			}

			minAmountOut := math.ZeroInt()
			if s, err := cmd.Flags().GetString(FlagMinAmountOut); err != nil {
				return err
			} else if s != "" {
				minAmountOut, ok = math.NewIntFromString(s)
				if !ok {
					return fmt.Errorf("invalid min-amount-out: %s (must be integer)", s)
				}
			}

			recipient, err := cmd.Flags().GetString(FlagRecipient)
			if err != nil {
				return err
			}

			deadline, err := resolveDeadline(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgSwapExactIn{
				Trader:       clientCtx.GetFromAddress().String(),
				AmountIn:     amountIn,
				MinAmountOut: minAmountOut,
				Path:         args[1:],
				Recipient:    recipient,
				Deadline:     deadline,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagMinAmountOut, "", "minimum acceptable output amount")
	cmd.Flags().String(FlagRecipient, "", "address receiving the output (defaults to the signer)")
	cmd.Flags().String(FlagDeadline, "", "duration or unix timestamp after which the tx fails (defaults to 10m)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func addLiquidityFlags(fs *pflag.FlagSet) {
	fs.String(FlagMinA, "0", "minimum acceptable amount of token-a")
	fs.String(FlagMinB, "0", "minimum acceptable amount of token-b")
	fs.String(FlagRecipient, "", "address credited or paid out (defaults to the signer)")
	fs.String(FlagDeadline, "", "duration or unix timestamp after which the tx fails (defaults to 10m)")
}

func readMinFlags(cmd *cobra.Command) (math.Int, math.Int, error) {
	rawA, err := cmd.Flags().GetString(FlagMinA)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	minA, ok := math.NewIntFromString(rawA)
	if !ok {
		return math.Int{}, math.Int{}, fmt.Errorf("invalid min-a: %s (must be integer)", rawA)
	}

	rawB, err := cmd.Flags().GetString(FlagMinB)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	minB, ok := math.NewIntFromString(rawB)
	if !ok {
		return math.Int{}, math.Int{}, fmt.Errorf("invalid min-b: %s (must be integer)", rawB)
	}

	return minA, minB, nil
}
