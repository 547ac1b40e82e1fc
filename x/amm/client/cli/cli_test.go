package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func firstWord(use string) string {
	for i, c := range use {
		if c == ' ' || c == '[' {
			return use[:i]
		}
	}
	return use
}

// TestGetQueryCmdStructure verifies the query command tree structure
func TestGetQueryCmdStructure(t *testing.T) {
	t.Parallel()

	queryCmd := GetQueryCmd()

	require.NotNil(t, queryCmd)
	require.Equal(t, "amm", queryCmd.Use)
	require.True(t, queryCmd.DisableFlagParsing)

	commandNames := make(map[string]bool)
	for _, cmd := range queryCmd.Commands() {
		commandNames[firstWord(cmd.Use)] = true
	}

	expected := []string{
		"params",
		"pool",
		"pools",
		"liquidity",
		"total-shares",
		"quote",
		"price",
	}
	for _, name := range expected {
		require.True(t, commandNames[name], "expected command %q not found", name)
	}
}

// TestGetTxCmdStructure verifies the transaction command tree structure
func TestGetTxCmdStructure(t *testing.T) {
	t.Parallel()

	txCmd := GetTxCmd()

	require.NotNil(t, txCmd)
	require.Equal(t, "amm", txCmd.Use)

	commandNames := make(map[string]bool)
	for _, cmd := range txCmd.Commands() {
		commandNames[firstWord(cmd.Use)] = true
	}

	expected := []string{
		"add-liquidity",
		"remove-liquidity",
		"swap-exact-in",
	}
	for _, name := range expected {
		require.True(t, commandNames[name], "expected command %q not found", name)
	}
}

// TestCmdArgCounts verifies the Args validators on leaf commands
func TestCmdArgCounts(t *testing.T) {
	t.Parallel()

	params := GetCmdQueryParams()
	require.NoError(t, params.Args(params, []string{}))
	require.Error(t, params.Args(params, []string{"extra"}))

	pool := GetCmdQueryPool()
	require.NoError(t, pool.Args(pool, []string{"uatom", "uusdt"}))
	require.Error(t, pool.Args(pool, []string{"uatom"}))

	liquidity := GetCmdQueryLiquidity()
	require.NoError(t, liquidity.Args(liquidity, []string{"uatom", "uusdt", "helix1addr"}))
	require.Error(t, liquidity.Args(liquidity, []string{"uatom", "uusdt"}))

	quote := GetCmdQueryQuote()
	require.NoError(t, quote.Args(quote, []string{"1000", "uatom", "uusdt"}))
	require.NoError(t, quote.Args(quote, []string{"1000", "uatom", "uosmo", "uusdt"}))
	require.Error(t, quote.Args(quote, []string{"1000", "uatom"}))

	swap := CmdSwapExactIn()
	require.NoError(t, swap.Args(swap, []string{"1000", "uatom", "uusdt"}))
	require.Error(t, swap.Args(swap, []string{"1000", "uatom"}))

	add := CmdAddLiquidity()
	require.NoError(t, add.Args(add, []string{"uatom", "1000", "uusdt", "2000"}))
	require.Error(t, add.Args(add, []string{"uatom", "1000", "uusdt"}))

	remove := CmdRemoveLiquidity()
	require.NoError(t, remove.Args(remove, []string{"uatom", "uusdt", "500"}))
	require.Error(t, remove.Args(remove, []string{"uatom", "uusdt"}))
}

// TestCommandHasRunE verifies all leaf commands have a RunE function
func TestCommandHasRunE(t *testing.T) {
	t.Parallel()

	var checkRunE func(*cobra.Command)
	checkRunE = func(cmd *cobra.Command) {
		if len(cmd.Commands()) > 0 {
			for _, child := range cmd.Commands() {
				checkRunE(child)
			}
		} else {
			require.NotNil(t, cmd.RunE, "command %s has no RunE function", cmd.Use)
		}
	}

	checkRunE(GetQueryCmd())
	checkRunE(GetTxCmd())
}

// TestTxCmdFlags verifies the module flags are registered on tx commands
func TestTxCmdFlags(t *testing.T) {
	t.Parallel()

	add := CmdAddLiquidity()
	for _, name := range []string{FlagMinA, FlagMinB, FlagRecipient, FlagDeadline} {
		require.NotNil(t, add.Flags().Lookup(name), "flag %s should be present", name)
	}

	swap := CmdSwapExactIn()
	for _, name := range []string{FlagMinAmountOut, FlagRecipient, FlagDeadline} {
		require.NotNil(t, swap.Flags().Lookup(name), "flag %s should be present", name)
	}
}
