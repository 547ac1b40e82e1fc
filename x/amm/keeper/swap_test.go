package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	testkeeper "github.com/helix-dex/helix/testutil/keeper"
	"github.com/helix-dex/helix/x/amm/keeper"
	"github.com/helix-dex/helix/x/amm/types"
)

func TestGetAmountOut(t *testing.T) {
	params := types.DefaultParams()

	tests := []struct {
		name      string
		amountIn  int64
		reserveIn int64
		reserveOu int64
		want      int64
	}{
		// out = (in*997*rOut) / (rIn*1000 + in*997)
		{"balanced pool", 100, 1000, 1000, 90},
		{"deep pool", 1_000, 10_000, 10_000, 906},
		{"tiny input truncates to zero", 1, 1_000_000, 1_000_000, 0},
		{"skewed reserves", 100_000, 1_000_000, 4_000_000, 362_644},
		{"large input bounded by reserve", 1_000_000, 1_000, 1_000, 998},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := keeper.GetAmountOut(params,
				math.NewInt(tt.amountIn), math.NewInt(tt.reserveIn), math.NewInt(tt.reserveOu))
			require.NoError(t, err)
			require.Equal(t, math.NewInt(tt.want), out)
		})
	}
}

func TestGetAmountOut_Errors(t *testing.T) {
	params := types.DefaultParams()

	_, err := keeper.GetAmountOut(params, math.ZeroInt(), math.NewInt(1000), math.NewInt(1000))
	require.ErrorIs(t, err, types.ErrInsufficientAmount)

	_, err = keeper.GetAmountOut(params, math.NewInt(100), math.ZeroInt(), math.NewInt(1000))
	require.ErrorIs(t, err, types.ErrNoLiquidity)

	_, err = keeper.GetAmountOut(params, math.NewInt(100), math.NewInt(1000), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrNoLiquidity)
}

func seedPool(t *testing.T, k *keeper.Keeper, bank *testkeeper.MockBankKeeper, ctx sdk.Context, denomA, denomB string, a, b int64) {
	t.Helper()
	coins := sdk.NewCoins(sdk.NewInt64Coin(denomA, a), sdk.NewInt64Coin(denomB, b))
	bank.Fund(alice, coins)
	_, _, _, err := k.AddLiquidity(
		ctx, alice, alice, denomA, denomB,
		math.NewInt(a), math.NewInt(b),
		math.ZeroInt(), math.ZeroInt(),
	)
	require.NoError(t, err)
}

func TestSwapExactIn_SingleHop(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	seedPool(t, k, bank, ctx, "uatom", "uusdt", 1_000, 1_000)
	bank.Fund(bob, sdk.NewCoins(sdk.NewInt64Coin("uatom", 100)))

	amounts, err := k.SwapExactIn(ctx, bob, bob,
		math.NewInt(100), math.NewInt(90), []string{"uatom", "uusdt"})
	require.NoError(t, err)
	require.Len(t, amounts, 2)
	require.Equal(t, math.NewInt(100), amounts[0])
	require.Equal(t, math.NewInt(90), amounts[1])

	require.Equal(t, math.NewInt(90), bank.Balance(bob).AmountOf("uusdt"))
	require.True(t, bank.Balance(bob).AmountOf("uatom").IsZero())

	pair, _ := types.NewPair("uatom", "uusdt")
	pool := k.GetPool(ctx, pair)
	require.Equal(t, math.NewInt(1_100), pool.ReserveA)
	require.Equal(t, math.NewInt(910), pool.ReserveB)
}

func TestSwapExactIn_MultiHop(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	seedPool(t, k, bank, ctx, "uatom", "uusdt", 10_000, 10_000)
	seedPool(t, k, bank, ctx, "uusdt", "uosmo", 10_000, 10_000)
	bank.Fund(bob, sdk.NewCoins(sdk.NewInt64Coin("uatom", 1_000)))

	amounts, err := k.SwapExactIn(ctx, bob, bob,
		math.NewInt(1_000), math.ZeroInt(), []string{"uatom", "uusdt", "uosmo"})
	require.NoError(t, err)
	require.Len(t, amounts, 3)
	require.Equal(t, math.NewInt(1_000), amounts[0])
	require.Equal(t, math.NewInt(906), amounts[1])

	// Second hop: (906*997*10000) / (10000*1000 + 906*997) = 828.
	require.Equal(t, math.NewInt(828), amounts[2])

	// Only the route ends touch the trader's balance.
	require.Equal(t, math.NewInt(828), bank.Balance(bob).AmountOf("uosmo"))
	require.True(t, bank.Balance(bob).AmountOf("uusdt").IsZero())

	// The middle denom stayed inside the module: first pool gained what the
	// second pool gave up.
	pairIn, _ := types.NewPair("uatom", "uusdt")
	pairOut, _ := types.NewPair("uosmo", "uusdt")
	require.Equal(t, math.NewInt(9_094), k.GetPool(ctx, pairIn).ReserveB)
	require.Equal(t, math.NewInt(10_906), k.GetPool(ctx, pairOut).ReserveB)
}

func TestSwapExactIn_SlippageGuard(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	seedPool(t, k, bank, ctx, "uatom", "uusdt", 1_000, 1_000)
	bank.Fund(bob, sdk.NewCoins(sdk.NewInt64Coin("uatom", 100)))

	_, err := k.SwapExactIn(ctx, bob, bob,
		math.NewInt(100), math.NewInt(91), []string{"uatom", "uusdt"})
	require.ErrorIs(t, err, types.ErrInsufficientOutput)

	// Nothing moved.
	require.Equal(t, math.NewInt(100), bank.Balance(bob).AmountOf("uatom"))
	pair, _ := types.NewPair("uatom", "uusdt")
	require.Equal(t, math.NewInt(1_000), k.GetPool(ctx, pair).ReserveA)
}

func TestSwapExactIn_RouteErrors(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	seedPool(t, k, bank, ctx, "uatom", "uusdt", 1_000, 1_000)
	bank.Fund(bob, sdk.NewCoins(sdk.NewInt64Coin("uatom", 100)))

	// Unfunded pool on the route.
	_, err := k.SwapExactIn(ctx, bob, bob,
		math.NewInt(100), math.ZeroInt(), []string{"uatom", "uosmo"})
	require.ErrorIs(t, err, types.ErrNoLiquidity)

	// Route longer than the parameter cap.
	_, err = k.SwapExactIn(ctx, bob, bob,
		math.NewInt(100), math.ZeroInt(),
		[]string{"uatom", "uusdt", "uatom", "uusdt", "uatom", "uusdt"})
	require.ErrorIs(t, err, types.ErrInvalidRoute)

	// Structurally invalid route.
	_, err = k.SwapExactIn(ctx, bob, bob,
		math.NewInt(100), math.ZeroInt(), []string{"uatom"})
	require.ErrorIs(t, err, types.ErrInvalidRoute)
}

func TestQuote_MatchesExecution(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	seedPool(t, k, bank, ctx, "uatom", "uusdt", 10_000, 10_000)
	seedPool(t, k, bank, ctx, "uusdt", "uosmo", 10_000, 10_000)
	bank.Fund(bob, sdk.NewCoins(sdk.NewInt64Coin("uatom", 1_000)))

	path := []string{"uatom", "uusdt", "uosmo"}
	quoted, err := k.Quote(ctx, math.NewInt(1_000), path)
	require.NoError(t, err)

	executed, err := k.SwapExactIn(ctx, bob, bob, math.NewInt(1_000), math.ZeroInt(), path)
	require.NoError(t, err)
	require.Equal(t, quoted, executed)

	// Quote does not mutate state: a second quote after the swap differs.
	requoted, err := k.Quote(ctx, math.NewInt(1_000), path)
	require.NoError(t, err)
	require.True(t, requoted[2].LT(quoted[2]))
}

func TestSwapExactIn_SlashDenomPoolsStayDistinct(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)

	// Pairs ("abc","def/ghi") and ("abc/def","ghi") share the display form
	// abc/def/ghi; the route below must still treat all three pools as
	// distinct.
	seedPool(t, k, bank, ctx, "abc", "def/ghi", 10_000, 10_000)
	seedPool(t, k, bank, ctx, "abc/def", "def/ghi", 10_000, 10_000)
	seedPool(t, k, bank, ctx, "abc/def", "ghi", 10_000, 10_000)
	bank.Fund(bob, sdk.NewCoins(sdk.NewInt64Coin("abc", 1_000)))

	path := []string{"abc", "def/ghi", "abc/def", "ghi"}

	// The multi-hop quote must equal the composition of single-hop quotes
	// against untouched pools.
	quoted, err := k.Quote(ctx, math.NewInt(1_000), path)
	require.NoError(t, err)
	expected := math.NewInt(1_000)
	for i := 0; i < len(path)-1; i++ {
		hop, err := k.Quote(ctx, expected, path[i:i+2])
		require.NoError(t, err)
		expected = hop[1]
		require.Equal(t, expected, quoted[i+1])
	}

	amounts, err := k.SwapExactIn(ctx, bob, bob, math.NewInt(1_000), math.ZeroInt(), path)
	require.NoError(t, err)
	require.Equal(t,
		[]math.Int{math.NewInt(1_000), math.NewInt(906), math.NewInt(828), math.NewInt(762)},
		amounts)
	require.Equal(t, math.NewInt(762), bank.Balance(bob).AmountOf("ghi"))

	// Each pool carries exactly its own hop's deltas.
	pair1, _ := types.NewPair("abc", "def/ghi")
	pool1 := k.GetPool(ctx, pair1)
	require.Equal(t, math.NewInt(11_000), pool1.ReserveA)
	require.Equal(t, math.NewInt(9_094), pool1.ReserveB)

	pair2, _ := types.NewPair("abc/def", "def/ghi")
	pool2 := k.GetPool(ctx, pair2)
	require.Equal(t, math.NewInt(9_172), pool2.ReserveA)
	require.Equal(t, math.NewInt(10_906), pool2.ReserveB)

	pair3, _ := types.NewPair("abc/def", "ghi")
	pool3 := k.GetPool(ctx, pair3)
	require.Equal(t, math.NewInt(10_828), pool3.ReserveA)
	require.Equal(t, math.NewInt(9_238), pool3.ReserveB)

	// Reserves never exceed the module's holdings of each denom.
	for _, denom := range []string{"abc", "def/ghi", "abc/def", "ghi"} {
		total := math.ZeroInt()
		for _, pool := range k.GetAllPools(ctx) {
			if pool.Pair.TokenA == denom {
				total = total.Add(pool.ReserveA)
			}
			if pool.Pair.TokenB == denom {
				total = total.Add(pool.ReserveB)
			}
		}
		require.True(t, bank.ModuleBalance(types.ModuleName).AmountOf(denom).GTE(total),
			"module balance of %s below summed reserves", denom)
	}
}

func TestSwapExactIn_PayoutFailureDiscardsBranch(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	seedPool(t, k, bank, ctx, "uatom", "uusdt", 1_000, 1_000)
	bank.Fund(bob, sdk.NewCoins(sdk.NewInt64Coin("uatom", 100)))

	// Run the swap in a store branch, as the msg handler does. The output
	// payout fails after pool state was written; discarding the branch must
	// leave the committed state untouched. Only store state is asserted:
	// the mock ledger is not store-backed.
	cacheCtx, _ := ctx.CacheContext()
	bank.FailPayouts = true

	_, err := k.SwapExactIn(cacheCtx, bob, bob,
		math.NewInt(100), math.ZeroInt(), []string{"uatom", "uusdt"})
	require.ErrorIs(t, err, types.ErrTransferFailed)

	pair, _ := types.NewPair("uatom", "uusdt")
	pool := k.GetPool(ctx, pair)
	require.Equal(t, math.NewInt(1_000), pool.ReserveA)
	require.Equal(t, math.NewInt(1_000), pool.ReserveB)
}

func TestQuote_RevisitedPoolSeesOwnHops(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	seedPool(t, k, bank, ctx, "uatom", "uusdt", 10_000, 10_000)
	seedPool(t, k, bank, ctx, "uusdt", "uosmo", 10_000, 10_000)
	seedPool(t, k, bank, ctx, "uatom", "uosmo", 10_000, 10_000)

	// The round trip uatom -> uusdt -> uosmo -> uatom must come back with
	// less than it started with; fees make the cycle strictly lossy.
	amounts, err := k.Quote(ctx, math.NewInt(1_000), []string{"uatom", "uusdt", "uosmo", "uatom"})
	require.NoError(t, err)
	require.True(t, amounts[3].LT(amounts[0]))
}

func TestPrice(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	seedPool(t, k, bank, ctx, "uatom", "uusdt", 2, 8)

	scale := math.NewIntWithDecimal(1, types.PriceDecimals)

	// 8 uusdt per 2 uatom: price of uatom in uusdt is 4.
	price, err := k.Price(ctx, "uatom", "uusdt")
	require.NoError(t, err)
	require.Equal(t, scale.MulRaw(4), price)

	// And the reciprocal: 0.25.
	price, err = k.Price(ctx, "uusdt", "uatom")
	require.NoError(t, err)
	require.Equal(t, scale.QuoRaw(4), price)

	_, err = k.Price(ctx, "uatom", "uosmo")
	require.ErrorIs(t, err, types.ErrNoLiquidity)
}

func TestSwap_ConstantProductNeverDecreases(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k, bank, ctx := testkeeper.AmmKeeper(t)

		reserveA := rapid.Int64Range(10, 1_000_000_000).Draw(rt, "reserveA")
		reserveB := rapid.Int64Range(10, 1_000_000_000).Draw(rt, "reserveB")
		amountIn := rapid.Int64Range(1, 1_000_000_000).Draw(rt, "amountIn")

		seedPool(t, k, bank, ctx, "uatom", "uusdt", reserveA, reserveB)
		bank.Fund(bob, sdk.NewCoins(sdk.NewInt64Coin("uatom", amountIn)))

		before := math.NewInt(reserveA).Mul(math.NewInt(reserveB))

		_, err := k.SwapExactIn(ctx, bob, bob,
			math.NewInt(amountIn), math.ZeroInt(), []string{"uatom", "uusdt"})
		if err != nil {
			// Only a zero-output swap may fail here; it must not move funds.
			require.ErrorIs(rt, err, types.ErrInsufficientOutput)
			require.Equal(rt, math.NewInt(amountIn), bank.Balance(bob).AmountOf("uatom"))
			return
		}

		pair, perr := types.NewPair("uatom", "uusdt")
		require.NoError(rt, perr)
		pool := k.GetPool(ctx, pair)
		after := pool.ReserveA.Mul(pool.ReserveB)
		require.True(rt, after.GTE(before), "product before %s after %s", before, after)
	})
}
