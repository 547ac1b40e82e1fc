package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/helix-dex/helix/x/amm/keeper"
	"github.com/helix-dex/helix/x/amm/types"
)

func TestIsqrt(t *testing.T) {
	tests := []struct {
		in   int64
		want int64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{99, 9},
		{100, 10},
		{4_000_000_000_000, 2_000_000},
	}

	for _, tt := range tests {
		got, err := keeper.Isqrt(math.NewInt(tt.in))
		require.NoError(t, err)
		require.Equal(t, math.NewInt(tt.want), got, "isqrt(%d)", tt.in)
	}

	_, err := keeper.Isqrt(math.NewInt(-1))
	require.ErrorIs(t, err, types.ErrOverflow)
}

func TestIsqrt_FloorProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := math.NewInt(rapid.Int64Range(0, 1<<62).Draw(rt, "v"))
		root, err := keeper.Isqrt(v)
		require.NoError(rt, err)
		require.True(rt, root.Mul(root).LTE(v))
		next := root.AddRaw(1)
		require.True(rt, next.Mul(next).GT(v))
	})
}

func TestSafeSub_Underflow(t *testing.T) {
	_, err := keeper.SafeSub(math.NewInt(1), math.NewInt(2))
	require.ErrorIs(t, err, types.ErrOverflow)

	got, err := keeper.SafeSub(math.NewInt(5), math.NewInt(2))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(3), got)
}

func TestSafeMulDiv(t *testing.T) {
	// Multiply-before-divide keeps precision: 5*3/15 = 1 exactly, whereas
	// (5/15)*3 would truncate to zero.
	got, err := keeper.SafeMulDiv(math.NewInt(5), math.NewInt(3), math.NewInt(15))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1), got)

	// Truncation happens only on the final division.
	got, err = keeper.SafeMulDiv(math.NewInt(7), math.NewInt(3), math.NewInt(10))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(2), got)

	_, err = keeper.SafeMulDiv(math.NewInt(1), math.NewInt(1), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrOverflow)
}

func TestSafeMul_OverflowBound(t *testing.T) {
	big := math.NewIntWithDecimal(1, 40) // 10^40
	_, err := keeper.SafeMul(big, big)   // 10^80 > 2^256
	require.ErrorIs(t, err, types.ErrOverflow)

	got, err := keeper.SafeMul(math.NewInt(1 << 30), math.NewInt(1 << 30))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1<<60), got)
}

func TestSafeQuo_Truncates(t *testing.T) {
	got, err := keeper.SafeQuo(math.NewInt(7), math.NewInt(2))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(3), got)

	_, err = keeper.SafeQuo(math.NewInt(7), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrOverflow)
}
