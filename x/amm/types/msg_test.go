package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/helix-dex/helix/x/amm/types"
)

var (
	testProvider  = sdk.AccAddress([]byte("provider____________")).String()
	testRecipient = sdk.AccAddress([]byte("recipient___________")).String()
)

func validAddLiquidity() types.MsgAddLiquidity {
	return *types.NewMsgAddLiquidity(
		testProvider, "uatom", "uusdt",
		math.NewInt(1_000_000), math.NewInt(4_000_000),
		math.NewInt(900_000), math.NewInt(3_600_000),
		"", 1_700_000_000,
	)
}

func TestMsgAddLiquidity_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.MsgAddLiquidity)
		wantErr error
	}{
		{"valid", func(m *types.MsgAddLiquidity) {}, nil},
		{"valid with recipient", func(m *types.MsgAddLiquidity) { m.Recipient = testRecipient }, nil},
		{"bad provider", func(m *types.MsgAddLiquidity) { m.Provider = "notanaddress" }, types.ErrInvalidAddress},
		{"bad recipient", func(m *types.MsgAddLiquidity) { m.Recipient = "notanaddress" }, types.ErrInvalidAddress},
		{"same tokens", func(m *types.MsgAddLiquidity) { m.TokenB = m.TokenA }, types.ErrInvalidPair},
		{"empty token", func(m *types.MsgAddLiquidity) { m.TokenA = "" }, types.ErrInvalidPair},
		{"zero desired A", func(m *types.MsgAddLiquidity) { m.DesiredA = math.ZeroInt() }, types.ErrInvalidAmount},
		{"negative desired B", func(m *types.MsgAddLiquidity) { m.DesiredB = math.NewInt(-5) }, types.ErrInvalidAmount},
		{"nil min A", func(m *types.MsgAddLiquidity) { m.MinA = math.Int{} }, types.ErrInvalidAmount},
		{"min exceeds desired", func(m *types.MsgAddLiquidity) { m.MinA = m.DesiredA.AddRaw(1) }, types.ErrInvalidAmount},
		{"zero deadline", func(m *types.MsgAddLiquidity) { m.Deadline = 0 }, types.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validAddLiquidity()
			tt.mutate(&msg)
			err := msg.ValidateBasic()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMsgRemoveLiquidity_ValidateBasic(t *testing.T) {
	valid := func() types.MsgRemoveLiquidity {
		return *types.NewMsgRemoveLiquidity(
			testProvider, "uatom", "uusdt",
			math.NewInt(500), math.NewInt(100), math.NewInt(400),
			"", 1_700_000_000,
		)
	}

	tests := []struct {
		name    string
		mutate  func(*types.MsgRemoveLiquidity)
		wantErr error
	}{
		{"valid", func(m *types.MsgRemoveLiquidity) {}, nil},
		{"bad provider", func(m *types.MsgRemoveLiquidity) { m.Provider = "x" }, types.ErrInvalidAddress},
		{"same tokens", func(m *types.MsgRemoveLiquidity) { m.TokenA = m.TokenB }, types.ErrInvalidPair},
		{"zero shares", func(m *types.MsgRemoveLiquidity) { m.Shares = math.ZeroInt() }, types.ErrInsufficientShares},
		{"negative min", func(m *types.MsgRemoveLiquidity) { m.MinB = math.NewInt(-1) }, types.ErrInvalidAmount},
		{"zero deadline", func(m *types.MsgRemoveLiquidity) { m.Deadline = 0 }, types.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := valid()
			tt.mutate(&msg)
			err := msg.ValidateBasic()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMsgSwapExactIn_ValidateBasic(t *testing.T) {
	valid := func() types.MsgSwapExactIn {
		return *types.NewMsgSwapExactIn(
			testProvider,
			math.NewInt(1000), math.NewInt(900),
			[]string{"uatom", "uusdt"},
			"", 1_700_000_000,
		)
	}

	tests := []struct {
		name    string
		mutate  func(*types.MsgSwapExactIn)
		wantErr error
	}{
		{"valid direct", func(m *types.MsgSwapExactIn) {}, nil},
		{"valid multihop", func(m *types.MsgSwapExactIn) { m.Path = []string{"uatom", "uusdt", "uosmo"} }, nil},
		{"valid zero min out", func(m *types.MsgSwapExactIn) { m.MinAmountOut = math.ZeroInt() }, nil},
		{"bad trader", func(m *types.MsgSwapExactIn) { m.Trader = "bad" }, types.ErrInvalidAddress},
		{"single denom path", func(m *types.MsgSwapExactIn) { m.Path = []string{"uatom"} }, types.ErrInvalidRoute},
		{"repeated hop", func(m *types.MsgSwapExactIn) { m.Path = []string{"uatom", "uatom"} }, types.ErrInvalidRoute},
		{"malformed denom", func(m *types.MsgSwapExactIn) { m.Path = []string{"uatom", "7bad!"} }, types.ErrInvalidRoute},
		{"zero amount in", func(m *types.MsgSwapExactIn) { m.AmountIn = math.ZeroInt() }, types.ErrInvalidAmount},
		{"negative min out", func(m *types.MsgSwapExactIn) { m.MinAmountOut = math.NewInt(-1) }, types.ErrInvalidAmount},
		{"zero deadline", func(m *types.MsgSwapExactIn) { m.Deadline = 0 }, types.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := valid()
			tt.mutate(&msg)
			err := msg.ValidateBasic()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMsg_GetSigners(t *testing.T) {
	add := validAddLiquidity()
	require.Equal(t, testProvider, add.GetSigners()[0].String())

	swap := types.NewMsgSwapExactIn(testProvider, math.NewInt(1), math.ZeroInt(), []string{"uatom", "uusdt"}, "", 1)
	require.Equal(t, testProvider, swap.GetSigners()[0].String())
}

func TestMsg_RouteType(t *testing.T) {
	require.Equal(t, types.RouterKey, types.MsgAddLiquidity{}.Route())
	require.Equal(t, "add_liquidity", types.MsgAddLiquidity{}.Type())
	require.Equal(t, "remove_liquidity", types.MsgRemoveLiquidity{}.Type())
	require.Equal(t, "swap_exact_in", types.MsgSwapExactIn{}.Type())
}
