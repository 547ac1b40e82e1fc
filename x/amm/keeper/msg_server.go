package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-dex/helix/x/amm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the amm MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// checkDeadline rejects a message whose deadline has passed relative to the
// current block time. A message in the block whose timestamp equals the
// deadline still executes.
func checkDeadline(ctx sdk.Context, deadline int64) error {
	if ctx.BlockTime().Unix() > deadline {
		return types.ErrExpired.Wrapf("deadline %d passed at block time %d", deadline, ctx.BlockTime().Unix())
	}
	return nil
}

// resolveRecipient defaults an empty recipient to the signer.
func resolveRecipient(signer sdk.AccAddress, recipient string) (sdk.AccAddress, error) {
	if recipient == "" {
		return signer, nil
	}
	addr, err := sdk.AccAddressFromBech32(recipient)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid recipient address: %v", err)
	}
	return addr, nil
}

// AddLiquidity handles liquidity deposits, creating the pool on first use.
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := checkDeadline(ctx, msg.Deadline); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid provider address: %v", err)
	}
	recipient, err := resolveRecipient(provider, msg.Recipient)
	if err != nil {
		return nil, err
	}

	amountA, amountB, shares, err := ms.Keeper.AddLiquidity(
		ctx, provider, recipient,
		msg.TokenA, msg.TokenB,
		msg.DesiredA, msg.DesiredB, msg.MinA, msg.MinB,
	)
	if err != nil {
		return nil, err
	}

	return &types.MsgAddLiquidityResponse{
		AmountA: amountA,
		AmountB: amountB,
		Shares:  shares,
	}, nil
}

// RemoveLiquidity handles liquidity withdrawals.
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := checkDeadline(ctx, msg.Deadline); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid provider address: %v", err)
	}
	recipient, err := resolveRecipient(provider, msg.Recipient)
	if err != nil {
		return nil, err
	}

	amountA, amountB, err := ms.Keeper.RemoveLiquidity(
		ctx, provider, recipient,
		msg.TokenA, msg.TokenB,
		msg.Shares, msg.MinA, msg.MinB,
	)
	if err != nil {
		return nil, err
	}

	return &types.MsgRemoveLiquidityResponse{
		AmountA: amountA,
		AmountB: amountB,
	}, nil
}

// SwapExactIn handles exact-input swaps along a route.
func (ms msgServer) SwapExactIn(goCtx context.Context, msg *types.MsgSwapExactIn) (*types.MsgSwapExactInResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := checkDeadline(ctx, msg.Deadline); err != nil {
		return nil, err
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid trader address: %v", err)
	}
	recipient, err := resolveRecipient(trader, msg.Recipient)
	if err != nil {
		return nil, err
	}

	amounts, err := ms.Keeper.SwapExactIn(ctx, trader, recipient, msg.AmountIn, msg.MinAmountOut, msg.Path)
	if err != nil {
		return nil, err
	}

	return &types.MsgSwapExactInResponse{Amounts: amounts}, nil
}
