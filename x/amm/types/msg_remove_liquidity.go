package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgRemoveLiquidity{}

// MsgRemoveLiquidity burns liquidity shares and withdraws the pro-rata
// portion of both reserves. Withdrawal amounts round down; the message is
// rejected if either leg falls below its minimum.
type MsgRemoveLiquidity struct {
	Provider  string   `json:"provider"`
	TokenA    string   `json:"token_a"`
	TokenB    string   `json:"token_b"`
	Shares    math.Int `json:"shares"`
	MinA      math.Int `json:"min_a"`
	MinB      math.Int `json:"min_b"`
	Recipient string   `json:"recipient,omitempty"`
	Deadline  int64    `json:"deadline"`
}

// NewMsgRemoveLiquidity creates a new MsgRemoveLiquidity instance.
func NewMsgRemoveLiquidity(provider, tokenA, tokenB string, shares, minA, minB math.Int, recipient string, deadline int64) *MsgRemoveLiquidity {
	return &MsgRemoveLiquidity{
		Provider:  provider,
		TokenA:    tokenA,
		TokenB:    tokenB,
		Shares:    shares,
		MinA:      minA,
		MinB:      minB,
		Recipient: recipient,
		Deadline:  deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Type() string {
	return "remove_liquidity"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	if msg.Recipient != "" {
		if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
		}
	}

	if _, err := NewPair(msg.TokenA, msg.TokenB); err != nil {
		return err
	}

	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return sdkerrors.Wrap(ErrInsufficientShares, "shares must be positive")
	}
	if msg.MinA.IsNil() || msg.MinA.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum amount A cannot be negative")
	}
	if msg.MinB.IsNil() || msg.MinB.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum amount B cannot be negative")
	}

	if msg.Deadline <= 0 {
		return sdkerrors.Wrap(ErrInvalidAmount, "deadline must be a positive unix timestamp")
	}

	return nil
}
