package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgAddLiquidity{}

// MsgAddLiquidity deposits both assets of a pair into its pool in exchange
// for liquidity shares. The desired amounts are upper bounds; the keeper
// scales the deposit to the current reserve ratio and rejects the message if
// either leg would fall below its minimum.
type MsgAddLiquidity struct {
	Provider  string   `json:"provider"`
	TokenA    string   `json:"token_a"`
	TokenB    string   `json:"token_b"`
	DesiredA  math.Int `json:"desired_a"`
	DesiredB  math.Int `json:"desired_b"`
	MinA      math.Int `json:"min_a"`
	MinB      math.Int `json:"min_b"`
	Recipient string   `json:"recipient,omitempty"`
	Deadline  int64    `json:"deadline"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance.
func NewMsgAddLiquidity(provider, tokenA, tokenB string, desiredA, desiredB, minA, minB math.Int, recipient string, deadline int64) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider:  provider,
		TokenA:    tokenA,
		TokenB:    tokenB,
		DesiredA:  desiredA,
		DesiredB:  desiredB,
		MinA:      minA,
		MinB:      minB,
		Recipient: recipient,
		Deadline:  deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgAddLiquidity) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgAddLiquidity) Type() string {
	return "add_liquidity"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAddLiquidity) ValidateBasic() error {
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

	if msg.DesiredA.IsNil() || !msg.DesiredA.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "desired amount A must be positive")
	}
	if msg.DesiredB.IsNil() || !msg.DesiredB.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "desired amount B must be positive")
	}
	if msg.MinA.IsNil() || msg.MinA.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum amount A cannot be negative")
	}
	if msg.MinB.IsNil() || msg.MinB.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum amount B cannot be negative")
	}
	if msg.MinA.GT(msg.DesiredA) || msg.MinB.GT(msg.DesiredB) {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum amounts cannot exceed desired amounts")
	}

	if msg.Deadline <= 0 {
		return sdkerrors.Wrap(ErrInvalidAmount, "deadline must be a positive unix timestamp")
	}

	return nil
}
