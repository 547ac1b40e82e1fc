package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSwapExactIn{}

// MsgSwapExactIn trades an exact input amount of Path[0] for as much of the
// final path denom as the route yields. Each adjacent denom pair in Path is
// one hop through that pair's pool. Only the final output is checked against
// MinAmountOut.
type MsgSwapExactIn struct {
	Trader       string   `json:"trader"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
	Path         []string `json:"path"`
	Recipient    string   `json:"recipient,omitempty"`
	Deadline     int64    `json:"deadline"`
}

// NewMsgSwapExactIn creates a new MsgSwapExactIn instance.
func NewMsgSwapExactIn(trader string, amountIn, minAmountOut math.Int, path []string, recipient string, deadline int64) *MsgSwapExactIn {
	return &MsgSwapExactIn{
		Trader:       trader,
		AmountIn:     amountIn,
		MinAmountOut: minAmountOut,
		Path:         path,
		Recipient:    recipient,
		Deadline:     deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwapExactIn) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSwapExactIn) Type() string {
	return "swap_exact_in"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapExactIn) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapExactIn) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapExactIn) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}

	if msg.Recipient != "" {
		if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
		}
	}

	if err := ValidatePath(msg.Path); err != nil {
		return err
	}

	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount in must be positive")
	}
	if msg.MinAmountOut.IsNil() || msg.MinAmountOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min amount out cannot be negative")
	}

	if msg.Deadline <= 0 {
		return sdkerrors.Wrap(ErrInvalidAmount, "deadline must be a positive unix timestamp")
	}

	return nil
}

// ValidatePath checks the structural validity of a swap route: at least two
// denoms, every denom well formed, and no hop from a denom to itself. Pool
// existence and the route length cap are checked at execution time.
func ValidatePath(path []string) error {
	if len(path) < 2 {
		return sdkerrors.Wrap(ErrInvalidRoute, "path must contain at least two denoms")
	}
	for i, denom := range path {
		if err := sdk.ValidateDenom(denom); err != nil {
			return sdkerrors.Wrapf(ErrInvalidRoute, "invalid denom at position %d: %s", i, err)
		}
		if i > 0 && denom == path[i-1] {
			return sdkerrors.Wrapf(ErrInvalidRoute, "hop %d swaps %s for itself", i, denom)
		}
	}
	return nil
}
