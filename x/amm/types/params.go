package types

import (
	"fmt"
)

// Default parameter values.
const (
	DefaultSwapFeeNumerator   uint64 = 3
	DefaultSwapFeeDenominator uint64 = 1000
	DefaultMaxPathLength      uint64 = 5
)

// Params defines the module parameters. The swap fee is expressed as the
// integer fraction numerator/denominator and is charged on every hop's input
// amount before the constant-product output is computed.
type Params struct {
	SwapFeeNumerator   uint64 `json:"swap_fee_numerator"`
	SwapFeeDenominator uint64 `json:"swap_fee_denominator"`
	MaxPathLength      uint64 `json:"max_path_length"`
}

// NewParams creates a Params object from the given values.
func NewParams(feeNum, feeDen, maxPathLen uint64) Params {
	return Params{
		SwapFeeNumerator:   feeNum,
		SwapFeeDenominator: feeDen,
		MaxPathLength:      maxPathLen,
	}
}

// DefaultParams returns the default module parameters: a 0.3% swap fee and a
// maximum route length of five denoms.
func DefaultParams() Params {
	return NewParams(DefaultSwapFeeNumerator, DefaultSwapFeeDenominator, DefaultMaxPathLength)
}

// Validate checks the parameter set for internal consistency.
func (p Params) Validate() error {
	if p.SwapFeeDenominator == 0 {
		return fmt.Errorf("swap fee denominator must be positive")
	}
	if p.SwapFeeNumerator >= p.SwapFeeDenominator {
		return fmt.Errorf("swap fee %d/%d must be below one", p.SwapFeeNumerator, p.SwapFeeDenominator)
	}
	if p.MaxPathLength < 2 {
		return fmt.Errorf("max path length must allow at least one hop, got %d", p.MaxPathLength)
	}
	return nil
}
