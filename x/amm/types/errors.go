package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrExpired               = errors.Register(ModuleName, 1, "deadline has passed")
	ErrInvalidPair           = errors.Register(ModuleName, 2, "invalid asset pair")
	ErrNoLiquidity           = errors.Register(ModuleName, 3, "pool has no liquidity")
	ErrInsufficientAmount    = errors.Register(ModuleName, 4, "amount below caller minimum")
	ErrZeroLiquidityMinted   = errors.Register(ModuleName, 5, "deposit too small to mint shares")
	ErrInsufficientShares    = errors.Register(ModuleName, 6, "insufficient liquidity shares")
	ErrInsufficientOutput    = errors.Register(ModuleName, 7, "output amount less than minimum required")
	ErrTransferFailed        = errors.Register(ModuleName, 8, "asset transfer failed")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 9, "insufficient liquidity in pool")
	ErrInvalidAmount         = errors.Register(ModuleName, 10, "invalid amount")
	ErrInvalidAddress        = errors.Register(ModuleName, 11, "invalid address")
	ErrInvalidRoute          = errors.Register(ModuleName, 12, "invalid swap route")
	ErrInvalidPoolState      = errors.Register(ModuleName, 13, "invalid pool state")
	ErrOverflow              = errors.Register(ModuleName, 14, "arithmetic overflow")
)
