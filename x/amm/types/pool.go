package types

import (
	"cosmossdk.io/math"
)

// Pool holds the reserve state for one canonical asset pair. ReserveA is the
// reserve of the lexicographically smaller denom, ReserveB of the larger one.
// A pool is implicitly created at the zero state the first time its pair is
// referenced and is never destroyed; a fully drained pool can be reseeded by
// a later deposit.
type Pool struct {
	Pair        Pair     `json:"pair"`
	ReserveA    math.Int `json:"reserve_a"`
	ReserveB    math.Int `json:"reserve_b"`
	TotalShares math.Int `json:"total_shares"`
}

// NewPool returns the implicit empty pool for a pair.
func NewPool(pair Pair) Pool {
	return Pool{
		Pair:        pair,
		ReserveA:    math.ZeroInt(),
		ReserveB:    math.ZeroInt(),
		TotalShares: math.ZeroInt(),
	}
}

// IsEmpty reports whether the pool holds no liquidity.
func (p Pool) IsEmpty() bool {
	return p.TotalShares.IsZero()
}

// Validate enforces the pool state invariant: reserves and share supply are
// non-negative, and both reserves are zero exactly when the share supply is
// zero. Asymmetric draining to zero is never a legal state.
func (p Pool) Validate() error {
	if err := p.Pair.Validate(); err != nil {
		return err
	}
	if p.ReserveA.IsNil() || p.ReserveB.IsNil() || p.TotalShares.IsNil() {
		return ErrInvalidPoolState.Wrap("nil pool field")
	}
	if p.ReserveA.IsNegative() || p.ReserveB.IsNegative() || p.TotalShares.IsNegative() {
		return ErrInvalidPoolState.Wrapf("negative pool state for %s", p.Pair)
	}
	if p.TotalShares.IsZero() {
		if !p.ReserveA.IsZero() || !p.ReserveB.IsZero() {
			return ErrInvalidPoolState.Wrapf("pool %s has reserves but zero shares", p.Pair)
		}
		return nil
	}
	if p.ReserveA.IsZero() || p.ReserveB.IsZero() {
		return ErrInvalidPoolState.Wrapf("pool %s has shares but a zero reserve", p.Pair)
	}
	return nil
}

// ReservesFor returns the pool reserves oriented so that the first return
// value is the reserve of denomIn and the second the reserve of the
// counterpart denom. denomIn must be one of the pair's denoms.
func (p Pool) ReservesFor(denomIn string) (reserveIn, reserveOut math.Int) {
	if denomIn == p.Pair.TokenA {
		return p.ReserveA, p.ReserveB
	}
	return p.ReserveB, p.ReserveA
}
