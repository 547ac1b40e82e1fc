package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Pair is the canonical ordered key for a pool: two distinct denoms with
// TokenA strictly less than TokenB. Every operation that touches a pool must
// resolve its denoms through NewPair so that a pair and its reverse always
// address the same pool.
type Pair struct {
	TokenA string `json:"token_a"`
	TokenB string `json:"token_b"`
}

// NewPair canonicalizes an unordered denom pair. It fails with ErrInvalidPair
// if the denoms are equal, empty, or not valid denominations.
func NewPair(denomA, denomB string) (Pair, error) {
	if denomA == "" || denomB == "" {
		return Pair{}, ErrInvalidPair.Wrap("denom cannot be empty")
	}
	if denomA == denomB {
		return Pair{}, ErrInvalidPair.Wrapf("identical denoms %s", denomA)
	}
	if err := sdk.ValidateDenom(denomA); err != nil {
		return Pair{}, ErrInvalidPair.Wrapf("invalid denom %s: %v", denomA, err)
	}
	if err := sdk.ValidateDenom(denomB); err != nil {
		return Pair{}, ErrInvalidPair.Wrapf("invalid denom %s: %v", denomB, err)
	}
	if denomA > denomB {
		denomA, denomB = denomB, denomA
	}
	return Pair{TokenA: denomA, TokenB: denomB}, nil
}

// Validate checks that the pair is canonical.
func (p Pair) Validate() error {
	canonical, err := NewPair(p.TokenA, p.TokenB)
	if err != nil {
		return err
	}
	if canonical != p {
		return ErrInvalidPair.Wrapf("pair %s/%s is not in canonical order", p.TokenA, p.TokenB)
	}
	return nil
}

// Contains reports whether denom is one of the pair's two denoms.
func (p Pair) Contains(denom string) bool {
	return denom == p.TokenA || denom == p.TokenB
}

// Other returns the counterpart denom of the given denom within the pair.
// The denom must be one of the pair's two denoms.
func (p Pair) Other(denom string) string {
	if denom == p.TokenA {
		return p.TokenB
	}
	return p.TokenA
}

func (p Pair) String() string {
	return p.TokenA + "/" + p.TokenB
}

// Key returns an unambiguous store key for the pair. Both denoms are length
// prefixed so that denoms containing separator characters (e.g. ibc/...)
// cannot collide and so that keys derived by appending a suffix never fall
// under another pair's prefix.
func (p Pair) Key() []byte {
	key := make([]byte, 0, 2+len(p.TokenA)+len(p.TokenB))
	key = append(key, byte(len(p.TokenA)))
	key = append(key, p.TokenA...)
	key = append(key, byte(len(p.TokenB)))
	key = append(key, p.TokenB...)
	return key
}
