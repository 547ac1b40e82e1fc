package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/helix-dex/helix/x/amm/types"
)

func TestNewPair_CanonicalOrder(t *testing.T) {
	tests := []struct {
		name  string
		in    [2]string
		wantA string
		wantB string
	}{
		{"already ordered", [2]string{"uatom", "uusdt"}, "uatom", "uusdt"},
		{"reversed", [2]string{"uusdt", "uatom"}, "uatom", "uusdt"},
		{"case sensitive byte order", [2]string{"uAtom", "uatom"}, "uAtom", "uatom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p1, err := types.NewPair(tt.in[0], tt.in[1])
			require.NoError(t, err)
			p2, err := types.NewPair(tt.in[1], tt.in[0])
			require.NoError(t, err)

			require.Equal(t, tt.wantA, p1.TokenA)
			require.Equal(t, tt.wantB, p1.TokenB)
			require.Equal(t, p1, p2, "both argument orders must yield the same pair")
		})
	}
}

func TestNewPair_Invalid(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"same denom", "uatom", "uatom"},
		{"empty first", "", "uusdt"},
		{"empty second", "uatom", ""},
		{"malformed denom", "1bad!", "uusdt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := types.NewPair(tt.a, tt.b)
			require.Error(t, err)
			require.ErrorIs(t, err, types.ErrInvalidPair)
		})
	}
}

func TestPair_Key_Unambiguous(t *testing.T) {
	// Length-prefixing TokenA keeps concatenated pairs from colliding:
	// ("ab","cd") and ("abc","d") must map to different keys.
	p1 := types.Pair{TokenA: "ab", TokenB: "cd"}
	p2 := types.Pair{TokenA: "abc", TokenB: "d"}
	require.NotEqual(t, p1.Key(), p2.Key())

	p3, err := types.NewPair("uatom", "uusdt")
	require.NoError(t, err)
	p4, err := types.NewPair("uusdt", "uatom")
	require.NoError(t, err)
	require.Equal(t, p3.Key(), p4.Key())
}

func TestPair_ContainsOther(t *testing.T) {
	p, err := types.NewPair("uatom", "uusdt")
	require.NoError(t, err)

	require.True(t, p.Contains("uatom"))
	require.True(t, p.Contains("uusdt"))
	require.False(t, p.Contains("uosmo"))

	require.Equal(t, "uusdt", p.Other("uatom"))
	require.Equal(t, "uatom", p.Other("uusdt"))
}

func TestPair_Validate(t *testing.T) {
	require.Error(t, types.Pair{TokenA: "uusdt", TokenB: "uatom"}.Validate(), "non-canonical order")
	require.Error(t, types.Pair{TokenA: "uatom", TokenB: "uatom"}.Validate(), "identical denoms")

	p, err := types.NewPair("uusdt", "uatom")
	require.NoError(t, err)
	require.NoError(t, p.Validate())
}
