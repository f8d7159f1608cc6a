package tone_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"scaleforge/internal/tone"
)

func TestReduceFoldsIntoWindow(t *testing.T) {
	cases := []struct {
		in   *big.Rat
		want *big.Rat
	}{
		{big.NewRat(3, 1), big.NewRat(3, 2)},
		{big.NewRat(1, 3), big.NewRat(4, 3)},
		{big.NewRat(9, 1), big.NewRat(9, 8)},
		{big.NewRat(1, 1), big.NewRat(2, 1)},
		{big.NewRat(2, 1), big.NewRat(2, 1)},
		{big.NewRat(5, 4), big.NewRat(5, 4)},
	}
	for _, tc := range cases {
		got := tone.ReduceOctave(tc.in)
		require.Zero(t, got.Cmp(tc.want), "reduce(%v) = %v, want %v", tc.in, got, tc.want)
	}
}

func TestReduceIdempotent(t *testing.T) {
	one := big.NewRat(1, 1)
	two := big.NewRat(2, 1)
	inputs := []*big.Rat{
		big.NewRat(3, 2),
		big.NewRat(81, 4),
		big.NewRat(1, 100),
		big.NewRat(1155, 33),
		new(big.Rat).SetFrac(
			new(big.Int).Exp(big.NewInt(3), big.NewInt(27), nil),
			big.NewInt(1),
		),
	}
	for _, in := range inputs {
		once := tone.ReduceOctave(in)
		twice := tone.ReduceOctave(once)
		require.Zero(t, once.Cmp(twice), "reduce not idempotent for %v", in)
		require.Positive(t, once.Cmp(one), "reduce(%v) = %v not above 1", in, once)
		require.LessOrEqual(t, once.Cmp(two), 0, "reduce(%v) = %v above the octave", in, once)
	}
}

func TestReduceNonOctavePeriod(t *testing.T) {
	tritave := big.NewRat(3, 1)
	got := tone.Reduce(big.NewRat(25, 1), tritave)
	require.Zero(t, got.Cmp(big.NewRat(25, 9)))
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	in := big.NewRat(9, 1)
	_ = tone.ReduceOctave(in)
	require.Zero(t, in.Cmp(big.NewRat(9, 1)))
}

func TestReduceExactForHugeProducts(t *testing.T) {
	// 3^27 folded into the octave keeps its exact odd numerator.
	huge := new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(3), big.NewInt(27), nil))
	got := tone.ReduceOctave(huge)
	require.Equal(t, "7625597484987", got.Num().String())
	require.Equal(t, "4398046511104", got.Denom().String())
}
