package tone

import "math/big"

// Octave returns the 2/1 period ratio.
func Octave() *big.Rat { return big.NewRat(2, 1) }

// Reduce folds a positive rational interval into the window (1, period]
// by repeated multiplication or division by the period ratio. The fold is
// exact: no floating arithmetic is involved, so stacked generators and
// combination products keep their just intonation identities.
func Reduce(r, period *big.Rat) *big.Rat {
	one := big.NewRat(1, 1)
	if r.Sign() <= 0 {
		panic("reduce: interval must be positive")
	}
	if period.Cmp(one) <= 0 {
		panic("reduce: period must exceed 1")
	}
	out := new(big.Rat).Set(r)
	for out.Cmp(one) <= 0 {
		out.Mul(out, period)
	}
	for out.Cmp(period) > 0 {
		out.Quo(out, period)
	}
	return out
}

// ReduceOctave folds an interval into (1, 2].
func ReduceOctave(r *big.Rat) *big.Rat {
	return Reduce(r, Octave())
}
