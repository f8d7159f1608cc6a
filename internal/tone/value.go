package tone

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// MaxRatioPart is the largest integer the scl format supports in a ratio.
// Ratios with larger parts are still numerically valid but must be written
// as cents.
const MaxRatioPart = 1<<31 - 1

// centsDecimals is the precision used when an interval is written in cents.
const centsDecimals = 6

// Value is one pitch interval in a particular encoding.
type Value interface {
	// Cents evaluates the interval in cents (1200 per octave).
	Cents() float64
	// String renders the canonical scl text for the interval.
	String() string
}

// Ratio is an exact frequency ratio n/d with positive integer parts.
type Ratio struct {
	rat *big.Rat
}

// NewRatio builds a ratio from small integer parts.
func NewRatio(n, d int64) (Ratio, error) {
	if n <= 0 || d <= 0 {
		return Ratio{}, fmt.Errorf("ratio %d/%d: parts must be positive", n, d)
	}
	return Ratio{rat: big.NewRat(n, d)}, nil
}

// RatioFromRat builds a ratio from an exact rational. The rational is
// copied, so later mutation of r does not affect the value.
func RatioFromRat(r *big.Rat) (Ratio, error) {
	if r == nil || r.Sign() <= 0 {
		return Ratio{}, fmt.Errorf("ratio %v: must be positive", r)
	}
	return Ratio{rat: new(big.Rat).Set(r)}, nil
}

// Num returns the reduced numerator.
func (r Ratio) Num() *big.Int { return new(big.Int).Set(r.rat.Num()) }

// Den returns the reduced denominator.
func (r Ratio) Den() *big.Int { return new(big.Int).Set(r.rat.Denom()) }

// Rat returns a copy of the underlying rational.
func (r Ratio) Rat() *big.Rat { return new(big.Rat).Set(r.rat) }

func (r Ratio) Cents() float64 {
	f, _ := r.rat.Float64()
	return 1200 * math.Log2(f)
}

// String renders "n/d" when both parts fit the format's integer limit and
// falls back to cents otherwise.
func (r Ratio) String() string {
	limit := big.NewInt(MaxRatioPart)
	if r.rat.Num().Cmp(limit) <= 0 && r.rat.Denom().Cmp(limit) <= 0 {
		return r.rat.Num().String() + "/" + r.rat.Denom().String()
	}
	return FormatCents(r.Cents())
}

// Cents is an interval given directly as a cent value.
type Cents float64

func (c Cents) Cents() float64 { return float64(c) }

func (c Cents) String() string { return FormatCents(float64(c)) }

// Power is an exact rational power base^(num/den), the encoding for
// semi-tempered intervals such as (4/3)^(1/10). The exponent keeps the
// interval exact even though the value itself is irrational.
type Power struct {
	base     *big.Rat
	expNum   int64
	expDen   int64
}

// NewPower builds base^(expNum/expDen).
func NewPower(base *big.Rat, expNum, expDen int64) (Power, error) {
	if base == nil || base.Sign() <= 0 {
		return Power{}, fmt.Errorf("power base %v: must be positive", base)
	}
	if expDen <= 0 {
		return Power{}, fmt.Errorf("power exponent %d/%d: denominator must be positive", expNum, expDen)
	}
	return Power{base: new(big.Rat).Set(base), expNum: expNum, expDen: expDen}, nil
}

func (p Power) Cents() float64 {
	f, _ := p.base.Float64()
	return 1200 * math.Log2(f) * float64(p.expNum) / float64(p.expDen)
}

// String renders the exact ratio when the exponent collapses to an
// integer, cents otherwise.
func (p Power) String() string {
	if p.expNum%p.expDen == 0 {
		k := p.expNum / p.expDen
		if k > 0 {
			r := new(big.Rat).Set(p.base)
			for i := int64(1); i < k; i++ {
				r.Mul(r, p.base)
			}
			if ratio, err := RatioFromRat(r); err == nil {
				return ratio.String()
			}
		}
	}
	return FormatCents(p.Cents())
}

// FormatCents writes a cent value rounded to six decimals. The result
// always contains a decimal point: a bare integer would re-parse as a
// frequency ratio.
func FormatCents(c float64) string {
	rounded := math.Round(c*1e6) / 1e6
	s := strconv.FormatFloat(rounded, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
