package tetrachord

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Kind selects the notation a catalog entry was published in.
type Kind int

const (
	// KindRational divides the fourth into three exact ratio steps.
	KindRational Kind = iota
	// KindParts divides an Aristoxenian fourth (usually 500 cents) into
	// abstract parts.
	KindParts
	// KindTempered gives the three steps directly in cents.
	KindTempered
	// KindSemiTempered mixes rational steps with rational powers and
	// irrational factors.
	KindSemiTempered
)

// Entry is one catalog tetrachord.
type Entry struct {
	Index int
	Genus string
	Kind  Kind
	// Steps are the multiplicative steps for rational and semi-tempered
	// entries.
	Steps []Step
	// Parts are the Aristoxenian part sizes.
	Parts []*big.Rat
	// Cents are the step sizes for tempered entries; for parts and
	// semi-tempered entries they are the cent values printed in the book,
	// cross-checked against the computed steps.
	Cents []float64
	// Fourth overrides the 500.0 cent Aristoxenian fourth.
	Fourth    float64
	Reference string
	Comment   string
}

type stepForm int

const (
	stepRatio stepForm = iota
	stepFactor
	stepPower
)

// Step is one multiplicative division step: an exact ratio, a plain
// float factor, or a rational power of a rational base.
type Step struct {
	form           stepForm
	num, den       int64
	expNum, expDen int64
	factor         float64
}

func r(n, d int64) Step { return Step{form: stepRatio, num: n, den: d} }

func factor(x float64) Step { return Step{form: stepFactor, factor: x} }

func pow(bn, bd, en, ed int64) Step {
	return Step{form: stepPower, num: bn, den: bd, expNum: en, expDen: ed}
}

func q(n, d int64) *big.Rat { return big.NewRat(n, d) }

func (s Step) cents() float64 {
	switch s.form {
	case stepRatio:
		return 1200 * math.Log2(float64(s.num)/float64(s.den))
	case stepPower:
		return 1200 * math.Log2(float64(s.num)/float64(s.den)) * float64(s.expNum) / float64(s.expDen)
	default:
		return 1200 * math.Log2(s.factor)
	}
}

func (s Step) text() string {
	switch s.form {
	case stepRatio:
		return fmt.Sprintf("%d/%d", s.num, s.den)
	case stepPower:
		return fmt.Sprintf("(%d/%d)^(%d/%d)", s.num, s.den, s.expNum, s.expDen)
	default:
		return strconv.FormatFloat(s.factor, 'f', -1, 64)
	}
}

var categories = map[byte]string{
	'H': "Hyperenharmonic",
	'E': "Enharmonic",
	'C': "Chromatic",
	'D': "Diatonic",
	'R': "Reduplicated",
	'M': "Miscellaneous",
}

// fourThirds is the perfect fourth every division must span.
var fourThirds = big.NewRat(4, 3)

// partText renders an Aristoxenian part size the way the book prints
// it: integers bare, exact decimals as decimals, the rest as fractions.
func partText(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	den := new(big.Int).Set(r.Denom())
	for _, p := range []int64{2, 5} {
		bp := big.NewInt(p)
		for new(big.Int).Mod(den, bp).Sign() == 0 {
			den.Div(den, bp)
		}
	}
	if den.Cmp(big.NewInt(1)) == 0 {
		s := r.FloatString(10)
		s = strings.TrimRight(s, "0")
		return strings.TrimSuffix(s, ".")
	}
	return r.RatString()
}

// stepKey is the duplicate-detection key: entries of the same kind with
// identical step tuples are the same division.
func (e Entry) stepKey() string {
	switch e.Kind {
	case KindParts:
		parts := make([]string, len(e.Parts))
		for i, p := range e.Parts {
			parts[i] = p.RatString()
		}
		return "parts:" + strings.Join(parts, ",")
	case KindTempered:
		cents := make([]string, len(e.Cents))
		for i, c := range e.Cents {
			cents[i] = strconv.FormatFloat(c, 'f', -1, 64)
		}
		return "cents:" + strings.Join(cents, ",")
	default:
		steps := make([]string, len(e.Steps))
		for i, s := range e.Steps {
			steps[i] = s.text()
		}
		return "steps:" + strings.Join(steps, ",")
	}
}

// irregularEntries are published divisions that break a catalog rule.
// Entry 295 does not contain the characteristic interval of its genus.
var irregularEntries = map[int]bool{295: true}

// validateCatalog checks the transcription before anything is written:
// sequential indices, characteristic interval membership, and no
// duplicated divisions.
func validateCatalog() error {
	groups := make(map[string][]int, len(catalog))
	for i, e := range catalog {
		if e.Index != i+1 {
			return fmt.Errorf("catalog entry %d has index %d", i+1, e.Index)
		}
		if ci, ok := characteristicInterval[e.Genus]; ok && !irregularEntries[e.Index] {
			if !containsRatio(e.Steps, ci) {
				return fmt.Errorf("entry %d (%s) missing characteristic interval %s", e.Index, e.Genus, ci.RatString())
			}
		}
		key := e.stepKey()
		groups[key] = append(groups[key], e.Index)
	}
	for key, indices := range groups {
		if len(indices) > 1 {
			return fmt.Errorf("duplicate divisions %v: %s", indices, key)
		}
	}
	return nil
}

func containsRatio(steps []Step, want *big.Rat) bool {
	for _, s := range steps {
		if s.form == stepRatio && big.NewRat(s.num, s.den).Cmp(want) == 0 {
			return true
		}
	}
	return false
}
