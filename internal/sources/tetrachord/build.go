package tetrachord

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"scaleforge/internal/library"
	"scaleforge/internal/scale"
	"scaleforge/internal/tone"
)

const (
	defaultFourth = 500.0
	// temperedTolerance bounds how far a published tempered division may
	// fall short of the 500 cent fourth.
	temperedTolerance = 0.25
	// semiTemperedTolerance bounds the closing error of a semi-tempered
	// division, in cents.
	semiTemperedTolerance = 0.15
	// printedCentsTolerance allows for the book rounding step sizes like
	// 66.666 down to 66.
	printedCentsTolerance = 1.0
)

const citation = "Chalmers, John H. Divisions of the Tetrachord. Frog Peak Music, 1993."

// Source emits the catalog as scl files.
type Source struct{}

func New() *Source { return &Source{} }

func (*Source) Name() string { return "tetrachord" }

func (*Source) Subdir() string { return "divisions-of-the-tetrachord" }

func (s *Source) Build(ctx context.Context, env *library.Env) (*library.Result, error) {
	if err := validateCatalog(); err != nil {
		return nil, err
	}

	names := library.NewFilenames()
	res := &library.Result{References: map[string]string{}}
	for _, e := range catalog {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		filename := fmt.Sprintf("%03d_%s.scl", e.Index, e.Genus)
		if err := names.Reserve(filename); err != nil {
			return nil, err
		}
		b, err := build(e)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", e.Index, err)
		}
		b.Filename = filename
		if err := library.WriteScale(env.OutDir, filename, b.Render()); err != nil {
			return nil, err
		}
		res.References[filename] = citation
		res.Count++
	}
	env.Logger.Info("catalog written", "entries", res.Count)
	return res, nil
}

func build(e Entry) (*scale.Builder, error) {
	var tones []tone.Tone
	var description string
	var err error

	switch e.Kind {
	case KindRational:
		tones, err = rationalTones(e)
		description = rationalDescription(e)
	case KindParts:
		tones, err = partsTones(e)
		description = "Aristoxenian style tetrachord " + joinParts(e.Parts)
	case KindTempered:
		tones, err = temperedTones(e)
		description = "Tempered tetrachord in cents " + joinCents(e.Cents)
	case KindSemiTempered:
		tones, err = semiTemperedTones(e)
		description = "Semi-tempered tetrachord " + joinSteps(e.Steps)
	default:
		err = fmt.Errorf("unknown kind %d", e.Kind)
	}
	if err != nil {
		return nil, err
	}
	if e.Reference != "" {
		description += ", " + e.Reference
	}

	b := &scale.Builder{
		Description: description,
		Tones:       tones,
		Info: []scale.Field{
			{Key: "source", Value: "Divisions of the Tetrachord"},
			{Key: "catalog_index", Value: strconv.Itoa(e.Index)},
		},
	}
	if e.Comment != "" {
		b.Comments = []string{e.Comment}
	}
	if e.Kind == KindRational {
		b.Reference = citation
	}
	return b, nil
}

func rationalDescription(e Entry) string {
	category, ok := categories[e.Genus[0]]
	if !ok {
		category = "Tetrachord"
	}
	return category + " tetrachord " + joinSteps(e.Steps)
}

// rationalTones multiplies the steps into cumulative intervals, which
// must land exactly on 4/3.
func rationalTones(e Entry) ([]tone.Tone, error) {
	cur := big.NewRat(1, 1)
	tones := make([]tone.Tone, 0, len(e.Steps))
	for _, s := range e.Steps {
		if s.form != stepRatio {
			return nil, fmt.Errorf("non-rational step %s in rational division", s.text())
		}
		cur.Mul(cur, big.NewRat(s.num, s.den))
		t, err := tone.FromRat(cur)
		if err != nil {
			return nil, err
		}
		tones = append(tones, t)
	}
	if cur.Cmp(fourThirds) != 0 {
		return nil, fmt.Errorf("steps multiply to %s, not 4/3", cur.RatString())
	}
	return tones, nil
}

// partsTones scales the abstract parts onto the fourth exactly, then
// cross-checks each step against the cent value printed in the book.
func partsTones(e Entry) ([]tone.Tone, error) {
	fourth := e.Fourth
	if fourth == 0 {
		fourth = defaultFourth
	}
	fourthRat := new(big.Rat).SetFloat64(fourth)

	total := new(big.Rat)
	for _, p := range e.Parts {
		total.Add(total, p)
	}

	tones := make([]tone.Tone, 0, len(e.Parts))
	cum := new(big.Rat)
	for i, p := range e.Parts {
		step := new(big.Rat).Mul(fourthRat, p)
		step.Quo(step, total)
		stepCents, _ := step.Float64()
		if math.Abs(math.Round(stepCents)-e.Cents[i]) > printedCentsTolerance {
			return nil, fmt.Errorf("part %s computes to %.3f cents, printed as %v", partText(p), stepCents, e.Cents[i])
		}
		cum.Add(cum, step)
		cents, _ := cum.Float64()
		t, err := tone.FromCents(cents)
		if err != nil {
			return nil, err
		}
		tones = append(tones, t)
	}
	if cum.Cmp(fourthRat) != 0 {
		return nil, fmt.Errorf("parts sum to %s, not the %v cent fourth", cum.RatString(), fourth)
	}
	return tones, nil
}

func temperedTones(e Entry) ([]tone.Tone, error) {
	tones := make([]tone.Tone, 0, len(e.Cents))
	cum := 0.0
	for _, c := range e.Cents {
		cum += c
		t, err := tone.FromCents(cum)
		if err != nil {
			return nil, err
		}
		tones = append(tones, t)
	}
	if math.Abs(cum-defaultFourth) > temperedTolerance {
		return nil, fmt.Errorf("cents sum to %v, not %v", cum, defaultFourth)
	}
	return tones, nil
}

// semiTemperedTones multiplies the steps keeping the most exact form
// available. Powers of a shared base stay symbolic so a division like
// (4/3)^(1/10) * (4/3)^(1/10) * (4/3)^(4/5) closes exactly on 4/3.
func semiTemperedTones(e Entry) ([]tone.Tone, error) {
	cur := newProduct()
	tones := make([]tone.Tone, 0, len(e.Steps))
	for i, s := range e.Steps {
		printed := e.Cents[i]
		if math.Abs(math.Round(s.cents())-printed) > printedCentsTolerance {
			return nil, fmt.Errorf("step %s is %.3f cents, printed as %v", s.text(), s.cents(), printed)
		}
		cur.mul(s)
		t, err := cur.tone()
		if err != nil {
			return nil, err
		}
		tones = append(tones, t)
	}
	if cur.rat != nil {
		if cur.rat.Cmp(fourThirds) != 0 {
			return nil, fmt.Errorf("steps multiply to %s, not 4/3", cur.rat.RatString())
		}
	} else {
		ft, _ := fourThirds.Float64()
		if math.Abs(1200*math.Log2(cur.f/ft)) > semiTemperedTolerance {
			return nil, fmt.Errorf("steps multiply to %.6f, too far from 4/3", cur.f)
		}
	}
	return tones, nil
}

// product is a cumulative step product tracked in the most exact form
// available: a rational, a rational power with one base, or a float.
type product struct {
	rat  *big.Rat // non-nil while the product is rational
	base *big.Rat // non-nil while the product is base^exp with exp non-integral
	exp  *big.Rat
	f    float64 // numeric value, always maintained
}

func newProduct() *product {
	return &product{rat: big.NewRat(1, 1), f: 1.0}
}

func (p *product) mul(s Step) {
	switch s.form {
	case stepRatio:
		p.f *= float64(s.num) / float64(s.den)
		if p.rat != nil {
			p.rat.Mul(p.rat, big.NewRat(s.num, s.den))
		} else {
			p.base = nil
		}
	case stepPower:
		base := big.NewRat(s.num, s.den)
		bf, _ := base.Float64()
		p.f *= math.Pow(bf, float64(s.expNum)/float64(s.expDen))
		exp := big.NewRat(s.expNum, s.expDen)
		switch {
		case p.rat != nil && p.rat.Cmp(big.NewRat(1, 1)) == 0 && p.base == nil:
			p.rat = nil
			p.base = base
			p.exp = exp
		case p.base != nil && p.base.Cmp(base) == 0:
			p.exp.Add(p.exp, exp)
		default:
			p.rat = nil
			p.base = nil
		}
		p.collapse()
	default:
		p.f *= s.factor
		p.rat = nil
		p.base = nil
	}
}

// collapse turns base^k with integral k back into a plain rational.
func (p *product) collapse() {
	if p.base == nil || !p.exp.IsInt() {
		return
	}
	k := p.exp.Num().Int64()
	rat := big.NewRat(1, 1)
	for i := int64(0); i < k; i++ {
		rat.Mul(rat, p.base)
	}
	p.rat = rat
	p.base = nil
	p.exp = nil
}

func (p *product) tone() (tone.Tone, error) {
	switch {
	case p.rat != nil:
		return tone.FromRat(p.rat)
	case p.base != nil:
		v, err := tone.NewPower(p.base, p.exp.Num().Int64(), p.exp.Denom().Int64())
		if err != nil {
			return tone.Tone{}, err
		}
		return tone.New(v)
	default:
		return tone.FromCents(1200 * math.Log2(p.f))
	}
}

func joinSteps(steps []Step) string {
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = s.text()
	}
	return strings.Join(parts, " * ")
}

func joinParts(parts []*big.Rat) string {
	texts := make([]string, len(parts))
	for i, p := range parts {
		texts[i] = partText(p)
	}
	return strings.Join(texts, " + ")
}

func joinCents(cents []float64) string {
	texts := make([]string, len(cents))
	for i, c := range cents {
		texts[i] = strconv.FormatFloat(c, 'f', -1, 64)
	}
	return strings.Join(texts, " + ")
}
