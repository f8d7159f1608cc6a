package xenharmonikon

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

// piece is one registered scale from a journal article.
type piece struct {
	// key is the registry identifier, "xen02_wilson_indic"; the filename
	// is the key with dashes.
	key         string
	author      string
	issue       string
	title       string
	page        int
	description string
	comments    []string
	tones       func() ([]tone.Tone, error)
}

func (p piece) filename() string {
	return strings.ReplaceAll(p.key, "_", "-") + ".scl"
}

func (p piece) journalText() string {
	text := journal[p.issue].Name
	if p.page != 0 {
		text = fmt.Sprintf("%s, p.%d", text, p.page)
	}
	return text
}

func (p piece) citation() string {
	return fmt.Sprintf("%s, %s, %s", p.author, p.title, p.journalText())
}

func (p piece) build() (*scale.Builder, error) {
	if _, ok := journal[p.issue]; !ok {
		return nil, fmt.Errorf("piece %s: unknown issue %q", p.key, p.issue)
	}
	tones, err := p.tones()
	if err != nil {
		return nil, fmt.Errorf("piece %s: %w", p.key, err)
	}
	comments := append([]string{p.author, p.title, p.journalText()}, p.comments...)
	return &scale.Builder{
		Filename:    p.filename(),
		Description: p.description,
		Tones:       tones,
		Comments:    comments,
		Info: []scale.Field{
			{Key: "source", Value: "Xenharmonikon"},
			{Key: "whole_number", Value: journal[p.issue].WholeNumber},
		},
	}, nil
}

// Source emits the registered journal scales.
type Source struct{}

func New() *Source { return &Source{} }

func (*Source) Name() string { return "xenharmonikon" }

func (*Source) Subdir() string { return "xenharmonikon" }

func (s *Source) Build(ctx context.Context, env *library.Env) (*library.Result, error) {
	names := library.NewFilenames()
	res := &library.Result{References: map[string]string{}}
	for _, p := range pieces {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b, err := p.build()
		if err != nil {
			return nil, err
		}
		if err := names.Reserve(b.Filename); err != nil {
			return nil, err
		}
		if err := library.WriteScale(env.OutDir, b.Filename, b.Render()); err != nil {
			return nil, err
		}
		res.References[b.Filename] = p.citation()
		res.Count++
	}
	env.Logger.Info("journal scales written", "pieces", res.Count)
	return res, nil
}

// rt is one transcribed ratio tone, optionally annotated.
type rt struct {
	n, d    int64
	comment string
}

func t(n, d int64) rt { return rt{n: n, d: d} }

func tc(n, d int64, comment string) rt { return rt{n: n, d: d, comment: comment} }

// ratios builds a literal tone list.
func ratios(items ...rt) func() ([]tone.Tone, error) {
	return func() ([]tone.Tone, error) {
		tones := make([]tone.Tone, 0, len(items))
		for _, item := range items {
			var opts []tone.Option
			if item.comment != "" {
				opts = append(opts, tone.WithComment(item.comment))
			}
			t, err := tone.FromRatio(item.n, item.d, opts...)
			if err != nil {
				return nil, err
			}
			tones = append(tones, t)
		}
		return tones, nil
	}
}

// cumulativeProduct multiplies fraction steps into ascending intervals.
func cumulativeProduct(steps ...*big.Rat) func() ([]tone.Tone, error) {
	return func() ([]tone.Tone, error) {
		cur := big.NewRat(1, 1)
		tones := make([]tone.Tone, 0, len(steps))
		for _, s := range steps {
			cur.Mul(cur, s)
			t, err := tone.FromRat(cur)
			if err != nil {
				return nil, err
			}
			tones = append(tones, t)
		}
		return tones, nil
	}
}

// notesFromSteps cross-checks the printed note values against the
// cumulative step sums, then emits the notes as cents.
func notesFromSteps(notes, steps []float64) func() ([]tone.Tone, error) {
	return func() ([]tone.Tone, error) {
		if len(notes) != len(steps) {
			return nil, fmt.Errorf("%d notes but %d steps", len(notes), len(steps))
		}
		sum := 0.0
		tones := make([]tone.Tone, 0, len(notes))
		for i, note := range notes {
			sum += steps[i]
			if sum != note {
				return nil, fmt.Errorf("step sum %v does not reach printed note %v", sum, note)
			}
			t, err := tone.FromCents(note)
			if err != nil {
				return nil, err
			}
			tones = append(tones, t)
		}
		return tones, nil
	}
}

// monochord converts string lengths into cents against the open string,
// keeping each length as an inline comment.
func monochord(lengths []float64) func() ([]tone.Tone, error) {
	return func() ([]tone.Tone, error) {
		open := lengths[0]
		tones := make([]tone.Tone, 0, len(lengths)-1)
		for _, l := range lengths[1:] {
			t, err := tone.FromCents(1200*math.Log2(open/l), tone.WithComment(lengthText(l)))
			if err != nil {
				return nil, err
			}
			tones = append(tones, t)
		}
		return tones, nil
	}
}

// combinationSet builds the products of each factor subset, divides by
// divisor, and reduces into the octave. Each tone carries its factor
// label as a comment. Repeated subsets collapse to one tone.
func combinationSet(factorSets [][]int64, divisor int64) func() ([]tone.Tone, error) {
	return func() ([]tone.Tone, error) {
		seen := map[string]bool{}
		var tones []tone.Tone
		for _, factors := range factorSets {
			labels := make([]string, len(factors))
			product := int64(1)
			for i, f := range factors {
				labels[i] = strconv.FormatInt(f, 10)
				product *= f
			}
			label := strings.Join(labels, "*")
			if seen[label] {
				continue
			}
			seen[label] = true

			reduced := tone.ReduceOctave(big.NewRat(product, divisor))
			t, err := tone.FromRat(reduced, tone.WithComment(label))
			if err != nil {
				return nil, err
			}
			tones = append(tones, t)
		}
		return tones, nil
	}
}

// lengthText prints a string length the way the journal tables do, with
// a decimal point even on whole numbers.
func lengthText(l float64) string {
	s := strconv.FormatFloat(l, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// expectCount guards a transcribed tone list against dropped lines.
func expectCount(n int, build func() ([]tone.Tone, error)) func() ([]tone.Tone, error) {
	return func() ([]tone.Tone, error) {
		tones, err := build()
		if err != nil {
			return nil, err
		}
		if len(tones) != n {
			return nil, fmt.Errorf("transcribed %d tones, expected %d", len(tones), n)
		}
		return tones, nil
	}
}
