package tone

import (
	"fmt"
	"math"
	"math/big"
	"sort"
	"strings"
)

// DefaultPeriod is the octave in cents.
const DefaultPeriod = 1200.0

// crossCheckTolerance bounds the disagreement allowed between a computed
// cent value and one transcribed from source material.
const crossCheckTolerance = 0.5

// Tone is one scale step: an interval value plus an optional inline
// comment carried into the scl file. Tones are immutable once built.
type Tone struct {
	value   Value
	comment string
}

// Option adjusts tone construction.
type Option func(*settings)

type settings struct {
	period     float64
	comment    string
	checkCents *float64
}

// WithComment attaches an inline comment to the tone's scl line.
func WithComment(comment string) Option {
	return func(s *settings) { s.comment = comment }
}

// WithPeriod overrides the octave as the allowed interval window.
func WithPeriod(period float64) Option {
	return func(s *settings) { s.period = period }
}

// WithCheckCents cross-checks the computed cents against a value quoted
// in the source material. Disagreement beyond half a cent means the
// transcription is wrong and construction fails.
func WithCheckCents(cents float64) Option {
	return func(s *settings) { s.checkCents = &cents }
}

// New wraps a value as a tone, enforcing 0 < cents <= period.
func New(v Value, opts ...Option) (Tone, error) {
	s := settings{period: DefaultPeriod}
	for _, opt := range opts {
		opt(&s)
	}
	if s.period <= 0 {
		return Tone{}, fmt.Errorf("period %v: must be positive", s.period)
	}
	cents := v.Cents()
	if s.checkCents != nil && math.Abs(*s.checkCents-cents) > crossCheckTolerance {
		return Tone{}, fmt.Errorf("interval %s: computed %.6f cents but source quotes %.6f", v, cents, *s.checkCents)
	}
	if !(cents > 0 && cents <= s.period) {
		return Tone{}, fmt.Errorf("interval %s (%.6f cents) outside period %v", v, cents, s.period)
	}
	return Tone{value: v, comment: s.comment}, nil
}

// FromRatio builds a tone from small integer ratio parts.
func FromRatio(n, d int64, opts ...Option) (Tone, error) {
	r, err := NewRatio(n, d)
	if err != nil {
		return Tone{}, err
	}
	return New(r, opts...)
}

// FromRat builds a tone from an exact rational.
func FromRat(rat *big.Rat, opts ...Option) (Tone, error) {
	r, err := RatioFromRat(rat)
	if err != nil {
		return Tone{}, err
	}
	return New(r, opts...)
}

// FromCents builds a tone from a cent value.
func FromCents(cents float64, opts ...Option) (Tone, error) {
	return New(Cents(cents), opts...)
}

// Must unwraps a tone constructor result. Catalog data is fixed at
// compile time, so a failure here is a transcription mistake that must
// be fixed in the catalog itself.
func Must(t Tone, err error) Tone {
	if err != nil {
		panic(err)
	}
	return t
}

// Cents evaluates the tone's interval in cents.
func (t Tone) Cents() float64 { return t.value.Cents() }

// Value returns the underlying interval encoding.
func (t Tone) Value() Value { return t.value }

// Comment returns the inline comment, empty when absent.
func (t Tone) Comment() string { return t.comment }

// IsRatio reports whether the tone is encoded as an exact ratio.
func (t Tone) IsRatio() bool {
	_, ok := t.value.(Ratio)
	return ok
}

// String renders the canonical scl text for the interval.
func (t Tone) String() string { return t.value.String() }

// Line renders the tone's scl line body. When the tone carries a comment
// the value is right-padded to pad columns before the "! comment" tail.
func (t Tone) Line(pad int) string {
	text := t.String()
	if t.comment == "" {
		return text
	}
	n := 1
	if pad > 0 && pad-len(text) > n {
		n = pad - len(text)
	}
	return text + strings.Repeat(" ", n) + "! " + t.comment
}

// Sort orders tones ascending by cents.
func Sort(tones []Tone) {
	sort.SliceStable(tones, func(i, j int) bool {
		return tones[i].Cents() < tones[j].Cents()
	})
}
