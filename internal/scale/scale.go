package scale

import (
	"math/big"
	"strings"
)

// Field is one ordered key/value pair of the [info] provenance block.
// A slice of fields, not a map, so serialization order is fixed.
type Field struct {
	Key   string
	Value string
}

// ParsedTone is one tone line as read back from scl text. It keeps the
// raw line so validation can compare the textual form against the
// computed cents.
type ParsedTone struct {
	// Text is the tone line as it appeared, inline comment included.
	Text string
	// Cents is the numeric value derived from the text.
	Cents float64
	// Num and Den are set when the tone was written as a ratio.
	Num *big.Int
	Den *big.Int
}

// IsRatio reports whether the tone was written in ratio form.
func (t ParsedTone) IsRatio() bool { return t.Num != nil }

// BaseText returns the tone text with any inline comment stripped and a
// trailing "cents" unit marker removed. This is the form the validator's
// grammar and numeric checks run against.
func BaseText(line string) string {
	base, _, _ := strings.Cut(line, "!")
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(base), "cents"))
}

// Parsed is a scale read back from scl text.
type Parsed struct {
	// Raw is the full text the scale was parsed from.
	Raw string
	// Description is the first non-comment line.
	Description string
	// Count is the declared tone count.
	Count int
	// Tones holds the parsed tone lines, in file order.
	Tones []ParsedTone
	// Info holds the [info] block key/values, nil when absent.
	Info map[string]string
}

// Period returns the scale's repeat interval: the cents of the last tone.
func (p *Parsed) Period() float64 {
	if len(p.Tones) == 0 {
		return 0
	}
	return p.Tones[len(p.Tones)-1].Cents
}

// MaxCents returns the largest tone value. Usually equal to Period; a
// difference is the "last tone below maximum" anomaly.
func (p *Parsed) MaxCents() float64 {
	max := 0.0
	for i, t := range p.Tones {
		if i == 0 || t.Cents > max {
			max = t.Cents
		}
	}
	return max
}

// Just reports whether every tone is written in ratio form.
func (p *Parsed) Just() bool {
	for _, t := range p.Tones {
		if !t.IsRatio() {
			return false
		}
	}
	return len(p.Tones) > 0
}
