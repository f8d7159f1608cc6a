package scale

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"scaleforge/internal/tone"
)

// fingerprintDecimals is the rounding applied before comparing interval
// sets. Five decimals absorbs ratio-vs-float representation noise while
// keeping genuinely distinct scales apart.
const fingerprintDecimals = 5

// Fingerprint derives the canonical identity of an interval set: the
// cent values rounded to five decimals, sorted ascending, joined into a
// single key. Two scales with equal fingerprints are the same scale no
// matter how their tones were written.
func Fingerprint(cents []float64) string {
	rounded := make([]float64, len(cents))
	for i, c := range cents {
		rounded[i] = math.Round(c*1e5) / 1e5
	}
	sort.Float64s(rounded)
	parts := make([]string, len(rounded))
	for i, c := range rounded {
		parts[i] = strconv.FormatFloat(c, 'f', fingerprintDecimals, 64)
	}
	return strings.Join(parts, " ")
}

// FingerprintTones fingerprints constructed tones.
func FingerprintTones(tones []tone.Tone) string {
	cents := make([]float64, len(tones))
	for i, t := range tones {
		cents[i] = t.Cents()
	}
	return Fingerprint(cents)
}

// Fingerprint fingerprints a parsed scale.
func (p *Parsed) Fingerprint() string {
	cents := make([]float64, len(p.Tones))
	for i, t := range p.Tones {
		cents[i] = t.Cents
	}
	return Fingerprint(cents)
}
