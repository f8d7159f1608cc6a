package validate

import (
	"fmt"
	"log/slog"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"scaleforge/internal/scale"
)

// centsTolerance is the allowed disagreement between a tone's stored
// cents and the value recomputed from its textual form.
const centsTolerance = 1e-3

// largeIntegerFloor is the smallest bare integer treated as a cent value
// mistakenly written without a decimal point. A bare 1094 would parse as
// the ratio 1094/1, an interval of ten octaves, which is never intended.
const largeIntegerFloor = 100

// Rule selects how a policy check reacts when it trips.
type Rule string

const (
	// RuleFail aborts the batch.
	RuleFail Rule = "fail"
	// RuleLog records the finding at debug level and accepts the scale.
	RuleLog Rule = "log"
)

// Policy selects the validator variant. The zero value is the strict
// variant; the weaker historical behavior stays reachable through the
// build config.
type Policy struct {
	// AllowMarkup skips the leftover-HTML check.
	AllowMarkup bool
	// LargeInteger controls the bare-integer-as-cents heuristic.
	LargeInteger Rule
	// LastTone controls the last-tone-below-maximum anomaly.
	LastTone Rule
}

// Default returns the strict policy.
func Default() Policy {
	return Policy{LargeInteger: RuleFail, LastTone: RuleLog}
}

// Error is a fatal validation failure. It carries the offending scale so
// the failure is diagnosable without re-running the batch.
type Error struct {
	Path   string
	Reason string
	Scale  *scale.Parsed
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("validate scale %q: %s", e.Scale.Description, e.Reason)
	}
	return fmt.Sprintf("validate %s: %s", e.Path, e.Reason)
}

func fail(p *scale.Parsed, format string, args ...any) error {
	return &Error{Reason: fmt.Sprintf(format, args...), Scale: p}
}

// toneGrammar is the full set of characters an acceptable tone value may
// contain once inline comments are stripped.
var toneGrammar = regexp.MustCompile(`^[0-9./\s-]*$`)

// markupFragments are leftovers of upstream HTML extraction; their
// presence means the candidate text is not a scale at all.
var markupFragments = []string{"<div", "<p>"}

// Scale checks one parsed scale under the given policy. Any returned
// error is fatal for the batch.
func Scale(p *scale.Parsed, pol Policy, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if !CountLineOK(p.Raw) {
		return fail(p, "count line is not a bare integer")
	}
	if !pol.AllowMarkup {
		for _, fragment := range markupFragments {
			if strings.Contains(p.Raw, fragment) {
				return fail(p, "markup fragment %q in scale text", fragment)
			}
		}
	}
	seen := map[string]string{}
	for _, t := range p.Tones {
		if err := checkTone(p, t, pol, logger); err != nil {
			return err
		}
		// Two tones within fingerprint resolution of each other are the
		// same pitch written twice.
		key := strconv.FormatFloat(t.Cents, 'f', 5, 64)
		if prev, dup := seen[key]; dup {
			return fail(p, "tone %q duplicates %q", strings.TrimSpace(t.Text), strings.TrimSpace(prev))
		}
		seen[key] = t.Text
	}
	if len(p.Tones) > 0 && p.Period() < p.MaxCents()-centsTolerance {
		switch pol.LastTone {
		case RuleFail:
			return fail(p, "last tone %.5f below maximum %.5f", p.Period(), p.MaxCents())
		default:
			logger.Debug("last tone below maximum tone",
				"description", p.Description,
				"last", p.Period(),
				"max", p.MaxCents())
		}
	}
	return nil
}

func checkTone(p *scale.Parsed, t scale.ParsedTone, pol Policy, logger *slog.Logger) error {
	base := scale.BaseText(t.Text)
	if !toneGrammar.MatchString(base) {
		return fail(p, "tone %q contains disallowed characters", t.Text)
	}

	cents, err := centsFromText(base)
	if err != nil {
		return fail(p, "tone %q: %v", t.Text, err)
	}
	if math.Abs(cents-t.Cents) > centsTolerance {
		return fail(p, "tone %q: text value %.6f cents disagrees with stored %.6f", t.Text, cents, t.Cents)
	}

	if value, ok := bareInteger(base); ok && value >= largeIntegerFloor {
		switch pol.LargeInteger {
		case RuleLog:
			logger.Debug("large bare integer tone, likely cents missing a decimal point",
				"description", p.Description, "tone", base)
		default:
			return fail(p, "tone %q: bare integer >= %d is almost certainly cents missing a decimal point", t.Text, largeIntegerFloor)
		}
	}
	return nil
}

// centsFromText recomputes a tone's cent value from its textual form:
// text without a decimal point is a rational n/d (or bare integer n/1),
// text with one is a cent value.
func centsFromText(base string) (float64, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		return 0, fmt.Errorf("empty tone value")
	}
	if strings.Contains(trimmed, ".") {
		cents, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot compute cents for %q", base)
		}
		return cents, nil
	}
	r, ok := new(big.Rat).SetString(trimmed)
	if !ok || r.Sign() <= 0 {
		return 0, fmt.Errorf("cannot compute cents for %q", base)
	}
	f, _ := r.Float64()
	return 1200 * math.Log2(f), nil
}

// bareInteger reports whether the tone text is a plain integer with no
// ratio slash and no decimal point.
func bareInteger(base string) (int64, bool) {
	trimmed := strings.TrimSpace(base)
	value, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// CountLineOK checks that the line in the count position (the second
// non-comment line) is digits only once trimmed. A description broken
// over two lines can put a numeric-looking line there; such a file is
// technically parseable but never intended.
func CountLineOK(raw string) bool {
	seen := 0
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, "!") {
			continue
		}
		seen++
		if seen < 2 {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return false
		}
		for _, r := range trimmed {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	}
	return false
}
