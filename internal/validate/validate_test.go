package validate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scaleforge/internal/scale"
	"scaleforge/internal/tone"
	"scaleforge/internal/validate"
)

func mustParse(t *testing.T, text string) *scale.Parsed {
	t.Helper()
	p, err := scale.Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return p
}

func TestSerializedScalesAlwaysValidate(t *testing.T) {
	builders := []*scale.Builder{
		{
			Filename:    "just.scl",
			Description: "Just scale",
			Tones: []tone.Tone{
				tone.Must(tone.FromRatio(9, 8)),
				tone.Must(tone.FromRatio(5, 4)),
				tone.Must(tone.FromRatio(3, 2)),
				tone.Must(tone.FromRatio(2, 1)),
			},
		},
		{
			Filename:    "cents.scl",
			Description: "Measured scale",
			Tones: []tone.Tone{
				tone.Must(tone.FromCents(182.3)),
				tone.Must(tone.FromCents(701.955, tone.WithComment("near fifth"))),
				tone.Must(tone.FromCents(1200.0)),
			},
		},
	}
	for _, b := range builders {
		p := mustParse(t, b.Render())
		if err := validate.Scale(p, validate.Default(), nil); err != nil {
			t.Fatalf("round trip failed for %s: %v", b.Filename, err)
		}
	}
}

func TestCountLineRejectsProse(t *testing.T) {
	text := "! a.scl\nA description broken\n12 extra words\n"
	if validate.CountLineOK(text) {
		t.Fatal("count line with trailing words accepted")
	}
	if !validate.CountLineOK("! a.scl\ndesc\n 12 \n") {
		t.Fatal("valid count line rejected")
	}
}

func TestMarkupRejected(t *testing.T) {
	text := "! a.scl\ndesc\n 1\n 2/1\n! <p>leftover</p>\n"
	p := mustParse(t, text)
	if err := validate.Scale(p, validate.Default(), nil); err == nil {
		t.Fatal("markup fragment accepted")
	}
	pol := validate.Default()
	pol.AllowMarkup = true
	if err := validate.Scale(p, pol, nil); err != nil {
		t.Fatalf("markup policy off, still rejected: %v", err)
	}
}

func TestToneGrammarRejected(t *testing.T) {
	p := mustParse(t, "! a.scl\ndesc\n 1\n 3/2 major\n")
	if err := validate.Scale(p, validate.Default(), nil); err == nil {
		t.Fatal("tone with prose accepted")
	}
}

func TestToneCentsDivergenceRejected(t *testing.T) {
	p := mustParse(t, "! a.scl\ndesc\n 1\n 701.955\n")
	p.Tones[0].Cents = 700.0
	err := validate.Scale(p, validate.Default(), nil)
	if err == nil {
		t.Fatal("diverging cents accepted")
	}
	if !strings.Contains(err.Error(), "disagrees") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLargeBareIntegerPolicy(t *testing.T) {
	p := mustParse(t, "! a.scl\ndesc\n 1\n 1094\n")

	if err := validate.Scale(p, validate.Default(), nil); err == nil {
		t.Fatal("large bare integer accepted under strict policy")
	}

	pol := validate.Default()
	pol.LargeInteger = validate.RuleLog
	if err := validate.Scale(p, pol, nil); err != nil {
		t.Fatalf("log policy still rejected: %v", err)
	}

	// Small bare integers are legitimate ratios.
	small := mustParse(t, "! a.scl\ndesc\n 1\n 2\n")
	if err := validate.Scale(small, validate.Default(), nil); err != nil {
		t.Fatalf("bare 2 rejected: %v", err)
	}
}

func TestLastTonePolicy(t *testing.T) {
	p := mustParse(t, "! a.scl\ndesc\n 3\n 9/8\n 2/1\n 3/2\n")

	if err := validate.Scale(p, validate.Default(), nil); err != nil {
		t.Fatalf("anomaly should only log by default: %v", err)
	}

	pol := validate.Default()
	pol.LastTone = validate.RuleFail
	if err := validate.Scale(p, pol, nil); err == nil {
		t.Fatal("anomaly accepted under fail policy")
	}
}

func TestRatioCentsEquivalence(t *testing.T) {
	p := mustParse(t, "! a.scl\ndesc\n 2\n 3/2\n 2/1\n")
	// Stored cents as a pre-rounded float still agrees within tolerance.
	p.Tones[0].Cents = 701.955
	if err := validate.Scale(p, validate.Default(), nil); err != nil {
		t.Fatalf("ratio text vs float cents rejected: %v", err)
	}
}

func TestDuplicateToneRejected(t *testing.T) {
	// The ratio and cent spellings of the fifth are one pitch twice.
	p := mustParse(t, "! a.scl\ndesc\n 3\n 3/2\n 701.955\n 2/1\n")
	err := validate.Scale(p, validate.Default(), nil)
	if err == nil {
		t.Fatal("duplicate tone accepted")
	}
	if !strings.Contains(err.Error(), "duplicates") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	write := func(rel, text string) {
		t.Helper()
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("one/a.scl", "! a.scl\ndesc a\n 1\n 2/1\n")
	write("two/b.scl", "! b.scl\ndesc b\n 2\n 3/2\n 2/1\n")

	count, err := validate.CheckDir(dir, validate.Default(), nil)
	if err != nil {
		t.Fatalf("CheckDir failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("unexpected count %d", count)
	}

	// A duplicate filename in another subdirectory is fatal.
	write("three/a.scl", "! a.scl\ndesc a again\n 1\n 2/1\n")
	if _, err := validate.CheckDir(dir, validate.Default(), nil); err == nil {
		t.Fatal("duplicate filename across subdirectories accepted")
	}
}

func TestCheckDirRejectsBadFile(t *testing.T) {
	dir := t.TempDir()
	bad := "! bad.scl\nA description broken\n12 extra words\n"
	if err := os.WriteFile(filepath.Join(dir, "bad.scl"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := validate.CheckDir(dir, validate.Default(), nil); err == nil {
		t.Fatal("bad file accepted")
	}
}
