package tetrachord

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scaleforge/internal/library"
	"scaleforge/internal/scale"
	"scaleforge/internal/testsupport"
	"scaleforge/internal/validate"
)

func TestCatalogValidates(t *testing.T) {
	if err := validateCatalog(); err != nil {
		t.Fatalf("catalog invalid: %v", err)
	}
	if len(catalog) != 723 {
		t.Fatalf("catalog has %d entries, want 723", len(catalog))
	}
}

func entryByIndex(t *testing.T, index int) Entry {
	t.Helper()
	e := catalog[index-1]
	if e.Index != index {
		t.Fatalf("entry at position %d has index %d", index-1, e.Index)
	}
	return e
}

func TestRationalEntry(t *testing.T) {
	b, err := build(entryByIndex(t, 1))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	b.Filename = "001_H1.scl"
	text := b.Render()

	if !strings.Contains(text, "Hyperenharmonic tetrachord 80/79 * 79/78 * 13/10") {
		t.Fatalf("description wrong:\n%s", text)
	}
	// 80/79 * 79/78 reduces to 40/39; the full product closes on 4/3.
	for _, want := range []string{" 80/79", " 40/39", " 4/3", "! Chalmers, John H. Divisions of the Tetrachord."} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing %q:\n%s", want, text)
		}
	}
	if !strings.Contains(text, "! catalog_index = 1") {
		t.Fatalf("info block wrong:\n%s", text)
	}
}

func TestRationalEntryWithReference(t *testing.T) {
	b, err := build(entryByIndex(t, 4))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if !strings.HasSuffix(b.Description, ", Wilson") {
		t.Fatalf("reference not appended: %q", b.Description)
	}
}

func TestPartsEntry(t *testing.T) {
	b, err := build(entryByIndex(t, 594))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	b.Filename = "594_T1.scl"
	text := b.Render()

	if !strings.Contains(text, "Aristoxenian style tetrachord 2 + 2 + 26") {
		t.Fatalf("description wrong:\n%s", text)
	}
	// 500 cents split 2:2:26 gives thirds of 33.333...
	for _, want := range []string{" 33.333333", " 66.666667", " 500.0"} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing %q:\n%s", want, text)
		}
	}
}

func TestPartsEntryNonStandardFourth(t *testing.T) {
	e := entryByIndex(t, 659)
	if e.Fourth != 494.0 {
		t.Fatalf("entry 659 fourth = %v", e.Fourth)
	}
	b, err := build(e)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	last := b.Tones[len(b.Tones)-1]
	if last.String() != "494.0" {
		t.Fatalf("last tone = %q, want 494.0", last.String())
	}
}

func TestTemperedEntry(t *testing.T) {
	b, err := build(entryByIndex(t, 663))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if !strings.Contains(b.Description, "Tempered tetrachord in cents 22.7 + 22.7 + 454.4") {
		t.Fatalf("description wrong: %q", b.Description)
	}
	last := b.Tones[len(b.Tones)-1]
	if last.String() != "499.8" {
		t.Fatalf("last tone = %q", last.String())
	}
}

func TestSemiTemperedPowersCloseExactly(t *testing.T) {
	// (4/3)^(1/10) * (4/3)^(1/10) * (4/3)^(8/10) must land on 4/3 as an
	// exact ratio, not a rounded cent value.
	b, err := build(entryByIndex(t, 694))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	strs := make([]string, len(b.Tones))
	for i, tn := range b.Tones {
		strs[i] = tn.String()
	}
	if strs[2] != "4/3" {
		t.Fatalf("final tone = %q, want 4/3 (all: %v)", strs[2], strs)
	}
	if !strings.Contains(strs[0], ".") {
		t.Fatalf("intermediate tone %q should be in cents", strs[0])
	}
}

func TestSemiTemperedSurdSteps(t *testing.T) {
	// 16/(9*sqrt(3)) squared is 256/243, so the second cumulative
	// interval is rational again.
	b, err := build(entryByIndex(t, 692))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if got := b.Tones[1].String(); got != "256/243" {
		t.Fatalf("second tone = %q, want 256/243", got)
	}
	if got := b.Tones[2].String(); got != "4/3" {
		t.Fatalf("final tone = %q, want 4/3", got)
	}
}

func TestPartText(t *testing.T) {
	cases := map[string]string{
		"6":    partText(q(6, 1)),
		"8.5":  partText(q(17, 2)),
		"17/3": partText(q(17, 3)),
		"2.5":  partText(q(5, 2)),
	}
	for want, got := range cases {
		if got != want {
			t.Fatalf("partText = %q, want %q", got, want)
		}
	}
}

func TestOversizedRatioFallsBackToCents(t *testing.T) {
	// Entry 81 opens with 3^24/2^38, whose parts exceed the format's
	// 2^31-1 ratio limit, so it must be written as cents.
	b, err := build(entryByIndex(t, 81))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	first := b.Tones[0].String()
	if strings.Contains(first, "/") || !strings.Contains(first, ".") {
		t.Fatalf("oversized ratio rendered as %q", first)
	}
}

func TestBuildWritesFullCatalog(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	outDir := filepath.Join(cfg.Paths.ScalesDir, "divisions-of-the-tetrachord")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	src := New()
	res, err := src.Build(context.Background(), &library.Env{
		Config: cfg,
		Logger: testsupport.Logger(),
		Policy: validate.Default(),
		OutDir: outDir,
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if res.Count != 723 {
		t.Fatalf("Count = %d, want 723", res.Count)
	}
	if len(res.References) != 723 {
		t.Fatalf("references = %d", len(res.References))
	}

	n, err := validate.CheckDir(outDir, validate.Default(), testsupport.Logger())
	if err != nil {
		t.Fatalf("CheckDir failed: %v", err)
	}
	if n != 723 {
		t.Fatalf("validated %d files", n)
	}

	parsed, err := scale.ParseFile(filepath.Join(outDir, "723_S32.scl"))
	if err != nil {
		t.Fatalf("parse last entry: %v", err)
	}
	if parsed.Info["catalog_index"] != "723" {
		t.Fatalf("info = %v", parsed.Info)
	}
}
