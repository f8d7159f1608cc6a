package xenharmonikon

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"scaleforge/internal/library"
	"scaleforge/internal/scale"
	"scaleforge/internal/testsupport"
	"scaleforge/internal/validate"
)

func TestRegistryWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range pieces {
		if seen[p.key] {
			t.Fatalf("duplicate key %s", p.key)
		}
		seen[p.key] = true
		if _, ok := journal[p.issue]; !ok {
			t.Fatalf("piece %s has unknown issue %s", p.key, p.issue)
		}
		if p.author == "" || p.title == "" || p.description == "" {
			t.Fatalf("piece %s missing attribution", p.key)
		}
	}
}

func pieceByKey(t *testing.T, key string) piece {
	t.Helper()
	for _, p := range pieces {
		if p.key == key {
			return p
		}
	}
	t.Fatalf("no piece %s", key)
	return piece{}
}

func TestCombinationSetReduction(t *testing.T) {
	p := pieceByKey(t, "xen02_wilson_combination_sets")
	b, err := p.build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(b.Tones) != 32 {
		t.Fatalf("tones = %d, want 32", len(b.Tones))
	}
	text := b.Render()
	// 5*7*11 = 385; 385/33 reduced into the octave is 35/24.
	if !strings.Contains(text, "35/24") || !strings.Contains(text, "! 5*7*11") {
		t.Fatalf("missing 5*7*11 tone:\n%s", text)
	}
	// The unity label reduces to 64/33.
	if !strings.Contains(text, "64/33") {
		t.Fatalf("missing unity tone:\n%s", text)
	}
}

func TestCumulativeProductClosesOnOctave(t *testing.T) {
	p := pieceByKey(t, "xen06_london_ditone_diatonic")
	b, err := p.build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	last := b.Tones[len(b.Tones)-1]
	if last.String() != "2/1" {
		t.Fatalf("last tone = %q, want 2/1", last.String())
	}
	if got := b.Tones[2].String(); got != "4/3" {
		t.Fatalf("third tone = %q, want 4/3", got)
	}
}

func TestNotesFromStepsCrossCheck(t *testing.T) {
	good := notesFromSteps([]float64{204, 408}, []float64{204, 204})
	if _, err := good(); err != nil {
		t.Fatalf("valid steps rejected: %v", err)
	}
	bad := notesFromSteps([]float64{204, 410}, []float64{204, 204})
	if _, err := bad(); err == nil {
		t.Fatal("inconsistent printed notes accepted")
	}
}

func TestMonochordLengths(t *testing.T) {
	p := pieceByKey(t, "xen18_mitchell_fractal_1")
	b, err := p.build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	last := b.Tones[len(b.Tones)-1]
	// The half-length string is the octave exactly.
	if last.String() != "1200.0" || last.Comment() != "50.0" {
		t.Fatalf("last tone = %q comment %q", last.String(), last.Comment())
	}
	first := b.Tones[0]
	if first.Comment() != "96.7" {
		t.Fatalf("first comment = %q", first.Comment())
	}
}

func TestPieceCitation(t *testing.T) {
	p := pieceByKey(t, "xen18_darreg_djami_17")
	got := p.citation()
	if !strings.Contains(got, "Ivor Darreg") || !strings.Contains(got, "Xenharmonikon 18 (2006), p.228") {
		t.Fatalf("citation = %q", got)
	}
}

func TestBuildWritesAllPieces(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	outDir := cfg.Paths.ScalesDir

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
	if res.Count != len(pieces) {
		t.Fatalf("Count = %d, want %d", res.Count, len(pieces))
	}

	n, err := validate.CheckDir(outDir, validate.Default(), testsupport.Logger())
	if err != nil {
		t.Fatalf("CheckDir failed: %v", err)
	}
	if n != len(pieces) {
		t.Fatalf("validated %d files", n)
	}

	parsed, err := scale.ParseFile(filepath.Join(outDir, "xen02-wilson-indic.scl"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Info["whole_number"] != "2" || parsed.Info["source"] != "Xenharmonikon" {
		t.Fatalf("info = %v", parsed.Info)
	}
	if parsed.Count != 22 {
		t.Fatalf("count = %d", parsed.Count)
	}
}
