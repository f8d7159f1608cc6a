package damusc

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scaleforge/internal/config"
	"scaleforge/internal/library"
	"scaleforge/internal/scale"
	"scaleforge/internal/testsupport"
	"scaleforge/internal/validate"
)

const sourcesCSV = `RefID,Authors,Year,Title
R001,Surjodiningrat et al.,1972,Tone measurements of outstanding Javanese gamelans
R002,Rechberger H.,2018,Scales and Modes Around the World
`

func writeFixtures(t *testing.T, cfg *config.Config, measuredCSV string) {
	t.Helper()
	testsupport.WriteSourceFile(t, cfg, "DaMuSc/Data/measured_scales.csv", measuredCSV)
	testsupport.WriteSourceFile(t, cfg, "DaMuSc/MetaData/sources.csv", sourcesCSV)
}

func runBuild(t *testing.T, cfg *config.Config) (*library.Result, string, error) {
	t.Helper()
	outDir := filepath.Join(cfg.Paths.ScalesDir, "database-of-musical-scales")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	res, err := New().Build(context.Background(), &library.Env{
		Config: cfg,
		Logger: testsupport.Logger(),
		Policy: validate.Default(),
		OutDir: outDir,
	})
	return res, outDir, err
}

func TestBuildMeasuredScales(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	writeFixtures(t, cfg, `MeasuredID,RefID,Reference,Country,Name,Intervals,Octave_modified
M0001,R001,"Surjodiningrat, Sudarjana and Susanto (1972).",Indonesia,Slendro,240.0;245.0;235.0;240.0;240.0,N
M0002,R001,"Surjodiningrat, Sudarjana and Susanto (1972).",Indonesia,Pelog,120.0;140.0;280.0,Y
`)

	res, outDir, err := runBuild(t, cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if res.Count != 2 {
		t.Fatalf("Count = %d, want 2", res.Count)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "Indonesia_Slendro.scl"))
	if err != nil {
		t.Fatalf("read scl: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "Measured scale M0001 in DaMuSc") {
		t.Fatalf("description missing:\n%s", text)
	}
	// Steps accumulate: 240, 485, 720, 960, 1200.
	for _, want := range []string{" 240.0", " 485.0", " 1200.0"} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing %q:\n%s", want, text)
		}
	}

	pelog, err := scale.ParseFile(filepath.Join(outDir, "Indonesia_Pelog.scl"))
	if err != nil {
		t.Fatalf("parse pelog: %v", err)
	}
	if pelog.Count != 4 {
		t.Fatalf("pelog count = %d, want 3 steps + octave", pelog.Count)
	}
	if !strings.Contains(pelog.Raw, "1200.0") || !strings.Contains(pelog.Raw, "Octave added to measured scale") {
		t.Fatalf("octave not appended:\n%s", pelog.Raw)
	}
	if pelog.Info["measured_id"] != "M0002" || pelog.Info["ref_id"] != "R001" {
		t.Fatalf("info = %v", pelog.Info)
	}

	if got := res.References["Indonesia_Slendro.scl"]; !strings.Contains(got, "Surjodiningrat") {
		t.Fatalf("reference = %q", got)
	}

	if _, err := validate.CheckDir(outDir, validate.Default(), testsupport.Logger()); err != nil {
		t.Fatalf("CheckDir failed: %v", err)
	}
}

func TestStretchedOctaveAccepted(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	// Gamelan octaves measured wider than 1200 cents are real data, not
	// transcription errors.
	writeFixtures(t, cfg, `MeasuredID,RefID,Reference,Country,Name,Intervals,Octave_modified
M0001,R001,"Surjodiningrat, Sudarjana and Susanto (1972).",Indonesia,Gender,240.0;255.0;240.0;240.0;245.0,N
`)

	res, outDir, err := runBuild(t, cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if res.Count != 1 {
		t.Fatalf("Count = %d, want 1", res.Count)
	}
	p, err := scale.ParseFile(filepath.Join(outDir, "Indonesia_Gender.scl"))
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if p.Period() != 1220.0 {
		t.Fatalf("period = %v, want 1220", p.Period())
	}
	if _, err := validate.CheckDir(outDir, validate.Default(), testsupport.Logger()); err != nil {
		t.Fatalf("CheckDir failed: %v", err)
	}
}

func TestFilenameClashGetsNumberSuffix(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	writeFixtures(t, cfg, `MeasuredID,RefID,Reference,Country,Name,Intervals,Octave_modified
M0001,R001,Ref one.,Thailand,Ranat,171.0;172.0;857.0,N
M0002,R001,Ref two.,Thailand,Ranat,170.0;175.0;855.0,N
`)

	res, outDir, err := runBuild(t, cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if res.Count != 2 {
		t.Fatalf("Count = %d", res.Count)
	}
	for _, name := range []string{"Thailand_Ranat.scl", "Thailand_Ranat_2.scl"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
	}
}

func TestRechbergerDuplicateLoses(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	writeFixtures(t, cfg, `MeasuredID,RefID,Reference,Country,Name,Intervals,Octave_modified
M0001,R001,Original field measurement.,Uganda,Amadinda,240.0;240.0;240.0;240.0;240.0,N
M0002,R002,Rechberger (2018).,Uganda,Amadinda2,240.0;240.0;240.0;240.0;240.0,N
`)

	res, outDir, err := runBuild(t, cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if res.Count != 1 {
		t.Fatalf("Count = %d, want 1", res.Count)
	}
	if _, err := os.Stat(filepath.Join(outDir, "Uganda_Amadinda.scl")); err != nil {
		t.Fatalf("winner missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "Uganda_Amadinda2.scl")); err == nil {
		t.Fatal("Rechberger copy was written")
	}
}

func TestAmbiguousDuplicateFails(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	writeFixtures(t, cfg, `MeasuredID,RefID,Reference,Country,Name,Intervals,Octave_modified
M0001,R001,First original.,Ghana,Seperewa,200.0;1000.0,N
M0002,R001,Second original.,Ghana,Seperewa2,200.0;1000.0,N
`)

	if _, _, err := runBuild(t, cfg); err == nil {
		t.Fatal("ambiguous duplicate accepted")
	}
}

func TestUnknownRefIDFails(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	writeFixtures(t, cfg, `MeasuredID,RefID,Reference,Country,Name,Intervals,Octave_modified
M0001,R999,Dangling reference.,Peru,Antara,200.0;1000.0,N
`)

	if _, _, err := runBuild(t, cfg); err == nil {
		t.Fatal("dangling RefID accepted")
	}
}

func TestCountryNamePunctuationStripped(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	writeFixtures(t, cfg, `MeasuredID,RefID,Reference,Country,Name,Intervals,Octave_modified
M0001,R001,Some reference.,Papua N. Guinea,Flute d'amore,200.0;1000.0,N
`)

	_, outDir, err := runBuild(t, cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "PapuaNGuinea_Flute_d_amore.scl")); err != nil {
		t.Fatalf("sanitized filename missing: %v", err)
	}
}
