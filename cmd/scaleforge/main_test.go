package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scaleforge/internal/scale"
	"scaleforge/internal/tone"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeTestConfig(t *testing.T) (configPath, scalesDir, sourcesDir string) {
	t.Helper()
	base := t.TempDir()
	scalesDir = filepath.Join(base, "scales")
	sourcesDir = filepath.Join(base, "sources")
	configPath = filepath.Join(base, "config.toml")

	content := strings.Join([]string{
		"[paths]",
		"sources_dir = " + strconvQuote(sourcesDir),
		"scales_dir = " + strconvQuote(scalesDir),
		`log_dir = ""`,
	}, "\n") + "\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath, scalesDir, sourcesDir
}

func strconvQuote(s string) string {
	return `"` + s + `"`
}

func writeFixtureScale(t *testing.T, dir, filename string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	b := scale.Builder{
		Filename:    filename,
		Description: "Fixture fifth and octave",
		Tones:       []tone.Tone{tone.Must(tone.FromRatio(3, 2)), tone.Must(tone.FromRatio(2, 1))},
		Info: []scale.Field{
			{Key: "source", Value: "fixture"},
		},
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(b.Render()), 0o644); err != nil {
		t.Fatalf("write scale: %v", err)
	}
	return path
}

func TestInfoCommand(t *testing.T) {
	path := writeFixtureScale(t, t.TempDir(), "fixture.scl")

	output, err := executeCommand(t, "info", path)
	if err != nil {
		t.Fatalf("info failed: %v", err)
	}
	var got scaleInfo
	if err := json.Unmarshal([]byte(output), &got); err != nil {
		t.Fatalf("not JSON: %v\n%s", err, output)
	}
	if got.Notes != 2 || !got.Just || got.Info["source"] != "fixture" {
		t.Fatalf("info = %+v", got)
	}
}

func TestCheckCommand(t *testing.T) {
	configPath, scalesDir, _ := writeTestConfig(t)
	writeFixtureScale(t, filepath.Join(scalesDir, "fixture-source"), "fixture.scl")

	output, err := executeCommand(t, "--config", configPath, "check")
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "1 scl files valid") {
		t.Fatalf("unexpected output:\n%s", output)
	}
}

func TestBuildRejectsUnknownSource(t *testing.T) {
	configPath, _, _ := writeTestConfig(t)

	_, err := executeCommand(t, "--config", configPath, "build", "--source", "bogus")
	if err == nil || !strings.Contains(err.Error(), "unknown source") {
		t.Fatalf("err = %v", err)
	}
}

func TestBuildSingleSourceEndToEnd(t *testing.T) {
	configPath, scalesDir, sourcesDir := writeTestConfig(t)
	fixtures := map[string]string{
		"DaMuSc/Data/measured_scales.csv": `MeasuredID,RefID,Reference,Country,Name,Intervals,Octave_modified
M0001,R001,"Surjodiningrat, Sudarjana and Susanto (1972).",Indonesia,Slendro,240.0;245.0;235.0;240.0;240.0,N
`,
		"DaMuSc/MetaData/sources.csv": `RefID,Authors,Year,Title
R001,Surjodiningrat et al.,1972,Tone measurements of outstanding Javanese gamelans
`,
	}
	for rel, content := range fixtures {
		path := filepath.Join(sourcesDir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}

	output, err := executeCommand(t, "--config", configPath, "build", "--source", "damusc")
	if err != nil {
		t.Fatalf("build failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "damusc") || !strings.Contains(output, "1 scales") {
		t.Fatalf("unexpected output:\n%s", output)
	}
	for _, rel := range []string{
		"database-of-musical-scales/Indonesia_Slendro.scl",
		"scale-index.csv",
		"README.md",
	} {
		if _, err := os.Stat(filepath.Join(scalesDir, rel)); err != nil {
			t.Fatalf("missing %s: %v", rel, err)
		}
	}
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	output, err := executeCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v\n%s", err, output)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	if _, err := executeCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("second init without --overwrite succeeded")
	}
	if _, err := executeCommand(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("init with --overwrite failed: %v", err)
	}
}
