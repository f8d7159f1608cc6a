package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scaleforge/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("missing config reported as existing")
	}
	if resolved == "" {
		t.Fatal("resolved path empty")
	}
	if cfg.Build.LargeIntegerPolicy != "fail" || cfg.Build.LastTonePolicy != "log" {
		t.Fatalf("unexpected default policies: %+v", cfg.Build)
	}
	if len(cfg.Build.Sources) != 4 {
		t.Fatalf("unexpected default sources: %v", cfg.Build.Sources)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `
[paths]
sources_dir = "`+dir+`/sources"
scales_dir = "`+dir+`/scales"
log_dir = ""

[build]
sources = ["Tetrachord", " damusc "]
large_integer_policy = "LOG"

[logging]
level = "DEBUG"
`)
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("config file not found")
	}
	if got := cfg.Build.Sources; len(got) != 2 || got[0] != "tetrachord" || got[1] != "damusc" {
		t.Fatalf("sources not normalized: %v", got)
	}
	if cfg.Build.LargeIntegerPolicy != "log" {
		t.Fatalf("policy not normalized: %q", cfg.Build.LargeIntegerPolicy)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level not normalized: %q", cfg.Logging.Level)
	}
	if !strings.HasSuffix(cfg.Paths.IndexPath, "scale-index.db") {
		t.Fatalf("index path not defaulted: %q", cfg.Paths.IndexPath)
	}
}

func TestLoadRejectsUnknownSource(t *testing.T) {
	path := writeConfig(t, `
[build]
sources = ["tetrachord", "spotify"]
`)
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("unknown source accepted")
	}
}

func TestLoadRejectsBadPolicy(t *testing.T) {
	path := writeConfig(t, `
[build]
large_integer_policy = "maybe"
`)
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("bad policy accepted")
	}
}

func TestLoadRejectsDuplicateSource(t *testing.T) {
	path := writeConfig(t, `
[build]
sources = ["damusc", "damusc"]
`)
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("duplicate source accepted")
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample failed: %v", err)
	}
	if !exists {
		t.Fatal("sample not found after writing")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config invalid: %v", err)
	}
}
