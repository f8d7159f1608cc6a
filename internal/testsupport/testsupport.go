// Package testsupport provides shared helpers for package tests: temp
// configs and source-material fixtures.
package testsupport

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"scaleforge/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per
// test. File logging is disabled so tests stay quiet.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.SourcesDir = filepath.Join(base, "sources")
	cfg.Paths.ScalesDir = filepath.Join(base, "scales")
	cfg.Paths.IndexPath = filepath.Join(base, "scale-index.db")
	cfg.Paths.LogDir = ""

	for _, dir := range []string{cfg.Paths.SourcesDir, cfg.Paths.ScalesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	return &cfg
}

// WriteSourceFile writes fixture source material below the config's
// sources directory and returns the absolute path.
func WriteSourceFile(t testing.TB, cfg *config.Config, rel, content string) string {
	t.Helper()

	path := filepath.Join(cfg.Paths.SourcesDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// Logger returns a logger that swallows all output.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
