package library

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"scaleforge/internal/config"
	"scaleforge/internal/validate"
)

// Source is one scale provider: a catalog, a database ingester, or an
// archive extractor. Build writes scl files into env.OutDir and reports
// how many were accepted, plus a citation per accepted filename.
type Source interface {
	// Name is the config identifier, e.g. "tetrachord".
	Name() string
	// Subdir is the directory below the scales tree this source owns.
	Subdir() string
	Build(ctx context.Context, env *Env) (*Result, error)
}

// Env carries the per-run collaborators a source needs.
type Env struct {
	Config *config.Config
	Logger *slog.Logger
	Policy validate.Policy
	// OutDir is the absolute path of the source's own, freshly created
	// output directory.
	OutDir string
}

// Result reports one source's accepted output.
type Result struct {
	Count int
	// References maps each accepted filename to a human-readable
	// citation. Every accepted file must have a non-empty one.
	References map[string]string
}

// WriteScale writes one rendered scl file into dir.
func WriteScale(dir, filename, text string) error {
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(text), 0o644); err != nil {
		return fmt.Errorf("write scale %s: %w", filename, err)
	}
	return nil
}

// PolicyFrom maps build configuration onto a validator policy.
func PolicyFrom(cfg *config.Config) validate.Policy {
	pol := validate.Default()
	if cfg == nil {
		return pol
	}
	pol.AllowMarkup = cfg.Build.AllowMarkup
	if cfg.Build.LargeIntegerPolicy != "" {
		pol.LargeInteger = validate.Rule(cfg.Build.LargeIntegerPolicy)
	}
	if cfg.Build.LastTonePolicy != "" {
		pol.LastTone = validate.Rule(cfg.Build.LastTonePolicy)
	}
	return pol
}
