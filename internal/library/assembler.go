package library

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"scaleforge/internal/config"
	"scaleforge/internal/validate"
)

var (
	// ErrLocked means another build already holds the output tree.
	ErrLocked = errors.New("scales directory is locked by another build")
	// ErrCountMismatch means the post-build sweep found a different
	// number of valid files than the sources reported writing.
	ErrCountMismatch = errors.New("validated file count does not match source totals")
)

// Summary reports an assembled batch.
type Summary struct {
	RunID     string
	Total     int
	PerSource map[string]int
	// References maps relative scl paths (subdir/filename) to their
	// citations, for the index builder.
	References map[string]string
}

// Assembler runs the configured sources against a locked output tree.
type Assembler struct {
	cfg     *config.Config
	logger  *slog.Logger
	sources []Source
}

func NewAssembler(cfg *config.Config, logger *slog.Logger, sources []Source) *Assembler {
	return &Assembler{cfg: cfg, logger: logger, sources: sources}
}

// Run rebuilds every enabled source's subtree, validates the whole tree
// afterwards, and cross-checks the counts. The scales directory is held
// under an advisory lock for the duration.
func (a *Assembler) Run(ctx context.Context) (*Summary, error) {
	if err := os.MkdirAll(a.cfg.Paths.ScalesDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure scales directory: %w", err)
	}

	lock := flock.New(filepath.Join(a.cfg.Paths.ScalesDir, ".scaleforge.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire build lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}
	defer lock.Unlock()

	runID := uuid.NewString()
	logger := a.logger.With("run_id", runID)
	policy := PolicyFrom(a.cfg)

	summary := &Summary{
		RunID:      runID,
		PerSource:  make(map[string]int),
		References: make(map[string]string),
	}

	enabled := make(map[string]bool, len(a.cfg.Build.Sources))
	for _, name := range a.cfg.Build.Sources {
		enabled[name] = true
	}

	for _, src := range a.sources {
		if !enabled[src.Name()] {
			logger.Debug("source disabled", "source", src.Name())
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		outDir := filepath.Join(a.cfg.Paths.ScalesDir, src.Subdir())
		if err := os.RemoveAll(outDir); err != nil {
			return nil, fmt.Errorf("clear %s output: %w", src.Name(), err)
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s output: %w", src.Name(), err)
		}

		logger.Info("building source", "source", src.Name())
		res, err := src.Build(ctx, &Env{
			Config: a.cfg,
			Logger: logger.With("source", src.Name()),
			Policy: policy,
			OutDir: outDir,
		})
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", src.Name(), err)
		}
		if len(res.References) != res.Count {
			return nil, fmt.Errorf("source %s: %d files but %d references", src.Name(), res.Count, len(res.References))
		}
		for filename, citation := range res.References {
			if citation == "" {
				return nil, fmt.Errorf("source %s: empty citation for %s", src.Name(), filename)
			}
			summary.References[filepath.Join(src.Subdir(), filename)] = citation
		}
		summary.PerSource[src.Name()] = res.Count
		summary.Total += res.Count
		logger.Info("source complete", "source", src.Name(), "count", res.Count)
	}

	validated, err := validate.CheckDir(a.cfg.Paths.ScalesDir, policy, logger)
	if err != nil {
		return nil, fmt.Errorf("validate scales tree: %w", err)
	}
	if validated != summary.Total {
		return nil, fmt.Errorf("%w: validated %d, sources reported %d", ErrCountMismatch, validated, summary.Total)
	}

	logger.Info("batch complete", "total", summary.Total, "sources", len(summary.PerSource))
	return summary, nil
}
