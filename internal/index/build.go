package index

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"math/big"
	"path/filepath"
	"strings"

	"scaleforge/internal/scale"
)

// Build rebuilds the index database from an assembled scales tree. The
// references map is keyed by "subdir/filename" relative to the tree root;
// every indexed file must have a citation there. Returns the number of
// rows written.
func Build(ctx context.Context, indexPath, scalesDir string, references map[string]string, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default()
	}
	store, err := Open(indexPath)
	if err != nil {
		return 0, err
	}
	defer store.Close()

	if err := store.Reset(ctx); err != nil {
		return 0, err
	}

	count := 0
	err = filepath.WalkDir(scalesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".scl") {
			return nil
		}
		rel, err := filepath.Rel(scalesDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		reference, ok := references[rel]
		if !ok || reference == "" {
			return fmt.Errorf("no citation for %s", rel)
		}

		parsed, err := scale.ParseFile(path)
		if err != nil {
			return err
		}
		row := rowFor(parsed, rel, reference)
		if err := store.Insert(ctx, row); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("index built", "path", indexPath, "rows", count)
	return count, nil
}

func rowFor(p *scale.Parsed, rel, reference string) Row {
	dir := filepath.ToSlash(filepath.Dir(rel))
	if dir == "." {
		dir = ""
	}

	texts := make([]string, 0, len(p.Tones))
	for _, t := range p.Tones {
		texts = append(texts, scale.BaseText(t.Text))
	}

	row := Row{
		Directory:   dir,
		File:        filepath.Base(rel),
		Notes:       len(p.Tones),
		PeriodCents: p.Period(),
		Just:        p.Just(),
		Description: p.Description,
		Tones:       strings.Join(texts, " "),
		Reference:   reference,
	}
	if row.Just {
		row.PrimeLimit = primeLimit(p.Tones)
	}
	return row
}

// primeLimit finds the largest prime factor over every ratio's numerator
// and denominator. Tone parts fit in 31 bits, so trial division is fine.
func primeLimit(tones []scale.ParsedTone) int64 {
	limit := int64(1)
	for _, t := range tones {
		for _, part := range []*big.Int{t.Num, t.Den} {
			if part == nil {
				continue
			}
			if p := largestPrimeFactor(part.Int64()); p > limit {
				limit = p
			}
		}
	}
	return limit
}

func largestPrimeFactor(n int64) int64 {
	if n < 2 {
		return 1
	}
	largest := int64(1)
	for n%2 == 0 {
		largest = 2
		n /= 2
	}
	for f := int64(3); f*f <= n; f += 2 {
		for n%f == 0 {
			largest = f
			n /= f
		}
	}
	if n > 1 {
		largest = n
	}
	return largest
}
