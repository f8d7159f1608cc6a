package index

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// ExportCSV writes every indexed row, in canonical order, to a CSV file.
func (s *Store) ExportCSV(ctx context.Context, path string) (int, error) {
	rows, err := s.Rows(ctx)
	if err != nil {
		return 0, err
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create csv %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	header := []string{"directory", "scl_file", "notes", "period", "just", "prime_limit", "description", "tones", "reference"}
	if err := w.Write(header); err != nil {
		return 0, fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Directory,
			row.File,
			strconv.Itoa(row.Notes),
			strconv.FormatFloat(row.PeriodCents, 'f', 5, 64),
			strconv.FormatBool(row.Just),
			strconv.FormatInt(row.PrimeLimit, 10),
			row.Description,
			row.Tones,
			row.Reference,
		}
		if err := w.Write(record); err != nil {
			return 0, fmt.Errorf("write csv row %s: %w", row.File, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, fmt.Errorf("flush csv: %w", err)
	}
	return len(rows), nil
}
