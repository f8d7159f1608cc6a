package damusc

import (
	"encoding/csv"
	"fmt"
	"os"
)

// table is a CSV file read as header-keyed records.
type table struct {
	path string
	rows []map[string]string
}

func readTable(path string) (*table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: empty file", path)
	}

	header := records[0]
	t := &table{path: path}
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		t.rows = append(t.rows, row)
	}
	return t, nil
}

// get fetches a column, failing loudly on schema drift in the upstream
// database.
func (t *table) get(row map[string]string, col string) (string, error) {
	v, ok := row[col]
	if !ok {
		return "", fmt.Errorf("%s: missing column %q", t.path, col)
	}
	return v, nil
}
