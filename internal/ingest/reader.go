package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
)

// LoadCSV reads a header-rowed CSV file and returns the header plus one Row
// per data record.
func LoadCSV(path string) ([]string, []Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s contains no header row", path)
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, fields := range records[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(fields) {
				row[col] = fields[i]
			}
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}
