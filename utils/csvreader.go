package utils

import (
	"encoding/csv"
	"io"
)

// ParseCSV reads every record. Lines starting with '#' are skipped and leading
// spaces after a delimiter are dropped.
func ParseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return records, nil
}
