package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"merlin/pkg/row"
	"merlin/pkg/types"
)

// ImportCSV bulk loads rows from a CSV file. mapping assigns a CSV header to
// every table column; resolution failures abort before any record is read.
// Records stream one at a time and each becomes one insert. The first bad
// record stops the import at that point, rows inserted before it remain.
// The count of inserted rows is returned alongside any error.
func (t *Table) ImportCSV(path string, mapping map[string]string, allowTruncate bool) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // short records surface as row errors below

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, errors.New("csv file has no header record")
		}
		return 0, fmt.Errorf("read csv header: %w", err)
	}

	fieldIdx := make([]int, len(t.columns))
	for i, col := range t.columns {
		mapped, ok := mapping[col.Name]
		if !ok {
			return 0, fmt.Errorf("no csv header mapped for column %q", col.Name)
		}
		idx := slices.Index(header, mapped)
		if idx < 0 {
			return 0, fmt.Errorf("csv header %q, mapped to column %q, not found in the file", mapped, col.Name)
		}
		fieldIdx[i] = idx
	}

	inserted := 0
	for recordNum := 1; ; recordNum++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return inserted, nil
		}
		if err != nil {
			return inserted, fmt.Errorf("record %d: %w", recordNum, err)
		}

		values := make(map[string]types.Value, len(t.columns))
		for i, col := range t.columns {
			idx := fieldIdx[i]
			if idx >= len(record) {
				return inserted, fmt.Errorf("record %d: no field %d for column %q", recordNum, idx+1, col.Name)
			}
			v, err := types.ParseValue(col.Type, record[idx], allowTruncate)
			if err != nil {
				return inserted, fmt.Errorf("record %d: column %q: %w", recordNum, col.Name, err)
			}
			values[col.Name] = v
		}

		built, err := row.Build(values, t.columns)
		if err != nil {
			return inserted, fmt.Errorf("record %d: %w", recordNum, err)
		}
		t.Insert(built)
		inserted++
	}
}
