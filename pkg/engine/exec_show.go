package engine

import (
	"fmt"
	"slices"
	"strings"

	"merlin/pkg/sql"
)

func (s *TableStore) execShowTables(_ *sql.ShowTables) (Result, error) {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	slices.Sort(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		specs := s.tables[name].Schema()
		cols := make([]string, len(specs))
		for i, spec := range specs {
			cols[i] = spec.String()
		}
		rows = append(rows, []string{name, strings.Join(cols, ", ")})
	}

	return Result{
		Columns: []string{"table", "columns"},
		Rows:    rows,
		Message: fmt.Sprintf("%d table(s)", len(rows)),
	}, nil
}
