package engine

import (
	"fmt"

	"merlin/pkg/logging"
	"merlin/pkg/sql"
	"merlin/pkg/table"
)

func (s *TableStore) execCreateTable(st *sql.CreateTable) (Result, error) {
	t, err := table.New(columnSpecsFromAST(st.Columns))
	if err != nil {
		return Result{}, fmt.Errorf("create table %s: %w", st.TableName, err)
	}

	// re-creating a name replaces the previous table
	s.tables[st.TableName] = t

	logging.WithTable(st.TableName).Info("table created",
		"columns", len(st.Columns),
		"row_size", t.RowSize(),
		"rows_per_page", t.RowsPerPage())
	return Result{
		Message: fmt.Sprintf("table %s created (row size %d, %d rows per page)",
			st.TableName, t.RowSize(), t.RowsPerPage()),
	}, nil
}
