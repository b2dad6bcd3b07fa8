package engine

import (
	"fmt"

	"merlin/pkg/logging"
	"merlin/pkg/sql"
)

func (s *TableStore) execImportCsv(st *sql.ImportCsv) (Result, error) {
	t, err := s.lookup(st.TableName)
	if err != nil {
		return Result{}, err
	}

	inserted, err := t.ImportCSV(st.FilePath, st.Mapping, st.Truncate)
	if err != nil {
		// rows inserted before the failure stand
		return Result{}, fmt.Errorf("import into %s stopped after %d row(s): %w",
			st.TableName, inserted, err)
	}

	logging.WithTable(st.TableName).Info("csv import finished",
		"file", st.FilePath, "rows", inserted)
	return Result{
		Message:      fmt.Sprintf("%d row(s) imported into %s from %s", inserted, st.TableName, st.FilePath),
		RowsAffected: inserted,
	}, nil
}
