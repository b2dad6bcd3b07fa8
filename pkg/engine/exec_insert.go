package engine

import (
	"fmt"

	"merlin/pkg/row"
	"merlin/pkg/sql"
	"merlin/pkg/types"
)

func (s *TableStore) execInsert(st *sql.Insert) (Result, error) {
	t, err := s.lookup(st.TableName)
	if err != nil {
		return Result{}, err
	}

	// values drive the pairing; a value without a column name gets an empty
	// name and the arity problem surfaces as a column name mismatch
	values := make(map[string]types.Value, len(st.Values))
	for i, v := range st.Values {
		name := ""
		if i < len(st.Columns) {
			name = st.Columns[i]
		}
		values[name] = valueFromAST(v)
	}

	r, err := row.Build(values, t.Schema())
	if err != nil {
		return Result{}, fmt.Errorf("insert into %s: %w", st.TableName, err)
	}
	t.Insert(r)

	return Result{
		Message:      fmt.Sprintf("1 row inserted into %s, %d total", st.TableName, t.RowCount()),
		RowsAffected: 1,
	}, nil
}
