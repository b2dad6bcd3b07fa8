package engine

import (
	"errors"
	"fmt"
	"strings"

	"merlin/pkg/sql"
	"merlin/pkg/types"
)

func (s *TableStore) execSelect(st *sql.Select) (Result, error) {
	t, err := s.lookup(st.TableName)
	if err != nil {
		return Result{}, err
	}
	schema := t.Schema()

	projected, err := projection(st.Columns, schema)
	if err != nil {
		return Result{}, fmt.Errorf("select from %s: %w", st.TableName, err)
	}

	position := make(map[string]int, len(schema))
	for i, col := range schema {
		position[col.Name] = i
	}

	rows := make([][]string, 0, t.RowCount())
	for i := 0; i < t.RowCount(); i++ {
		r, err := t.Get(i)
		if err != nil {
			return Result{}, fmt.Errorf("select from %s: %w", st.TableName, err)
		}
		out := make([]string, len(projected))
		for j, name := range projected {
			out[j] = r[position[name]].Value.String()
		}
		rows = append(rows, out)
	}

	return Result{
		Columns: projected,
		Rows:    rows,
		Message: fmt.Sprintf("%d row(s)", len(rows)),
	}, nil
}

// projection resolves the statement's column references against the schema.
// A wildcard must stand alone and expands to every column in schema order;
// named columns project in statement order. Unknown names are reported
// together, not one at a time.
func projection(cols []sql.SelectColumn, schema []types.ColumnSpec) ([]string, error) {
	known := make(map[string]struct{}, len(schema))
	for _, col := range schema {
		known[col.Name] = struct{}{}
	}

	wildcard := false
	named := make([]string, 0, len(cols))
	for _, c := range cols {
		if c.Wildcard {
			wildcard = true
			continue
		}
		named = append(named, c.Name)
	}

	if wildcard {
		if len(named) > 0 {
			return nil, errors.New("the wildcard cannot be combined with named columns")
		}
		all := make([]string, len(schema))
		for i, col := range schema {
			all[i] = col.Name
		}
		return all, nil
	}

	var unknown []string
	for _, name := range named {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown column(s): %s", strings.Join(unknown, ", "))
	}
	return named, nil
}
