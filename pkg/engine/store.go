package engine

import (
	"fmt"
	"sync"

	"merlin/pkg/logging"
	"merlin/pkg/sql"
	"merlin/pkg/table"
)

// Result is the renderable outcome of one statement. Tabular statements fill
// Columns and Rows; every statement carries a Message.
type Result struct {
	Columns      []string
	Rows         [][]string
	Message      string
	RowsAffected int
}

// TableStore owns every live table and serializes statement execution: one
// exclusive lock spans the whole statement, so a statement always sees and
// leaves consistent table state. Tables themselves are not safe for
// concurrent use.
type TableStore struct {
	mu     sync.Mutex
	tables map[string]*table.Table
}

func NewTableStore() *TableStore {
	return &TableStore{tables: make(map[string]*table.Table)}
}

// Execute parses and runs one statement. Parsing happens before the lock is
// taken; parse state is statement local. Trailing input after a complete
// statement is ignored.
func (s *TableStore) Execute(input string) (Result, error) {
	stmt, _, err := sql.Parse(input)
	if err != nil {
		return Result{}, fmt.Errorf("syntax error: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	logging.WithComponent("engine").Debug("executing statement", "kind", fmt.Sprintf("%T", stmt))

	switch st := stmt.(type) {
	case *sql.CreateTable:
		return s.execCreateTable(st)
	case *sql.Select:
		return s.execSelect(st)
	case *sql.Insert:
		return s.execInsert(st)
	case *sql.ShowTables:
		return s.execShowTables(st)
	case *sql.ImportCsv:
		return s.execImportCsv(st)
	default:
		return Result{}, fmt.Errorf("unsupported statement %T", stmt)
	}
}

// lookup fetches a registered table by its case sensitive name.
func (s *TableStore) lookup(name string) (*table.Table, error) {
	t, ok := s.tables[name]
	if !ok {
		return nil, fmt.Errorf("no table named %q is defined", name)
	}
	return t, nil
}
