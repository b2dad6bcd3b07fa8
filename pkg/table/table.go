package table

import (
	"errors"
	"fmt"
	"slices"

	"merlin/pkg/row"
	"merlin/pkg/types"
)

// PageSize is the fixed byte size of every page.
const PageSize = 4096

// ErrRowOutOfRange is returned by Get for an index at or past the row count.
var ErrRowOutOfRange = errors.New("row index out of range")

// Table is an append-only, in-memory paged store for fixed width rows. Rows
// keep insertion order and are never moved, updated or deleted. A Table is
// not safe for concurrent use; the engine serializes whole statements.
type Table struct {
	columns     []types.ColumnSpec
	pages       [][]byte
	rowSize     int
	rowsPerPage int
	rowCount    int
}

// New creates an empty table for the given schema. The row width is the sum
// of the encoded column widths; a row wider than one page cannot be stored
// and is rejected here rather than at first insert.
func New(columns []types.ColumnSpec) (*Table, error) {
	rowSize := 0
	for _, col := range columns {
		rowSize += col.Type.EncodedLength()
	}
	if rowSize == 0 {
		return nil, errors.New("schema has no columns")
	}
	if rowSize > PageSize {
		return nil, fmt.Errorf("row size %d exceeds page size %d", rowSize, PageSize)
	}
	return &Table{
		columns:     slices.Clone(columns),
		rowSize:     rowSize,
		rowsPerPage: PageSize / rowSize,
	}, nil
}

// Schema returns the column specs in declaration order.
func (t *Table) Schema() []types.ColumnSpec {
	return slices.Clone(t.columns)
}

func (t *Table) RowCount() int { return t.rowCount }

func (t *Table) RowSize() int { return t.rowSize }

func (t *Table) RowsPerPage() int { return t.rowsPerPage }

// Insert appends a row built for this table's schema. Placement is
// deterministic: a page holds RowsPerPage rows and fills completely before
// the next page is allocated, so at most one page is added per insert.
func (t *Table) Insert(r row.Row) {
	pageIdx := t.rowCount / t.rowsPerPage
	if pageIdx == len(t.pages) {
		t.pages = append(t.pages, make([]byte, PageSize))
	}
	offset := (t.rowCount % t.rowsPerPage) * t.rowSize
	encodeRow(t.pages[pageIdx][offset:offset+t.rowSize], r)
	t.rowCount++
}

// Get decodes the row at index i. The index must be below RowCount; Get
// never allocates pages. Decoded values are re-validated through row.Build,
// so reads pass the same checks as writes.
func (t *Table) Get(i int) (row.Row, error) {
	if i < 0 || i >= t.rowCount {
		return nil, fmt.Errorf("%w: %d of %d", ErrRowOutOfRange, i, t.rowCount)
	}
	pageIdx := i / t.rowsPerPage
	offset := (i % t.rowsPerPage) * t.rowSize

	values, err := decodeRow(t.pages[pageIdx][offset:offset+t.rowSize], t.columns)
	if err != nil {
		return nil, fmt.Errorf("row %d: %w", i, err)
	}
	r, err := row.Build(values, t.columns)
	if err != nil {
		return nil, fmt.Errorf("row %d: %w", i, err)
	}
	return r, nil
}
