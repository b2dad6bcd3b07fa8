package sql

import "fmt"

// TypeKind identifies a column type family as written in a statement.
type TypeKind int

const (
	VarcharKind TypeKind = iota
	NumberKind
	BooleanKind
)

// ColumnType is the parsed form of a column type. Varchar widths are 32 bit
// in the grammar and widen when mapped onto storage types.
type ColumnType struct {
	Kind      TypeKind
	MaxLength uint32
}

// ColumnSpec is one column declaration inside CREATE TABLE.
type ColumnSpec struct {
	Name string
	Type ColumnType
}

// Statement is the closed set of parsed statements. Statements are pure
// data; validation against live schemas happens in the engine.
type Statement interface {
	stmt()
}

type CreateTable struct {
	TableName string
	Columns   []ColumnSpec
}

type Select struct {
	Columns   []SelectColumn
	TableName string
}

// SelectColumn is one projection element, either a named column or the
// wildcard.
type SelectColumn struct {
	Name     string
	Wildcard bool
}

type Insert struct {
	TableName string
	Columns   []string
	Values    []InsertValue
}

// InsertValue is one literal in an INSERT values list. Kind selects which
// payload field is meaningful.
type InsertValue struct {
	Kind TypeKind
	Str  string
	Num  uint64
	Bool bool
}

func (v InsertValue) String() string {
	switch v.Kind {
	case VarcharKind:
		return fmt.Sprintf("%q", v.Str)
	case NumberKind:
		return fmt.Sprintf("%d", v.Num)
	default:
		return fmt.Sprintf("%t", v.Bool)
	}
}

type ShowTables struct{}

type ImportCsv struct {
	FilePath  string
	TableName string
	// Mapping assigns a CSV header name to each table column name.
	Mapping  map[string]string
	Truncate bool
}

func (*CreateTable) stmt() {}
func (*Select) stmt()      {}
func (*Insert) stmt()      {}
func (*ShowTables) stmt()  {}
func (*ImportCsv) stmt()   {}
