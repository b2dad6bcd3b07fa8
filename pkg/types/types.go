package types

import "fmt"

// Kind identifies one of the engine's column type families.
type Kind int

const (
	VarcharKind Kind = iota
	NumberKind
	BooleanKind
)

func (k Kind) String() string {
	switch k {
	case VarcharKind:
		return "varchar"
	case NumberKind:
		return "number"
	case BooleanKind:
		return "boolean"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// ColumnType is a declared column type. MaxLen is the content capacity in
// bytes and is meaningful only for varchar columns.
type ColumnType struct {
	Kind   Kind
	MaxLen int
}

// VarcharType declares a varchar column holding up to maxLen bytes.
func VarcharType(maxLen int) ColumnType {
	return ColumnType{Kind: VarcharKind, MaxLen: maxLen}
}

var (
	NumberType  = ColumnType{Kind: NumberKind}
	BooleanType = ColumnType{Kind: BooleanKind}
)

// EncodedLength returns the fixed number of bytes a value of this type
// occupies inside a page slot. Varchar slots carry an 8 byte length prefix
// ahead of the content capacity. Every layout computation in the engine
// derives from this single function.
func (t ColumnType) EncodedLength() int {
	switch t.Kind {
	case VarcharKind:
		return 8 + t.MaxLen
	case NumberKind:
		return 8
	case BooleanKind:
		return 1
	default:
		return 0
	}
}

func (t ColumnType) String() string {
	if t.Kind == VarcharKind {
		return fmt.Sprintf("varchar(%d)", t.MaxLen)
	}
	return t.Kind.String()
}

// ColumnSpec pairs a column name with its declared type.
type ColumnSpec struct {
	Name string
	Type ColumnType
}

func (c ColumnSpec) String() string {
	return c.Name + " " + c.Type.String()
}
