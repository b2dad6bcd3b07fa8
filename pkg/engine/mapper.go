package engine

import (
	"merlin/pkg/sql"
	"merlin/pkg/types"
)

// columnSpecsFromAST converts parsed column declarations into storage specs.
// Parser varchar widths are 32 bit and widen onto the native int capacity.
func columnSpecsFromAST(specs []sql.ColumnSpec) []types.ColumnSpec {
	out := make([]types.ColumnSpec, len(specs))
	for i, spec := range specs {
		out[i] = types.ColumnSpec{Name: spec.Name, Type: columnTypeFromAST(spec.Type)}
	}
	return out
}

func columnTypeFromAST(t sql.ColumnType) types.ColumnType {
	switch t.Kind {
	case sql.VarcharKind:
		return types.VarcharType(int(t.MaxLength))
	case sql.NumberKind:
		return types.NumberType
	default:
		return types.BooleanType
	}
}

// valueFromAST converts a statement literal into a runtime value.
func valueFromAST(v sql.InsertValue) types.Value {
	switch v.Kind {
	case sql.VarcharKind:
		return types.NewVarcharValue(v.Str)
	case sql.NumberKind:
		return types.NewNumberValue(v.Num)
	default:
		return types.NewBoolValue(v.Bool)
	}
}
