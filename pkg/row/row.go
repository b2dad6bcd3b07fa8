package row

import (
	"fmt"
	"slices"
	"strings"

	"merlin/pkg/types"
)

// Entry is one stored value together with its encoded width in bytes. The
// width always comes from the declared column type, never from the value.
type Entry struct {
	Value types.Value
	Size  int
}

// Row is a validated sequence of entries in schema column order.
type Row []Entry

// ColumnNameMismatchError reports that the set of supplied column names does
// not exactly match the schema's names. Both sides are sorted.
type ColumnNameMismatchError struct {
	Actual   []string
	Expected []string
}

func (e *ColumnNameMismatchError) Error() string {
	return fmt.Sprintf("column names [%s] do not match schema columns [%s]",
		strings.Join(e.Actual, ", "), strings.Join(e.Expected, ", "))
}

// ValueTypeMismatchError reports a value whose inferred type does not fit
// the declared column type.
type ValueTypeMismatchError struct {
	Column   string
	Expected types.ColumnType
	Actual   types.ColumnType
}

func (e *ValueTypeMismatchError) Error() string {
	return fmt.Sprintf("value for column %q has type %s, want %s",
		e.Column, e.Actual, e.Expected)
}

// Build validates named values against a schema and produces a Row.
//
// The supplied names must equal the schema's names as a set. Each value's
// inferred type must fit the declared column type; a varchar fits when its
// byte length is at most the declared capacity. The first mismatch aborts.
// Build is the only row constructor, reads re-validate through it too.
func Build(values map[string]types.Value, schema []types.ColumnSpec) (Row, error) {
	if err := checkNames(values, schema); err != nil {
		return nil, err
	}
	r := make(Row, 0, len(schema))
	for _, col := range schema {
		v := values[col.Name]
		if !fits(v.Type(), col.Type) {
			return nil, &ValueTypeMismatchError{
				Column:   col.Name,
				Expected: col.Type,
				Actual:   v.Type(),
			}
		}
		r = append(r, Entry{Value: v, Size: col.Type.EncodedLength()})
	}
	return r, nil
}

// checkNames compares name sets, so a duplicated schema name counts once.
func checkNames(values map[string]types.Value, schema []types.ColumnSpec) error {
	schemaNames := make(map[string]struct{}, len(schema))
	for _, col := range schema {
		schemaNames[col.Name] = struct{}{}
	}

	match := len(values) == len(schemaNames)
	if match {
		for name := range schemaNames {
			if _, ok := values[name]; !ok {
				match = false
				break
			}
		}
	}
	if match {
		return nil
	}

	actual := make([]string, 0, len(values))
	for name := range values {
		actual = append(actual, name)
	}
	slices.Sort(actual)
	expected := make([]string, 0, len(schemaNames))
	for name := range schemaNames {
		expected = append(expected, name)
	}
	slices.Sort(expected)
	return &ColumnNameMismatchError{Actual: actual, Expected: expected}
}

// fits reports whether a value of inferred type actual may be stored in a
// column declared as declared.
func fits(actual, declared types.ColumnType) bool {
	if actual.Kind != declared.Kind {
		return false
	}
	if actual.Kind == types.VarcharKind {
		return actual.MaxLen <= declared.MaxLen
	}
	return true
}
