package sql

// parseCreateTable parses
//
//	create table <name> ( <col> <type> {, <col> <type>} )
func parseCreateTable(in string) (string, Statement, error) {
	rest, err := keyword(in, "create")
	if err != nil {
		return in, nil, errNoMatch
	}
	if rest, err = keyword(rest, "table"); err != nil {
		return in, nil, err
	}
	var name string
	if rest, name, err = identifier(rest); err != nil {
		return in, nil, err
	}
	if rest, err = keyword(rest, "("); err != nil {
		return in, nil, err
	}
	var cols []ColumnSpec
	if rest, cols, err = sepBy1(rest, ",", parseColumnSpec); err != nil {
		return in, nil, err
	}
	if rest, err = keyword(rest, ")"); err != nil {
		return in, nil, err
	}
	return rest, &CreateTable{TableName: name, Columns: cols}, nil
}

func parseColumnSpec(in string) (string, ColumnSpec, error) {
	rest, name, err := identifier(in)
	if err != nil {
		return in, ColumnSpec{}, err
	}
	var typ ColumnType
	if rest, typ, err = parseColumnType(rest); err != nil {
		return in, ColumnSpec{}, err
	}
	return rest, ColumnSpec{Name: name, Type: typ}, nil
}

// parseColumnType parses varchar ( <width> ) | number | boolean.
func parseColumnType(in string) (string, ColumnType, error) {
	if rest, err := keyword(in, "varchar"); err == nil {
		if rest, err = keyword(rest, "("); err != nil {
			return in, ColumnType{}, err
		}
		var width uint64
		if rest, width, err = unsigned(rest, 32); err != nil {
			return in, ColumnType{}, err
		}
		if rest, err = keyword(rest, ")"); err != nil {
			return in, ColumnType{}, err
		}
		return rest, ColumnType{Kind: VarcharKind, MaxLength: uint32(width)}, nil
	}
	if rest, err := keyword(in, "number"); err == nil {
		return rest, ColumnType{Kind: NumberKind}, nil
	}
	if rest, err := keyword(in, "boolean"); err == nil {
		return rest, ColumnType{Kind: BooleanKind}, nil
	}
	return in, ColumnType{}, &SyntaxError{
		Expected: `column type "varchar", "number" or "boolean"`,
		Rest:     skipSpace(in),
	}
}
