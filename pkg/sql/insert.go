package sql

// parseInsert parses
//
//	insert into <table> ( <col> {, <col>} ) values ( <val> {, <val>} )
func parseInsert(in string) (string, Statement, error) {
	rest, err := keyword(in, "insert")
	if err != nil {
		return in, nil, errNoMatch
	}
	if rest, err = keyword(rest, "into"); err != nil {
		return in, nil, err
	}
	var name string
	if rest, name, err = identifier(rest); err != nil {
		return in, nil, err
	}
	if rest, err = keyword(rest, "("); err != nil {
		return in, nil, err
	}
	var cols []string
	if rest, cols, err = sepBy1(rest, ",", identifier); err != nil {
		return in, nil, err
	}
	if rest, err = keyword(rest, ")"); err != nil {
		return in, nil, err
	}
	if rest, err = keyword(rest, "values"); err != nil {
		return in, nil, err
	}
	if rest, err = keyword(rest, "("); err != nil {
		return in, nil, err
	}
	var vals []InsertValue
	if rest, vals, err = sepBy1(rest, ",", parseInsertValue); err != nil {
		return in, nil, err
	}
	if rest, err = keyword(rest, ")"); err != nil {
		return in, nil, err
	}
	return rest, &Insert{TableName: name, Columns: cols, Values: vals}, nil
}

// parseInsertValue tries a quoted string, an unsigned number and the boolean
// keywords, in that order. The boolean keywords match case insensitively
// like any keyword.
func parseInsertValue(in string) (string, InsertValue, error) {
	if rest, s, err := quoted(in); err == nil {
		return rest, InsertValue{Kind: VarcharKind, Str: s}, nil
	}
	if rest, n, err := unsigned(in, 64); err == nil {
		return rest, InsertValue{Kind: NumberKind, Num: n}, nil
	}
	if rest, err := keyword(in, "true"); err == nil {
		return rest, InsertValue{Kind: BooleanKind, Bool: true}, nil
	}
	if rest, err := keyword(in, "false"); err == nil {
		return rest, InsertValue{Kind: BooleanKind, Bool: false}, nil
	}
	return in, InsertValue{}, &SyntaxError{
		Expected: "quoted string, number, true or false",
		Rest:     skipSpace(in),
	}
}
