package sql

// parseSelect parses
//
//	select <* | col {, col}> from <table>
//
// Each list element may independently be the wildcard; whether mixing makes
// sense is decided at execution time.
func parseSelect(in string) (string, Statement, error) {
	rest, err := keyword(in, "select")
	if err != nil {
		return in, nil, errNoMatch
	}
	var cols []SelectColumn
	if rest, cols, err = sepBy1(rest, ",", parseSelectColumn); err != nil {
		return in, nil, err
	}
	if rest, err = keyword(rest, "from"); err != nil {
		return in, nil, err
	}
	var name string
	if rest, name, err = identifier(rest); err != nil {
		return in, nil, err
	}
	return rest, &Select{Columns: cols, TableName: name}, nil
}

func parseSelectColumn(in string) (string, SelectColumn, error) {
	if rest, err := keyword(in, "*"); err == nil {
		return rest, SelectColumn{Wildcard: true}, nil
	}
	rest, name, err := identifier(in)
	if err != nil {
		return in, SelectColumn{}, &SyntaxError{
			Expected: `column name or "*"`,
			Rest:     skipSpace(in),
		}
	}
	return rest, SelectColumn{Name: name}, nil
}
