package sql

// parseShowTables parses
//
//	show tables
func parseShowTables(in string) (string, Statement, error) {
	rest, err := keyword(in, "show")
	if err != nil {
		return in, nil, errNoMatch
	}
	if rest, err = keyword(rest, "tables"); err != nil {
		return in, nil, err
	}
	return rest, &ShowTables{}, nil
}
