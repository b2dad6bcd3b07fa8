package sql

// parseImportCsv parses
//
//	import csv from "<path>" into <table> with ( <col> = <header> {, ...} ) [truncate]
func parseImportCsv(in string) (string, Statement, error) {
	rest, err := keyword(in, "import")
	if err != nil {
		return in, nil, errNoMatch
	}
	if rest, err = keyword(rest, "csv"); err != nil {
		return in, nil, err
	}
	if rest, err = keyword(rest, "from"); err != nil {
		return in, nil, err
	}
	var path string
	if rest, path, err = quoted(rest); err != nil {
		return in, nil, err
	}
	if rest, err = keyword(rest, "into"); err != nil {
		return in, nil, err
	}
	var name string
	if rest, name, err = identifier(rest); err != nil {
		return in, nil, err
	}
	if rest, err = keyword(rest, "with"); err != nil {
		return in, nil, err
	}
	if rest, err = keyword(rest, "("); err != nil {
		return in, nil, err
	}
	var pairs []mappingPair
	if rest, pairs, err = sepBy1(rest, ",", parseMappingPair); err != nil {
		return in, nil, err
	}
	if rest, err = keyword(rest, ")"); err != nil {
		return in, nil, err
	}

	stmt := &ImportCsv{
		FilePath:  path,
		TableName: name,
		Mapping:   make(map[string]string, len(pairs)),
	}
	for _, p := range pairs {
		stmt.Mapping[p.column] = p.header
	}
	if afterTruncate, err := keyword(rest, "truncate"); err == nil {
		rest = afterTruncate
		stmt.Truncate = true
	}
	return rest, stmt, nil
}

type mappingPair struct {
	column string
	header string
}

// parseMappingPair parses <table column> = <csv header>.
func parseMappingPair(in string) (string, mappingPair, error) {
	rest, col, err := identifier(in)
	if err != nil {
		return in, mappingPair{}, err
	}
	if rest, err = keyword(rest, "="); err != nil {
		return in, mappingPair{}, err
	}
	var header string
	if rest, header, err = identifier(rest); err != nil {
		return in, mappingPair{}, err
	}
	return rest, mappingPair{column: col, header: header}, nil
}
