package sql

import "errors"

var statementParsers = []func(string) (string, Statement, error){
	parseCreateTable,
	parseSelect,
	parseInsert,
	parseShowTables,
	parseImportCsv,
}

// Parse recognizes one statement at the head of the input and returns it
// together with the unconsumed remainder; callers may ignore trailing
// content. Alternatives are tried in declaration order. An alternative gives
// way only while its leading keyword is absent; once that keyword matches,
// the alternative's own diagnostic stands.
func Parse(input string) (Statement, string, error) {
	for _, parse := range statementParsers {
		rest, stmt, err := parse(input)
		if err == nil {
			return stmt, rest, nil
		}
		if errors.Is(err, errNoMatch) {
			continue
		}
		return nil, input, err
	}
	return nil, input, &SyntaxError{
		Expected: "a create table, select, insert into, show tables or import csv statement",
		Rest:     skipSpace(input),
	}
}
