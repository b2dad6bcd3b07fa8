package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_CreateTable(t *testing.T) {
	testCases := []struct {
		desc     string
		input    string
		expected *CreateTable
	}{
		{
			desc:  "single column",
			input: "create table foo(lol varchar(10))",
			expected: &CreateTable{
				TableName: "foo",
				Columns: []ColumnSpec{
					{Name: "lol", Type: ColumnType{Kind: VarcharKind, MaxLength: 10}},
				},
			},
		},
		{
			desc:  "all three types",
			input: `create table person (name varchar(5), age number, male boolean)`,
			expected: &CreateTable{
				TableName: "person",
				Columns: []ColumnSpec{
					{Name: "name", Type: ColumnType{Kind: VarcharKind, MaxLength: 5}},
					{Name: "age", Type: ColumnType{Kind: NumberKind}},
					{Name: "male", Type: ColumnType{Kind: BooleanKind}},
				},
			},
		},
		{
			desc:  "generous whitespace",
			input: "  create    table   foo   (  lol   varchar  ( 10 )  ,kek number , ok   boolean )  ",
			expected: &CreateTable{
				TableName: "foo",
				Columns: []ColumnSpec{
					{Name: "lol", Type: ColumnType{Kind: VarcharKind, MaxLength: 10}},
					{Name: "kek", Type: ColumnType{Kind: NumberKind}},
					{Name: "ok", Type: ColumnType{Kind: BooleanKind}},
				},
			},
		},
		{
			desc:  "keywords fold case, identifiers keep it",
			input: "CREATE TABLE Foo(Bar VARCHAR(5), baz BOOLEAN)",
			expected: &CreateTable{
				TableName: "Foo",
				Columns: []ColumnSpec{
					{Name: "Bar", Type: ColumnType{Kind: VarcharKind, MaxLength: 5}},
					{Name: "baz", Type: ColumnType{Kind: BooleanKind}},
				},
			},
		},
		{
			desc:  "statements may span lines",
			input: "create table t (\n  a number,\n  b boolean\n)",
			expected: &CreateTable{
				TableName: "t",
				Columns: []ColumnSpec{
					{Name: "a", Type: ColumnType{Kind: NumberKind}},
					{Name: "b", Type: ColumnType{Kind: BooleanKind}},
				},
			},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			stmt, rest, err := Parse(tC.input)
			require.NoError(t, err)
			assert.Equal(t, tC.expected, stmt)
			assert.Equal(t, "", rest)
		})
	}
}

func TestParse_CreateTableErrors(t *testing.T) {
	testCases := []struct {
		desc        string
		input       string
		errContains string
	}{
		{"misspelled table keyword", "create tab foo (a number)", `keyword "table"`},
		{"missing column list", "create table foo()", "identifier"},
		{"varchar without width", "create table foo (a varchar)", `keyword "("`},
		{"varchar width too wide", "create table foo (a varchar(4294967296))", "32 bit number"},
		{"unknown column type", "create table foo (a floaty)", `column type`},
		{"numeric table name", "create table 1foo (a number)", "identifier"},
		{"unterminated column list", "create table foo (a number", `keyword ")"`},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			_, _, err := Parse(tC.input)
			assert.ErrorContains(t, err, tC.errContains)
		})
	}
}

func TestParse_Select(t *testing.T) {
	testCases := []struct {
		desc     string
		input    string
		expected *Select
	}{
		{
			desc:  "named columns",
			input: "select lol, kek from foo",
			expected: &Select{
				Columns:   []SelectColumn{{Name: "lol"}, {Name: "kek"}},
				TableName: "foo",
			},
		},
		{
			desc:  "wildcard",
			input: "select * from foo",
			expected: &Select{
				Columns:   []SelectColumn{{Wildcard: true}},
				TableName: "foo",
			},
		},
		{
			desc:  "wildcard mixed with names parses, execution decides",
			input: "select *, lol from foo",
			expected: &Select{
				Columns:   []SelectColumn{{Wildcard: true}, {Name: "lol"}},
				TableName: "foo",
			},
		},
		{
			desc:  "tight commas",
			input: "select name,age from person",
			expected: &Select{
				Columns:   []SelectColumn{{Name: "name"}, {Name: "age"}},
				TableName: "person",
			},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			stmt, rest, err := Parse(tC.input)
			require.NoError(t, err)
			assert.Equal(t, tC.expected, stmt)
			assert.Equal(t, "", rest)
		})
	}

	t.Run("missing table name", func(t *testing.T) {
		_, _, err := Parse("select a from")
		assert.ErrorContains(t, err, "identifier at end of input")
	})
}

func TestParse_Insert(t *testing.T) {
	testCases := []struct {
		desc     string
		input    string
		expected *Insert
	}{
		{
			desc:  "string and number values",
			input: `insert into foo (lol, kek) values ("hello", 42)`,
			expected: &Insert{
				TableName: "foo",
				Columns:   []string{"lol", "kek"},
				Values: []InsertValue{
					{Kind: VarcharKind, Str: "hello"},
					{Kind: NumberKind, Num: 42},
				},
			},
		},
		{
			desc:  "boolean keywords fold case",
			input: `insert into t (a, b, c) values (TRUE, false, "x")`,
			expected: &Insert{
				TableName: "t",
				Columns:   []string{"a", "b", "c"},
				Values: []InsertValue{
					{Kind: BooleanKind, Bool: true},
					{Kind: BooleanKind, Bool: false},
					{Kind: VarcharKind, Str: "x"},
				},
			},
		},
		{
			desc:  "empty string value",
			input: `insert into t (a) values ("")`,
			expected: &Insert{
				TableName: "t",
				Columns:   []string{"a"},
				Values:    []InsertValue{{Kind: VarcharKind, Str: ""}},
			},
		},
		{
			desc:  "string content keeps spaces",
			input: `insert into t (a) values ("hello world")`,
			expected: &Insert{
				TableName: "t",
				Columns:   []string{"a"},
				Values:    []InsertValue{{Kind: VarcharKind, Str: "hello world"}},
			},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			stmt, rest, err := Parse(tC.input)
			require.NoError(t, err)
			assert.Equal(t, tC.expected, stmt)
			assert.Equal(t, "", rest)
		})
	}
}

func TestParse_InsertErrors(t *testing.T) {
	testCases := []struct {
		desc        string
		input       string
		errContains string
	}{
		{"missing values keyword", "insert into t (a) (1)", `keyword "values"`},
		{"bare word value", "insert into t (a) values (foo)", "quoted string, number, true or false"},
		{"missing into", "insert t (a) values (1)", `keyword "into"`},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			_, _, err := Parse(tC.input)
			assert.ErrorContains(t, err, tC.errContains)
		})
	}
}

func TestParse_ShowTables(t *testing.T) {
	t.Run("lowercase", func(t *testing.T) {
		stmt, rest, err := Parse("show tables")
		require.NoError(t, err)
		assert.Equal(t, &ShowTables{}, stmt)
		assert.Equal(t, "", rest)
	})

	t.Run("uppercase", func(t *testing.T) {
		stmt, _, err := Parse("SHOW TABLES")
		require.NoError(t, err)
		assert.Equal(t, &ShowTables{}, stmt)
	})

	t.Run("show alone is incomplete", func(t *testing.T) {
		_, _, err := Parse("show")
		assert.ErrorContains(t, err, `keyword "tables"`)
	})
}

func TestParse_ImportCsv(t *testing.T) {
	t.Run("full form", func(t *testing.T) {
		stmt, rest, err := Parse(`import csv from "people.csv" into person with (name = full, age = years)`)
		require.NoError(t, err)
		assert.Equal(t, &ImportCsv{
			FilePath:  "people.csv",
			TableName: "person",
			Mapping:   map[string]string{"name": "full", "age": "years"},
		}, stmt)
		assert.Equal(t, "", rest)
	})

	t.Run("with truncate", func(t *testing.T) {
		stmt, _, err := Parse(`IMPORT CSV FROM "/tmp/x.csv" INTO t WITH (a=b) TRUNCATE`)
		require.NoError(t, err)
		assert.Equal(t, &ImportCsv{
			FilePath:  "/tmp/x.csv",
			TableName: "t",
			Mapping:   map[string]string{"a": "b"},
			Truncate:  true,
		}, stmt)
	})

	t.Run("path must be quoted", func(t *testing.T) {
		_, _, err := Parse("import csv from people.csv into t with (a=b)")
		assert.ErrorContains(t, err, "quoted string")
	})

	t.Run("mapping is mandatory", func(t *testing.T) {
		_, _, err := Parse(`import csv from "x" into t`)
		assert.ErrorContains(t, err, `keyword "with"`)
	})
}

func TestParse_Dispatch(t *testing.T) {
	t.Run("unrecognized statement", func(t *testing.T) {
		_, _, err := Parse("explain select")
		assert.ErrorContains(t, err, "a create table, select, insert into, show tables or import csv statement")
	})

	t.Run("empty input", func(t *testing.T) {
		_, _, err := Parse("   ")
		assert.Error(t, err)
	})

	t.Run("trailing content is left to the caller", func(t *testing.T) {
		stmt, rest, err := Parse("show tables; select")
		require.NoError(t, err)
		assert.Equal(t, &ShowTables{}, stmt)
		assert.Equal(t, "; select", rest)
	})

	t.Run("a matched prefix keeps its own diagnostic", func(t *testing.T) {
		_, _, err := Parse("create nonsense")
		assert.ErrorContains(t, err, `keyword "table"`)
	})
}
