package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustExecute(t *testing.T, s *TableStore, statement string) Result {
	t.Helper()
	res, err := s.Execute(statement)
	require.NoError(t, err, "statement: %s", statement)
	return res
}

func newPersonStore(t *testing.T) *TableStore {
	t.Helper()
	s := NewTableStore()
	mustExecute(t, s, "create table person (name varchar(5), age number, male boolean)")
	return s
}

func TestExecute_PersonScenario(t *testing.T) {
	s := newPersonStore(t)
	mustExecute(t, s, `insert into person (name, age, male) values ("bob", 42, true)`)

	res := mustExecute(t, s, "select name, age from person")
	assert.Equal(t, []string{"name", "age"}, res.Columns)
	assert.Equal(t, [][]string{{"bob", "42"}}, res.Rows)

	res = mustExecute(t, s, "select * from person")
	assert.Equal(t, []string{"name", "age", "male"}, res.Columns)
	assert.Equal(t, [][]string{{"bob", "42", "true"}}, res.Rows)
}

func TestExecute_SelectKeepsInsertionOrder(t *testing.T) {
	s := newPersonStore(t)
	mustExecute(t, s, `insert into person (name, age, male) values ("bob", 42, true)`)
	mustExecute(t, s, `insert into person (name, age, male) values ("alice", 30, false)`)
	mustExecute(t, s, `insert into person (name, age, male) values ("eve", 7, false)`)

	res := mustExecute(t, s, "select name from person")
	assert.Equal(t, [][]string{{"bob"}, {"alice"}, {"eve"}}, res.Rows)
	assert.Equal(t, "3 row(s)", res.Message)
}

func TestExecute_ProjectionOrderFollowsStatement(t *testing.T) {
	s := newPersonStore(t)
	mustExecute(t, s, `insert into person (name, age, male) values ("bob", 42, true)`)

	res := mustExecute(t, s, "select male, name from person")
	assert.Equal(t, []string{"male", "name"}, res.Columns)
	assert.Equal(t, [][]string{{"true", "bob"}}, res.Rows)
}

func TestExecute_CreateTable(t *testing.T) {
	s := NewTableStore()
	res := mustExecute(t, s, "create table person (name varchar(5), age number, male boolean)")
	assert.Contains(t, res.Message, "row size 22")

	t.Run("row wider than a page", func(t *testing.T) {
		_, err := s.Execute("create table blobs (data varchar(5000))")
		assert.ErrorContains(t, err, "exceeds page size")
	})

	t.Run("recreating a name replaces the table", func(t *testing.T) {
		mustExecute(t, s, `insert into person (name, age, male) values ("bob", 42, true)`)
		mustExecute(t, s, "create table person (nick varchar(3))")

		res := mustExecute(t, s, "select * from person")
		assert.Equal(t, []string{"nick"}, res.Columns)
		assert.Empty(t, res.Rows)
	})
}

func TestExecute_Insert(t *testing.T) {
	s := newPersonStore(t)

	res := mustExecute(t, s, `insert into person (name, age, male) values ("bob", 42, true)`)
	assert.Equal(t, 1, res.RowsAffected)
	assert.Contains(t, res.Message, "1 total")

	res = mustExecute(t, s, `insert into person (male, name, age) values (false, "alice", 30)`)
	assert.Contains(t, res.Message, "2 total")

	rows := mustExecute(t, s, "select name from person").Rows
	assert.Equal(t, [][]string{{"bob"}, {"alice"}}, rows)
}

func TestExecute_InsertErrors(t *testing.T) {
	s := newPersonStore(t)

	testCases := []struct {
		desc        string
		statement   string
		errContains string
	}{
		{
			"unknown table",
			`insert into ghost (a) values (1)`,
			`no table named "ghost" is defined`,
		},
		{
			"misspelled column",
			`insert into person (nam, age, male) values ("bob", 42, true)`,
			"do not match schema",
		},
		{
			"fewer values than columns",
			`insert into person (name, age, male) values ("bob", 42)`,
			"do not match schema",
		},
		{
			"more values than columns",
			`insert into person (name) values ("bob", 42)`,
			"do not match schema",
		},
		{
			"kind mismatch",
			`insert into person (name, age, male) values ("bob", 42, 1)`,
			`value for column "male"`,
		},
		{
			"varchar over capacity",
			`insert into person (name, age, male) values ("maximilian", 42, true)`,
			"has type varchar(10), want varchar(5)",
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			_, err := s.Execute(tC.statement)
			assert.ErrorContains(t, err, tC.errContains)
		})
	}

	// none of the failed inserts left a row behind
	assert.Empty(t, mustExecute(t, s, "select * from person").Rows)
}

func TestExecute_SelectErrors(t *testing.T) {
	s := newPersonStore(t)

	t.Run("unknown columns reported together", func(t *testing.T) {
		_, err := s.Execute("select name, height, weight from person")
		assert.ErrorContains(t, err, "unknown column(s): height, weight")
	})

	t.Run("wildcard mixed with names", func(t *testing.T) {
		_, err := s.Execute("select *, name from person")
		assert.ErrorContains(t, err, "cannot be combined")
	})

	t.Run("unknown table", func(t *testing.T) {
		_, err := s.Execute("select * from ghost")
		assert.ErrorContains(t, err, `no table named "ghost"`)
	})

	t.Run("table names are case sensitive", func(t *testing.T) {
		_, err := s.Execute("select * from Person")
		assert.ErrorContains(t, err, `no table named "Person"`)
	})
}

func TestExecute_ShowTables(t *testing.T) {
	s := NewTableStore()

	res := mustExecute(t, s, "show tables")
	assert.Equal(t, "0 table(s)", res.Message)
	assert.Empty(t, res.Rows)

	mustExecute(t, s, "create table wands (core varchar(10), power number)")
	mustExecute(t, s, "create table apprentices (name varchar(8))")

	res = mustExecute(t, s, "show tables")
	assert.Equal(t, []string{"table", "columns"}, res.Columns)
	assert.Equal(t, [][]string{
		{"apprentices", "name varchar(8)"},
		{"wands", "core varchar(10), power number"},
	}, res.Rows)
}

func TestExecute_ImportCsv(t *testing.T) {
	writeCSV := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "people.csv")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("imports every record", func(t *testing.T) {
		s := newPersonStore(t)
		path := writeCSV(t, "full,years,m\nbob,42,true\nalice,30,false\neve,7,false\n")

		res := mustExecute(t, s, fmt.Sprintf(
			`import csv from "%s" into person with (name = full, age = years, male = m)`, path))
		assert.Equal(t, 3, res.RowsAffected)
		assert.Contains(t, res.Message, "3 row(s) imported")

		rows := mustExecute(t, s, "select name, age from person").Rows
		assert.Equal(t, [][]string{{"bob", "42"}, {"alice", "30"}, {"eve", "7"}}, rows)
	})

	t.Run("truncate clips long values", func(t *testing.T) {
		s := newPersonStore(t)
		path := writeCSV(t, "full,years,m\nmaximilian,42,true\n")

		mustExecute(t, s, fmt.Sprintf(
			`import csv from "%s" into person with (name = full, age = years, male = m) truncate`, path))

		rows := mustExecute(t, s, "select name from person").Rows
		assert.Equal(t, [][]string{{"maxim"}}, rows)
	})

	t.Run("a bad record stops the import, prior rows stand", func(t *testing.T) {
		s := newPersonStore(t)
		path := writeCSV(t, "full,years,m\nbob,42,true\nalice,old,false\neve,7,false\n")

		_, err := s.Execute(fmt.Sprintf(
			`import csv from "%s" into person with (name = full, age = years, male = m)`, path))
		assert.ErrorContains(t, err, "stopped after 1 row(s)")
		assert.ErrorContains(t, err, "record 2")

		rows := mustExecute(t, s, "select name from person").Rows
		assert.Equal(t, [][]string{{"bob"}}, rows)
	})

	t.Run("unknown table", func(t *testing.T) {
		s := NewTableStore()
		_, err := s.Execute(`import csv from "x.csv" into ghost with (a = b)`)
		assert.ErrorContains(t, err, `no table named "ghost"`)
	})
}

func TestExecute_SyntaxError(t *testing.T) {
	s := NewTableStore()
	_, err := s.Execute("conjure chair")
	assert.ErrorContains(t, err, "syntax error")
}

func TestExecute_MultilineStatement(t *testing.T) {
	s := newPersonStore(t)
	// continuation in the front end joins lines with newlines
	statement := "insert into person (name, age, male)\nvalues (\"bob\", 42,\ntrue)"
	res := mustExecute(t, s, statement)
	assert.Equal(t, 1, res.RowsAffected)
}

func TestExecute_TrailingContentIgnored(t *testing.T) {
	s := newPersonStore(t)
	res := mustExecute(t, s, "show tables; drop everything")
	assert.Equal(t, "1 table(s)", res.Message)
}
