package sql

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// errNoMatch marks a failure on an alternative's leading keyword, letting
// the statement dispatcher move on to the next alternative. Any other error
// commits the parse to that alternative's diagnostic.
var errNoMatch = errors.New("statement keyword not matched")

// SyntaxError reports what the parser expected and where the input stopped
// making sense.
type SyntaxError struct {
	Expected string
	Rest     string
}

func (e *SyntaxError) Error() string {
	rest := e.Rest
	if len(rest) > 24 {
		rest = rest[:24] + "..."
	}
	if strings.TrimSpace(rest) == "" {
		return fmt.Sprintf("expected %s at end of input", e.Expected)
	}
	return fmt.Sprintf("expected %s near %q", e.Expected, rest)
}

// parseFunc consumes a prefix of in and produces a value plus the rest.
type parseFunc[T any] func(in string) (rest string, v T, err error)

func skipSpace(in string) string {
	return strings.TrimLeft(in, " \t\r\n")
}

// keyword matches word case insensitively at the head of the input, with
// whitespace skipped on both sides. Matching is prefix only; the grammar's
// separators provide the boundaries. Punctuation tokens go through the same
// path.
func keyword(in, word string) (string, error) {
	in = skipSpace(in)
	if len(in) < len(word) || !strings.EqualFold(in[:len(word)], word) {
		return in, &SyntaxError{Expected: fmt.Sprintf("keyword %q", word), Rest: in}
	}
	return skipSpace(in[len(word):]), nil
}

// identifier matches an ASCII letter followed by letters or digits, with
// whitespace skipped on both sides. Identifiers are case sensitive.
func identifier(in string) (string, string, error) {
	in = skipSpace(in)
	n := 0
	for n < len(in) {
		c := in[n]
		isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		isDigit := c >= '0' && c <= '9'
		if isLetter || (n > 0 && isDigit) {
			n++
			continue
		}
		break
	}
	if n == 0 {
		return in, "", &SyntaxError{Expected: "identifier", Rest: in}
	}
	return skipSpace(in[n:]), in[:n], nil
}

// unsigned matches a run of decimal digits that fits in the given bit width.
func unsigned(in string, bits int) (string, uint64, error) {
	in = skipSpace(in)
	n := 0
	for n < len(in) && in[n] >= '0' && in[n] <= '9' {
		n++
	}
	if n == 0 {
		return in, 0, &SyntaxError{Expected: "number", Rest: in}
	}
	v, err := strconv.ParseUint(in[:n], 10, bits)
	if err != nil {
		return in, 0, &SyntaxError{Expected: fmt.Sprintf("%d bit number", bits), Rest: in}
	}
	return skipSpace(in[n:]), v, nil
}

// quoted matches a double quoted string. Content is taken verbatim up to the
// next quote; there are no escape sequences, so a quote cannot appear inside.
func quoted(in string) (string, string, error) {
	in = skipSpace(in)
	if len(in) == 0 || in[0] != '"' {
		return in, "", &SyntaxError{Expected: "quoted string", Rest: in}
	}
	end := strings.IndexByte(in[1:], '"')
	if end < 0 {
		return in, "", &SyntaxError{Expected: "closing quote", Rest: in}
	}
	return skipSpace(in[end+2:]), in[1 : end+1], nil
}

// sepBy1 parses one or more elements separated by the given token. Once a
// separator is consumed the next element must parse.
func sepBy1[T any](in, sep string, p parseFunc[T]) (string, []T, error) {
	rest, first, err := p(in)
	if err != nil {
		return in, nil, err
	}
	out := []T{first}
	for {
		afterSep, err := keyword(rest, sep)
		if err != nil {
			return rest, out, nil
		}
		afterElem, v, err := p(afterSep)
		if err != nil {
			return in, nil, err
		}
		out = append(out, v)
		rest = afterElem
	}
}
