package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"merlin/pkg/engine"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
)

var (
	spellStyle  = lipgloss.NewStyle().Foreground(accentColor)
	arrowStyle  = lipgloss.NewStyle().Foreground(secondaryColor).Bold(true)
	replErrText = lipgloss.NewStyle().Foreground(errorColor)
	replOkText  = lipgloss.NewStyle().Foreground(accentColor)
)

// RunREPL reads statements from r line by line and executes them against the
// store, writing rendered results to w. A line ending in a backslash
// continues onto the next line, joined with a newline. The loop ends on EOF
// or an exit/quit line.
func RunREPL(store *engine.TableStore, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)

	for {
		fmt.Fprintf(w, "%s %s ", spellStyle.Render("spell"), arrowStyle.Render("🡆"))

		statement, ok := readStatement(scanner, w)
		if !ok {
			fmt.Fprintln(w)
			return scanner.Err()
		}

		trimmed := strings.TrimSpace(statement)
		if trimmed == "" {
			continue
		}
		if strings.EqualFold(trimmed, "exit") || strings.EqualFold(trimmed, "quit") {
			return nil
		}

		result, err := store.Execute(statement)
		if err != nil {
			fmt.Fprintln(w, replErrText.Render(err.Error()))
			continue
		}
		fmt.Fprint(w, renderResult(result))
	}
}

// readStatement reads one logical statement, following trailing-backslash
// continuations. ok is false once input is exhausted.
func readStatement(scanner *bufio.Scanner, w io.Writer) (string, bool) {
	var b strings.Builder
	for {
		if !scanner.Scan() {
			return b.String(), b.Len() > 0
		}
		line := strings.TrimRight(scanner.Text(), " \t")
		if !strings.HasSuffix(line, `\`) {
			b.WriteString(line)
			return b.String(), true
		}
		b.WriteString(strings.TrimSuffix(line, `\`))
		b.WriteString("\n")
		fmt.Fprintf(w, "      %s ", arrowStyle.Render("🡆"))
	}
}

// renderResult draws tabular results as a boxed table and plain messages as
// a single line.
func renderResult(result engine.Result) string {
	if len(result.Columns) == 0 {
		return replOkText.Render(result.Message) + "\n"
	}

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(bgLight)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return lipgloss.NewStyle().Foreground(primaryColor).Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(result.Columns...).
		Rows(result.Rows...)

	return t.String() + "\n" + replOkText.Render(result.Message) + "\n"
}
