package ui

import (
	"fmt"
	"strings"
	"time"

	"merlin/pkg/engine"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the TUI application state: a statement editor on top, the last
// result (table, message or error) below it.
type Model struct {
	store       *engine.TableStore
	editor      textarea.Model
	resultView  viewport.Model
	resultTable table.Model
	spinner     spinner.Model
	help        help.Model

	width      int
	height     int
	executing  bool
	showHelp   bool
	lastResult engine.Result
	lastError  error
	history    []string

	lastDuration time.Duration
	keys         keyMap
}

func NewModel(store *engine.TableStore) Model {
	ta := textarea.New()
	ta.Placeholder = "Enter a statement, end a line with \\ to continue..."
	ta.CharLimit = 5000
	ta.ShowLineNumbers = true
	ta.SetHeight(4)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(bgLight)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(textMuted)
	ta.FocusedStyle.Text = lipgloss.NewStyle().Foreground(textPrimary)
	ta.FocusedStyle.LineNumber = lipgloss.NewStyle().Foreground(textMuted)

	vp := viewport.New(80, 10)
	vp.Style = resultStyle

	t := table.New(
		table.WithColumns([]table.Column{{Title: "Results", Width: 80}}),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(primaryColor).
		BorderBottom(true).
		Bold(true).
		Foreground(primaryColor)
	s.Selected = s.Selected.
		Foreground(bgDark).
		Background(secondaryColor).
		Bold(false)
	t.SetStyles(s)

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(primaryColor)

	return Model{
		store:       store,
		editor:      ta,
		resultView:  vp,
		resultTable: t,
		spinner:     sp,
		help:        help.New(),
		keys:        keys,
		history:     make([]string, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		textarea.Blink,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()

	case tea.KeyMsg:
		if m.executing {
			return m, nil // ignore input while executing
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Execute):
			text := m.editor.Value()
			// a trailing backslash joins the next line onto this statement
			if strings.HasSuffix(text, `\`) {
				m.editor.SetValue(strings.TrimSuffix(text, `\`) + "\n")
				return m, nil
			}
			if strings.TrimSpace(text) != "" {
				m.executing = true
				return m, m.executeStatement(text)
			}

		case key.Matches(msg, m.keys.Clear):
			m.editor.SetValue("")
			m.lastResult = engine.Result{}
			m.lastError = nil

		case key.Matches(msg, m.keys.ShowTables):
			m.executing = true
			return m, m.executeStatement("SHOW TABLES")

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		}

	case resultMsg:
		m.executing = false
		m.lastResult = msg.result
		m.lastError = msg.err
		m.lastDuration = msg.duration

		if msg.err == nil {
			m.history = append(m.history, msg.statement)
			m.editor.SetValue("")
			if len(m.lastResult.Rows) > 0 {
				m.resultTable.Focus()
			}
		}

	case spinner.TickMsg:
		if m.executing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	if !m.executing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		cmds = append(cmds, cmd)

		m.resultView, cmd = m.resultView.Update(msg)
		cmds = append(cmds, cmd)

		m.resultTable, cmd = m.resultTable.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderEditor())

	switch {
	case m.executing:
		sections = append(sections, m.renderExecuting())
	case m.lastError != nil:
		sections = append(sections, m.renderError())
	case len(m.lastResult.Rows) > 0:
		sections = append(sections, m.renderResultTable())
	case m.lastResult.Message != "":
		sections = append(sections, m.renderMessage())
	}

	sections = append(sections, m.renderStatusBar())

	if m.showHelp {
		sections = append(sections, m.renderHelp())
	}

	return appStyle.Render(strings.Join(sections, "\n"))
}

func (m Model) renderHelp() string {
	helpText := m.help.FullHelpView([][]key.Binding{
		{
			m.keys.Execute,
			m.keys.Clear,
			m.keys.ShowTables,
			m.keys.Help,
			m.keys.Quit,
		},
	})

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(primaryColor).
		Padding(1, 2).
		Background(bgMedium).
		Render(helpText)
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("🧙 merlin")
	info := lipgloss.NewStyle().
		Foreground(textSecondary).
		Render(fmt.Sprintf("Statements cast: %d", len(m.history)))

	header := lipgloss.JoinHorizontal(lipgloss.Left, title, "  ", info)

	separatorWidth := m.width - 4
	if separatorWidth < 0 {
		separatorWidth = 0
	}
	separator := lipgloss.NewStyle().
		Foreground(bgLight).
		Render(strings.Repeat("─", separatorWidth))

	return header + "\n" + separator
}

func (m Model) renderEditor() string {
	label := lipgloss.NewStyle().
		Foreground(primaryColor).
		Bold(true).
		Render("Statement")

	return fmt.Sprintf("%s\n%s", label, editorStyle.Render(m.editor.View()))
}

func (m Model) renderExecuting() string {
	content := lipgloss.JoinHorizontal(
		lipgloss.Left,
		m.spinner.View(),
		" Executing...",
	)

	return lipgloss.NewStyle().
		Foreground(primaryColor).
		Padding(1, 0).
		Render(content)
}

func (m Model) renderError() string {
	icon := errorStyle.Render(" ⚠ ERROR ")
	message := lipgloss.NewStyle().
		Foreground(errorColor).
		Render(m.lastError.Error())

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(errorColor).
		Padding(0, 1).
		Render(fmt.Sprintf("%s %s", icon, message))
}

func (m Model) renderResultTable() string {
	columns := make([]table.Column, len(m.lastResult.Columns))
	for i, col := range m.lastResult.Columns {
		columns[i] = table.Column{
			Title: col,
			Width: m.columnWidth(col, i),
		}
	}

	rows := make([]table.Row, len(m.lastResult.Rows))
	for i, row := range m.lastResult.Rows {
		rows[i] = table.Row(row)
	}

	m.resultTable.SetColumns(columns)
	m.resultTable.SetRows(rows)

	header := lipgloss.NewStyle().
		Foreground(accentColor).
		Bold(true).
		Render(fmt.Sprintf("✓ %s (%v)", m.lastResult.Message, m.lastDuration))

	return fmt.Sprintf("%s\n%s", header, m.resultTable.View())
}

func (m Model) renderMessage() string {
	icon := successStyle.Render(" ✓ ")
	message := m.lastResult.Message

	return lipgloss.NewStyle().
		Foreground(accentColor).
		Padding(1, 0).
		Render(fmt.Sprintf("%s %s", icon, message))
}

func (m Model) renderStatusBar() string {
	status := "● Ready"
	if m.executing {
		status = "● Casting"
	}

	timer := ""
	if m.lastDuration > 0 {
		timer = fmt.Sprintf(" | Last statement: %v", m.lastDuration)
	}

	content := lipgloss.NewStyle().
		Foreground(accentColor).
		Render(status) +
		lipgloss.NewStyle().
			Foreground(textMuted).
			Render(timer+" | Press Ctrl+H for help")

	return statusBarStyle.
		Width(m.width - 4).
		Render(content)
}

func (m Model) columnWidth(columnName string, index int) int {
	maxWidth := 30
	minWidth := 10

	width := len(columnName) + 2
	for _, row := range m.lastResult.Rows {
		if index < len(row) {
			if w := len(row[index]) + 2; w > width {
				width = w
			}
		}
	}

	if width < minWidth {
		width = minWidth
	} else if width > maxWidth {
		width = maxWidth
	}
	return width
}

// updateLayout adjusts component sizes to the window size
func (m *Model) updateLayout() {
	editorHeight := 4
	resultHeight := m.height - editorHeight - 10

	m.editor.SetWidth(m.width - 6)
	m.resultView.Width = m.width - 6
	m.resultView.Height = resultHeight
	m.resultTable.SetHeight(resultHeight)
}

type resultMsg struct {
	statement string
	result    engine.Result
	err       error
	duration  time.Duration
}

func (m Model) executeStatement(statement string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		result, err := m.store.Execute(statement)

		return resultMsg{
			statement: statement,
			result:    result,
			err:       err,
			duration:  time.Since(start),
		}
	}
}
