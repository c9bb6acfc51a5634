package interview

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Row is one rendered line of an answer summary table.
type Row struct {
	Name  string
	Value string
}

// DisplayFunc shows intermediate answers to the user after a prompt cycle.
// Returning a non-nil row slice asks the engine to render them as a
// two-column table; returning nil means the callback did its own rendering.
type DisplayFunc func(answers Answers) []Row

// AnswerRows is a ready-made DisplayFunc body: it converts an answer map
// into rows sorted by name.
func AnswerRows(answers Answers) []Row {
	rows := make([]Row, 0, len(answers))
	for name, value := range answers {
		rows = append(rows, Row{Name: name, Value: fmt.Sprint(value)})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

var tableHeaderStyle = lipgloss.NewStyle().Bold(true)

// renderRows writes a key/value table for the given rows.
func renderRows(w io.Writer, rows []Row) {
	if len(rows) == 0 {
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("OPTION", "VALUE")
	for _, r := range rows {
		t = t.Row(r.Name, r.Value)
	}
	fmt.Fprintln(w, t.Render())
}

// runDisplay invokes the display callback and renders returned rows, if any.
func runDisplay(w io.Writer, display DisplayFunc, header string, answers Answers) {
	if display == nil {
		return
	}
	if header != "" {
		fmt.Fprintln(w, header)
	}
	if rows := display(answers); rows != nil {
		renderRows(w, rows)
	}
}
