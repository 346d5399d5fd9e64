package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerCellStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)
	cellStyle       = lipgloss.NewStyle().Foreground(fg).Padding(0, 1)
	numericStyle    = cellStyle.Align(lipgloss.Right)
	emptyCellStyle  = lipgloss.NewStyle().Foreground(dim).Italic(true).Padding(0, 1)
)

// column is a table column keyed by a Go-style name; the header is derived
// from the key.
type column struct {
	key     string
	numeric bool
}

// renderTable draws rows under the columns. When rows is empty and
// emptyMsg is set, a single placeholder row is drawn instead.
func renderTable(cols []column, rows [][]string, emptyMsg string) string {
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = humanize(c.key)
	}

	placeholder := false
	if len(rows) == 0 && emptyMsg != "" {
		row := make([]string, len(cols))
		row[0] = emptyMsg
		rows = [][]string{row}
		placeholder = true
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(faintStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerCellStyle
			case placeholder:
				return emptyCellStyle
			case col < len(cols) && cols[col].numeric:
				return numericStyle
			default:
				return cellStyle
			}
		})
	return indent(t.String())
}
