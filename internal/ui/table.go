package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders rows in left-aligned columns sized to their widest cell
type Table struct {
	Columns []string
	Rows    [][]string
}

// Render returns the table as a string, one line per row
func (t Table) Render() string {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = lipgloss.Width(c)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(t.Rows)+1)
	lines = append(lines, TableHeaderStyle.Render(t.line(t.Columns, widths)))
	for _, row := range t.Rows {
		lines = append(lines, t.line(row, widths))
	}
	return strings.Join(lines, "\n")
}

func (t Table) line(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i == len(widths)-1 {
			parts[i] = cell
			continue
		}
		parts[i] = cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
