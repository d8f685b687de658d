package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/muurk/fleetmaint/internal/vehicle"
)

// PlaceholderImage stands in for a vehicle without an image
const PlaceholderImage = "[placeholder image]"

// FormatKm renders an odometer reading with thousands separators
func FormatKm(v vehicle.Vehicle) string {
	km, ok := v.KnownKm()
	if !ok {
		return "unknown kms"
	}
	return humanize.Commaf(km) + " kms"
}

// RenderCard renders one vehicle. It depends only on its arguments.
func RenderCard(v vehicle.Vehicle, selected bool) string {
	lines := []string{
		CardHeaderStyle.Render(fmt.Sprintf("#%d", v.DisplayID)),
	}

	if v.HasEstimate() {
		lines = append(lines, RibbonStyle.Render("Estimated date: "+v.EstimatedDate))
	} else {
		lines = append(lines, "")
	}

	if v.Image == "" {
		lines = append(lines, PlaceholderStyle.Render(PlaceholderImage))
	} else {
		lines = append(lines, truncate(v.Image, CardWidth-2))
	}

	lines = append(lines,
		"",
		CardTitleStyle.Render(truncate(v.Title(), CardWidth-2)),
		FormatKm(v),
		SubtitleStyle.Render(truncate(v.Description, CardWidth-2)),
	)

	style := CardStyle
	if selected {
		style = SelectedCardStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

// RenderGrid lays cards out in rows of cols, highlighting cursor
func RenderGrid(vehicles []vehicle.Vehicle, cursor, cols int) []string {
	if cols < 1 {
		cols = 1
	}

	var rows []string
	for start := 0; start < len(vehicles); start += cols {
		end := start + cols
		if end > len(vehicles) {
			end = len(vehicles)
		}

		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, RenderCard(vehicles[i], i == cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return rows
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width < 1 || len(runes) == 0 {
		return ""
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
