package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/muurk/fleetmaint/internal/vehicle"
)

// dialogField identifies the focused dialog field
type dialogField int

const (
	fieldPerson dialogField = iota
	fieldDate
)

// DialogView is everything the edit dialog shows
type DialogView struct {
	DisplayID  int
	Person     string // Rendered person input
	Date       time.Time
	Now        time.Time // Reference for the relative date hint
	DateFocus  bool
	Submitting bool
	Spinner    string
}

// DialogTitle is the dialog heading for a vehicle
func DialogTitle(displayID int) string {
	return fmt.Sprintf("Mark %d as maintained", displayID)
}

// RenderDialog renders the edit dialog. It depends only on its arguments.
func RenderDialog(d DialogView, width int) string {
	title := TitleStyle.Render(DialogTitle(d.DisplayID))

	personLabel := LabelStyle.Render("Person")
	dateLabel := LabelStyle.Render("Estimated date")
	if d.DateFocus {
		dateLabel = FocusedInputStyle.Width(16).Render("Estimated date")
	} else {
		personLabel = FocusedInputStyle.Width(16).Render("Person")
	}

	dateValue := "◀ " + vehicle.FormatEstimate(d.Date) + " ▶"
	if d.DateFocus {
		dateValue = FocusedInputStyle.Render(dateValue)
	} else {
		dateValue = BlurredInputStyle.Render(dateValue)
	}

	hint := d.Date.Format("Mon 2 Jan 2006")
	switch {
	case d.Now.IsZero():
	case vehicle.SameDay(d.Date, d.Now):
		hint += " (today)"
	default:
		hint += " (" + humanize.RelTime(d.Date, d.Now, "ago", "from now") + ")"
	}

	var actions string
	if d.Submitting {
		actions = SpinnerStyle.Render(d.Spinner + " Saving changes…")
	} else {
		actions = lipgloss.JoinHorizontal(lipgloss.Top,
			ButtonStyle.Render("Close"),
			"  ",
			PrimaryButtonStyle.Render("Save changes"),
		)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, personLabel, d.Person),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, dateLabel, dateValue),
		lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(""), SubtitleStyle.Render(hint)),
		"",
		actions,
	)

	return DialogStyle.Width(width).Render(body)
}
