package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/fleetmaint/internal/board"
	"github.com/muurk/fleetmaint/internal/logging"
	"github.com/muurk/fleetmaint/internal/vehicle"
)

// Messages carrying network results back into the update loop
type vehiclesLoadedMsg struct {
	vehicles []vehicle.Vehicle
	err      error
	manual   bool // Issued by the reload key
}

type vehicleUpdatedMsg struct {
	err error
}

// AppModel is the top-level model: a card grid with a modal edit dialog,
// driven by a board.Board.
type AppModel struct {
	board   *board.Board
	gateway board.Gateway
	now     func() time.Time

	// Grid state
	Cursor     int
	Refreshing bool // A manual reload is in flight
	refreshes  int  // Manual reloads not yet answered

	// Dialog state
	PersonInput textinput.Model
	Focus       dialogField

	// UI state
	Width   int
	Height  int
	Spinner spinner.Model
	Help    help.Model

	GridKeys   gridKeyMap
	DialogKeys dialogKeyMap
}

// Option configures an AppModel
type Option func(*AppModel)

// WithBoard uses b instead of a fresh board
func WithBoard(b *board.Board) Option {
	return func(m *AppModel) {
		m.board = b
	}
}

// WithClock overrides the clock used for "today" and the date hint
func WithClock(now func() time.Time) Option {
	return func(m *AppModel) {
		m.now = now
	}
}

// NewAppModel creates the application model. The initial load is issued by Init.
func NewAppModel(gw board.Gateway, opts ...Option) AppModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	personInput := textinput.New()
	personInput.Placeholder = "Who will take it in?"
	personInput.CharLimit = 80
	personInput.Width = 30
	personInput.Prompt = ""
	personInput.Cursor.SetMode(cursor.CursorStatic)

	m := AppModel{
		gateway:     gw,
		now:         time.Now,
		PersonInput: personInput,
		Spinner:     s,
		Help:        help.New(),
		GridKeys:    newGridKeyMap(),
		DialogKeys:  newDialogKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.board == nil {
		m.board = board.New(board.WithClock(m.now))
	}
	return m
}

// Board returns the underlying state machine
func (m AppModel) Board() *board.Board {
	return m.board
}

// Init issues the initial fetch
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(loadVehiclesCmd(m.gateway, false), m.Spinner.Tick)
}

// Update handles all messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case vehiclesLoadedMsg:
		if msg.manual && m.refreshes > 0 {
			m.refreshes--
		}
		m.Refreshing = m.refreshes > 0
		m.board.ApplyLoad(msg.vehicles, msg.err)
		m.clampCursor()
		if !m.board.DialogVisible() {
			m.PersonInput.Blur()
		}
		return m, nil

	case vehicleUpdatedMsg:
		if m.board.CompleteSubmit(msg.err) {
			return m, loadVehiclesCmd(m.gateway, false)
		}
		// Back to editing: the person field was blurred by save
		if m.board.Phase() == board.PhaseEditing && m.Focus == fieldPerson {
			cmd := m.PersonInput.Focus()
			return m, cmd
		}
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.board.DialogVisible() {
			return m.updateDialog(msg)
		}
		return m.updateGrid(msg)
	}

	return m, nil
}

// updateGrid handles keys while no dialog is shown
func (m AppModel) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := GridColumns(m.width())

	switch {
	case key.Matches(msg, m.GridKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.GridKeys.Reload):
		tick := m.startSpinner()
		m.refreshes++
		m.Refreshing = true
		return m, tea.Batch(loadVehiclesCmd(m.gateway, true), tick)

	case key.Matches(msg, m.GridKeys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.GridKeys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.GridKeys.Up):
		m.moveCursor(-cols)
	case key.Matches(msg, m.GridKeys.Down):
		m.moveCursor(cols)

	case key.Matches(msg, m.GridKeys.Activate):
		if err := m.board.Activate(m.Cursor); err != nil {
			logging.Debug("Activate ignored", zap.Int("cursor", m.Cursor), zap.Error(err))
			return m, nil
		}
		cmd := m.openDialog()
		return m, cmd

	case key.Matches(msg, m.GridKeys.Reopen):
		if err := m.board.Reopen(); err != nil {
			logging.Debug("Reopen ignored", zap.Error(err))
			return m, nil
		}
		if i := m.board.SelectedIndex(); i >= 0 {
			m.Cursor = i
		}
		cmd := m.openDialog()
		return m, cmd
	}

	return m, nil
}

// updateDialog handles keys while the dialog is shown
func (m AppModel) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.board.Phase() == board.PhaseSubmitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.DialogKeys.Close):
		_ = m.board.Dismiss()
		m.PersonInput.Blur()
		return m, nil

	case key.Matches(msg, m.DialogKeys.Save):
		return m.save()

	case key.Matches(msg, m.DialogKeys.NextField):
		cmd := m.toggleFocus()
		return m, cmd
	}

	if m.Focus == fieldDate {
		return m.updateDateField(msg)
	}

	if msg.Type == tea.KeyEnter {
		cmd := m.toggleFocus()
		return m, cmd
	}

	var cmd tea.Cmd
	m.PersonInput, cmd = m.PersonInput.Update(msg)
	_ = m.board.SetPerson(m.PersonInput.Value())
	return m, cmd
}

// updateDateField moves the working date
func (m AppModel) updateDateField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	date := m.board.EditedDate()

	switch {
	case key.Matches(msg, m.DialogKeys.SaveDate):
		return m.save()
	case key.Matches(msg, m.DialogKeys.PrevDay):
		date = date.AddDate(0, 0, -1)
	case key.Matches(msg, m.DialogKeys.NextDay):
		date = date.AddDate(0, 0, 1)
	case key.Matches(msg, m.DialogKeys.PrevWeek):
		date = date.AddDate(0, 0, -7)
	case key.Matches(msg, m.DialogKeys.NextWeek):
		date = date.AddDate(0, 0, 7)
	case key.Matches(msg, m.DialogKeys.PrevMonth):
		date = date.AddDate(0, -1, 0)
	case key.Matches(msg, m.DialogKeys.NextMonth):
		date = date.AddDate(0, 1, 0)
	case key.Matches(msg, m.DialogKeys.Today):
		date = m.now()
	default:
		return m, nil
	}

	_ = m.board.SetDate(date)
	return m, nil
}

// save starts the PATCH; the dialog stays up until the reload lands
func (m AppModel) save() (tea.Model, tea.Cmd) {
	tick := m.startSpinner()
	sub, err := m.board.BeginSubmit()
	if err != nil {
		logging.Debug("Save ignored", zap.Error(err))
		return m, nil
	}
	m.PersonInput.Blur()
	return m, tea.Batch(updateVehicleCmd(m.gateway, sub), tick)
}

// startSpinner returns a tick only when no tick loop is already running
func (m AppModel) startSpinner() tea.Cmd {
	if m.busy() {
		return nil
	}
	return m.Spinner.Tick
}

// openDialog syncs the input with the board's working copy and focuses it
func (m *AppModel) openDialog() tea.Cmd {
	m.PersonInput.SetValue(m.board.EditedPerson())
	m.PersonInput.CursorEnd()
	m.Focus = fieldPerson
	return m.PersonInput.Focus()
}

func (m *AppModel) toggleFocus() tea.Cmd {
	if m.Focus == fieldPerson {
		m.Focus = fieldDate
		m.PersonInput.Blur()
		return nil
	}
	m.Focus = fieldPerson
	return m.PersonInput.Focus()
}

func (m *AppModel) moveCursor(delta int) {
	next := m.Cursor + delta
	if next < 0 || next >= m.board.Len() {
		return
	}
	m.Cursor = next
}

func (m *AppModel) clampCursor() {
	if m.Cursor >= m.board.Len() {
		m.Cursor = m.board.Len() - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m AppModel) busy() bool {
	return m.board.IsLoading() || m.Refreshing || m.board.Phase() == board.PhaseSubmitting
}

func (m AppModel) width() int {
	if m.Width == 0 {
		return DefaultWidth
	}
	return m.Width
}

func (m AppModel) height() int {
	if m.Height == 0 {
		return DefaultHeight
	}
	return m.Height
}

// View renders the grid, or the dialog over it
func (m AppModel) View() string {
	width, height := m.width(), m.height()

	if m.board.DialogVisible() {
		dialog := lipgloss.JoinVertical(lipgloss.Center, m.renderDialog(width), m.dialogHelp())
		return RenderModal(dialog, width, height)
	}

	return RenderApplicationContainer(m.renderContent(width, height), m.footer(), width, height)
}

func (m AppModel) renderDialog(width int) string {
	selected, _ := m.board.Selected()

	return RenderDialog(DialogView{
		DisplayID:  selected.DisplayID,
		Person:     m.PersonInput.View(),
		Date:       m.board.EditedDate(),
		Now:        m.now(),
		DateFocus:  m.Focus == fieldDate,
		Submitting: m.board.Phase() == board.PhaseSubmitting,
		Spinner:    m.Spinner.View(),
	}, SafeModalWidth(DialogWidth, width))
}

func (m AppModel) renderContent(width, height int) string {
	if m.board.IsLoading() {
		return lipgloss.Place(width-4, 0, lipgloss.Center, lipgloss.Top,
			lipgloss.JoinVertical(lipgloss.Center,
				"",
				TitleStyle.Render(m.Spinner.View()+" LOADING VEHICLES"),
			),
		)
	}

	if m.board.Len() == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			"",
			"  "+WarningTextStyle.Render("No vehicles to show"),
			"",
			"  Press r to reload.",
		)
	}

	cols := GridColumns(width)
	rows := RenderGrid(m.board.Vehicles(), m.Cursor, cols)

	// Window the rows so the cursor stays visible
	visible := (height - 6) / CardHeight
	if visible < 1 {
		visible = 1
	}
	first := 0
	if cursorRow := m.Cursor / cols; cursorRow >= visible {
		first = cursorRow - visible + 1
	}
	last := first + visible
	if last > len(rows) {
		last = len(rows)
	}

	status := fmt.Sprintf("%d vehicles", m.board.Len())
	if m.Refreshing {
		status = m.Spinner.View() + " refreshing… " + status
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		append([]string{SubtitleStyle.Render(status)}, rows[first:last]...)...,
	)
}

func (m AppModel) footer() string {
	return m.Help.View(m.GridKeys)
}

// dialogHelp returns the help line for the focused dialog field
func (m AppModel) dialogHelp() string {
	if m.Focus == fieldDate {
		return m.Help.View(dateKeys{m.DialogKeys})
	}
	return m.Help.View(m.DialogKeys)
}

func loadVehiclesCmd(gw board.Gateway, manual bool) tea.Cmd {
	return func() tea.Msg {
		vehicles, err := gw.ListVehicles(context.Background())
		return vehiclesLoadedMsg{vehicles: vehicles, err: err, manual: manual}
	}
}

func updateVehicleCmd(gw board.Gateway, sub board.Submission) tea.Cmd {
	return func() tea.Msg {
		err := gw.UpdateVehicle(context.Background(), sub.VehicleID, sub.Patch)
		return vehicleUpdatedMsg{err: err}
	}
}
