// Package tui implements the fleetmaint terminal user interface.
//
// One screen: a grid of vehicle cards. Enter on a card opens a modal dialog
// for the person and the estimated maintenance date; saving sends a PATCH and
// the dialog stays up, with a spinner, until the list has been fetched again.
//
// State lives in a board.Board; this package only translates key presses and
// network results into board calls and renders the result. Network calls run
// as tea.Cmds and report back as messages, so the Bubble Tea update loop is
// the only place state changes.
//
// RenderCard and RenderDialog are pure and can be used on their own; the
// list command of the CLI prints cards with RenderGrid.
//
// # Usage Example
//
//	app := tui.NewAppModel(gateway.NewClient(url))
//	program := tea.NewProgram(app, tea.WithAltScreen())
//
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
package tui
