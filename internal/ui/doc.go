// Package ui renders the one-shot output of the fleetmaint CLI commands.
//
// Unlike the interactive TUI, these components print once and exit:
//
//   - Header: command banner with the API endpoint and other parameters
//   - Result: success, failure or warning box with ordered details
//   - Table: compact one-line-per-vehicle listing
//
// Widths follow the terminal (GetTerminalWidth) and are capped so output
// stays readable on wide screens.
//
// Example:
//
//	fmt.Println(ui.RenderCommandHeader(ui.HeaderConfig{
//	    Title:   "Vehicles",
//	    Command: "fleetmaint list",
//	    Params:  []ui.Detail{{Key: "API", Value: url}},
//	}))
//	fmt.Println(ui.RenderSuccess("Vehicle marked", details))
package ui
