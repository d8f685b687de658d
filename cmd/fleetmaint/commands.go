package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/fleetmaint/internal/board"
	"github.com/muurk/fleetmaint/internal/gateway"
	"github.com/muurk/fleetmaint/internal/logging"
	"github.com/muurk/fleetmaint/internal/tui"
	"github.com/muurk/fleetmaint/internal/ui"
	"github.com/muurk/fleetmaint/internal/vehicle"
)

// dateFlagLayout is the human-friendly layout accepted by --date
const dateFlagLayout = "2006-01-02"

// Command flags
var (
	outputFormat string
	markPerson   string
	markDate     string
)

func init() {
	listCmd.Flags().StringVar(&outputFormat, "format", "cards", "Output format (cards, compact, json)")

	markCmd.Flags().StringVar(&markPerson, "person", "", "Person taking the vehicle in")
	markCmd.Flags().StringVar(&markDate, "date", "", "Estimated date as YYYY-MM-DD, or 'today'")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(markCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List vehicles",
	Long: `Fetch the vehicle list once and print it.

A failed fetch is reported as an error here, unlike the interactive view
where it shows as an empty fleet.`,
	Example: `  # Cards sized to the terminal
  fleetmaint list

  # One line per vehicle
  fleetmaint list --format compact

  # Raw JSON for scripting
  fleetmaint list --format json`,
	RunE: runList,
}

var markCmd = &cobra.Command{
	Use:   "mark <id|displayId>",
	Short: "Record who takes a vehicle in and when",
	Long: `Set the person and estimated maintenance date of one vehicle, then
fetch the list again to confirm the change.

Flags that are not given keep the vehicle's current value. A vehicle
without an estimate gets today's date unless --date is set.`,
	Example: `  # Mark vehicle 101 for Bob on 1 March 2025
  fleetmaint mark 101 --person Bob --date 2025-03-01

  # Change only the date
  fleetmaint mark 6f1c2a --date today`,
	Args: cobra.ExactArgs(1),
	RunE: runMark,
}

func runList(cmd *cobra.Command, args []string) error {
	switch outputFormat {
	case "cards", "compact", "json":
	default:
		return fmt.Errorf("unknown format %q (want cards, compact or json)", outputFormat)
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if err := setupLogging(settings, false); err != nil {
		return err
	}
	defer logging.Sync()

	client := newClient(settings)
	vehicles, err := client.ListVehicles(cmd.Context())
	if err != nil {
		return fmt.Errorf("%s: %w", gateway.ShortMessage(err), err)
	}

	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(vehicles, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		fmt.Println(string(data))

	case "compact":
		fmt.Println(renderCompact(vehicles))

	default:
		fmt.Println(ui.RenderCommandHeader(ui.HeaderConfig{
			Title:   "Vehicles",
			Command: "fleetmaint list",
			Params: []ui.Detail{
				{Key: "API", Value: client.VehiclesURL()},
				{Key: "Count", Value: strconv.Itoa(len(vehicles))},
			},
		}))
		if len(vehicles) == 0 {
			fmt.Println(ui.RenderWarning("No vehicles", nil))
			return nil
		}
		for _, row := range tui.RenderGrid(vehicles, -1, tui.GridColumns(ui.GetTerminalWidth())) {
			fmt.Println(row)
		}
	}
	return nil
}

func renderCompact(vehicles []vehicle.Vehicle) string {
	table := ui.Table{Columns: []string{"#", "VEHICLE", "KM", "ESTIMATE", "PERSON", "ID"}}
	for _, v := range vehicles {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(v.DisplayID),
			v.Title(),
			tui.FormatKm(v),
			orDash(v.EstimatedDate),
			orDash(v.Person),
			v.ID,
		})
	}
	return table.Render()
}

func runMark(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if err := setupLogging(settings, false); err != nil {
		return err
	}
	defer logging.Sync()

	var date time.Time
	if cmd.Flags().Changed("date") {
		date, err = parseDateFlag(markDate, time.Now())
		if err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	client := newClient(settings)
	b := board.New()
	if err := b.Load(ctx, client); err != nil {
		return fmt.Errorf("%s: %w", gateway.ShortMessage(err), err)
	}

	id, err := resolveVehicleID(b.Vehicles(), args[0])
	if err != nil {
		return err
	}
	if err := b.ActivateID(id); err != nil {
		return err
	}
	if cmd.Flags().Changed("person") {
		_ = b.SetPerson(markPerson)
	}
	if !date.IsZero() {
		_ = b.SetDate(date)
	}

	sub, err := b.Submit(ctx, client)
	if err != nil {
		fmt.Println(ui.RenderFailure("Update failed", err, []string{
			"Check that " + client.VehicleURL(id) + " accepts PATCH",
			"Run with --log-level debug for the full exchange",
		}))
		return fmt.Errorf("%s: %w", gateway.ShortMessage(err), err)
	}

	updated, ok := b.Selected()
	fmt.Println(renderMarked(sub, updated, ok))
	return nil
}

// renderMarked reports a saved update. Without a reloaded record (the
// follow-up fetch failed) it falls back to what was sent.
func renderMarked(sub board.Submission, updated vehicle.Vehicle, reloaded bool) string {
	if !reloaded {
		return ui.RenderWarning("Vehicle marked, reload failed", []ui.Detail{
			{Key: "Vehicle", Value: fmt.Sprintf("#%d", sub.DisplayID)},
			{Key: "Person", Value: orDash(sub.Patch.Person)},
			{Key: "Estimated date", Value: orDash(sub.Patch.EstimatedDate)},
		})
	}
	return ui.RenderSuccess("Vehicle marked", []ui.Detail{
		{Key: "Vehicle", Value: fmt.Sprintf("#%d %s", updated.DisplayID, updated.Title())},
		{Key: "Person", Value: orDash(updated.Person)},
		{Key: "Estimated date", Value: orDash(updated.EstimatedDate)},
	})
}

// resolveVehicleID accepts either the opaque id or a unique display id
func resolveVehicleID(vehicles []vehicle.Vehicle, arg string) (string, error) {
	for _, v := range vehicles {
		if v.ID == arg {
			return v.ID, nil
		}
	}

	displayID, err := strconv.Atoi(arg)
	if err != nil {
		return "", fmt.Errorf("%w: %s", board.ErrUnknownVehicle, arg)
	}

	var matches []vehicle.Vehicle
	for _, v := range vehicles {
		if v.DisplayID == displayID {
			matches = append(matches, v)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", board.ErrUnknownVehicle, arg)
	case 1:
		return matches[0].ID, nil
	default:
		ids := make([]string, len(matches))
		for i, v := range matches {
			ids[i] = v.ID
		}
		return "", fmt.Errorf("display id %d is ambiguous, use one of: %s", displayID, strings.Join(ids, ", "))
	}
}

func parseDateFlag(s string, now time.Time) (time.Time, error) {
	if strings.EqualFold(strings.TrimSpace(s), "today") {
		return now, nil
	}
	date, err := time.ParseInLocation(dateFlagLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (want YYYY-MM-DD or 'today'): %w", s, err)
	}
	return date, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
