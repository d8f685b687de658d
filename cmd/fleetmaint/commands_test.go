package main

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/muurk/fleetmaint/internal/board"
	"github.com/muurk/fleetmaint/internal/vehicle"
)

func TestRenderMarked(t *testing.T) {
	sub := board.Submission{
		VehicleID: "a",
		DisplayID: 101,
		Patch:     vehicle.Patch{Person: "Bob", EstimatedDate: "2025/01/01"},
	}

	t.Run("reloaded record", func(t *testing.T) {
		updated := vehicle.Vehicle{ID: "a", DisplayID: 101, Make: "Ford", Model: "Transit", Person: "Bob", EstimatedDate: "2025/01/01"}
		out := renderMarked(sub, updated, true)
		for _, want := range []string{"SUCCESS", "#101 Ford Transit", "Bob", "2025/01/01"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("reload failed", func(t *testing.T) {
		out := renderMarked(sub, vehicle.Vehicle{}, false)
		for _, want := range []string{"WARNING", "#101", "Bob", "2025/01/01"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
		if strings.Contains(out, "#0") {
			t.Errorf("zero vehicle leaked into output:\n%s", out)
		}
	})
}

func TestResolveVehicleID(t *testing.T) {
	vehicles := []vehicle.Vehicle{
		{ID: "a", DisplayID: 101},
		{ID: "b", DisplayID: 102},
		{ID: "c", DisplayID: 102},
		{ID: "103", DisplayID: 7},
	}

	tests := []struct {
		name    string
		arg     string
		want    string
		wantErr bool
	}{
		{"by id", "a", "a", false},
		{"by display id", "101", "a", false},
		{"id wins over display id", "103", "103", false},
		{"ambiguous display id", "102", "", true},
		{"unknown", "999", "", true},
		{"not a number", "zzz", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveVehicleID(vehicles, tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveVehicleID(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("resolveVehicleID(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}

	if _, err := resolveVehicleID(vehicles, "999"); !errors.Is(err, board.ErrUnknownVehicle) {
		t.Errorf("expected ErrUnknownVehicle, got %v", err)
	}
}

func TestParseDateFlag(t *testing.T) {
	now := time.Date(2025, time.January, 1, 9, 0, 0, 0, time.Local)

	got, err := parseDateFlag("today", now)
	if err != nil || !got.Equal(now) {
		t.Errorf("parseDateFlag(today) = %v, %v", got, err)
	}

	got, err = parseDateFlag("2025-03-01", now)
	if err != nil {
		t.Fatalf("parseDateFlag: %v", err)
	}
	if vehicle.FormatEstimate(got) != "2025/01/03" {
		t.Errorf("FormatEstimate = %q, want 2025/01/03", vehicle.FormatEstimate(got))
	}

	if _, err := parseDateFlag("01/03/2025", now); err == nil {
		t.Error("expected error for wrong layout")
	}
}
