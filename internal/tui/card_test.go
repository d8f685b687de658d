package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/muurk/fleetmaint/internal/vehicle"
)

func TestFormatKm(t *testing.T) {
	tests := []struct {
		km   *float64
		want string
	}{
		{vehicle.Km(50000), "50,000 kms"},
		{vehicle.Km(0), "0 kms"},
		{vehicle.Km(1234567.5), "1,234,567.5 kms"},
		{nil, "unknown kms"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatKm(vehicle.Vehicle{Km: tt.km}))
	}
}

func TestRenderCard(t *testing.T) {
	v := vehicle.Vehicle{
		ID:            "a",
		DisplayID:     101,
		Make:          "Ford",
		Model:         "Transit",
		Description:   "Panel van",
		Km:            vehicle.Km(50000),
		EstimatedDate: "2025/15/03",
	}

	out := RenderCard(v, false)
	assert.Contains(t, out, "#101")
	assert.Contains(t, out, "Estimated date: 2025/15/03")
	assert.Contains(t, out, PlaceholderImage)
	assert.Contains(t, out, "Ford Transit")
	assert.Contains(t, out, "50,000 kms")
	assert.Contains(t, out, "Panel van")
}

func TestRenderCardWithoutEstimateOrKm(t *testing.T) {
	v := vehicle.Vehicle{DisplayID: 7, Make: "Iveco", Model: "Daily", Image: "https://img/x.png"}

	out := RenderCard(v, true)
	assert.NotContains(t, out, "Estimated date")
	assert.NotContains(t, out, PlaceholderImage)
	assert.Contains(t, out, "https://img/x.png")
	assert.Contains(t, out, "unknown kms")
}

func TestRenderCardIsStable(t *testing.T) {
	v := vehicle.Vehicle{DisplayID: 1, Make: "Ford", Model: "Ka"}
	assert.Equal(t, RenderCard(v, false), RenderCard(v, false))

	// Same height with and without a ribbon so grid rows line up
	withRibbon := v
	withRibbon.EstimatedDate = "2025/01/01"
	assert.Equal(t,
		strings.Count(RenderCard(v, false), "\n"),
		strings.Count(RenderCard(withRibbon, false), "\n"),
	)
}

func TestRenderGrid(t *testing.T) {
	vs := make([]vehicle.Vehicle, 5)
	for i := range vs {
		vs[i] = vehicle.Vehicle{DisplayID: i + 1, Make: "Ford", Model: "Ka"}
	}

	assert.Len(t, RenderGrid(vs, 0, 2), 3)
	assert.Len(t, RenderGrid(vs, 0, 4), 2)
	assert.Len(t, RenderGrid(vs, 0, 0), 5)
	assert.Empty(t, RenderGrid(nil, 0, 3))
}

func TestGridColumns(t *testing.T) {
	assert.Equal(t, 1, GridColumns(20))
	assert.Equal(t, 2, GridColumns(80))
	assert.Equal(t, MaxColumns, GridColumns(400))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefghij", 5))
	assert.Equal(t, "", truncate("abc", 0))
}

func TestRenderDialog(t *testing.T) {
	now := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.Local)
	view := DialogView{
		DisplayID: 101,
		Person:    "Bob",
		Date:      time.Date(2025, time.January, 15, 0, 0, 0, 0, time.Local),
		Now:       now,
	}

	out := RenderDialog(view, DialogWidth)
	assert.Contains(t, out, "Mark 101 as maintained")
	assert.Contains(t, out, "Bob")
	assert.Contains(t, out, "2025/15/01")
	assert.Contains(t, out, "from now")
	assert.Contains(t, out, "Save changes")
	assert.Contains(t, out, "Close")
	assert.NotContains(t, out, "Saving")

	view.Submitting = true
	view.Date = now
	out = RenderDialog(view, DialogWidth)
	assert.Contains(t, out, "Saving changes")
	assert.Contains(t, out, "(today)")
	assert.NotContains(t, out, "Close")
}
