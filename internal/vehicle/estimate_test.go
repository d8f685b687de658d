package vehicle

import (
	"errors"
	"testing"
	"time"
)

func TestParseEstimate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantYear  int
		wantMonth time.Month
		wantDay   int
		wantErr   bool
	}{
		{name: "day before month", input: "2024/15/03", wantYear: 2024, wantMonth: time.March, wantDay: 15},
		{name: "first of january", input: "2025/01/01", wantYear: 2025, wantMonth: time.January, wantDay: 1},
		{name: "surrounding whitespace", input: "  2023/31/12 ", wantYear: 2023, wantMonth: time.December, wantDay: 31},
		{name: "leap day", input: "2024/29/02", wantYear: 2024, wantMonth: time.February, wantDay: 29},
		{name: "month out of range", input: "2024/03/15", wantErr: true},
		{name: "iso layout rejected", input: "2024-03-15", wantErr: true},
		{name: "not a leap year", input: "2023/29/02", wantErr: true},
		{name: "garbage", input: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEstimate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseEstimate(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEstimate(%q) error = %v", tt.input, err)
			}
			if got.Year() != tt.wantYear || got.Month() != tt.wantMonth || got.Day() != tt.wantDay {
				t.Errorf("ParseEstimate(%q) = %s, want %d-%02d-%02d", tt.input, got.Format("2006-01-02"), tt.wantYear, tt.wantMonth, tt.wantDay)
			}
			if got.Location() != time.Local {
				t.Errorf("ParseEstimate(%q) location = %v, want Local", tt.input, got.Location())
			}
		})
	}
}

func TestParseEstimate_Empty(t *testing.T) {
	for _, input := range []string{"", "   "} {
		if _, err := ParseEstimate(input); !errors.Is(err, ErrNoEstimate) {
			t.Errorf("ParseEstimate(%q) error = %v, want ErrNoEstimate", input, err)
		}
	}
}

func TestFormatEstimate(t *testing.T) {
	d := time.Date(2025, time.January, 1, 17, 45, 0, 0, time.Local)
	if got := FormatEstimate(d); got != "2025/01/01" {
		t.Errorf("FormatEstimate() = %s, want 2025/01/01", got)
	}

	d = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	if got := FormatEstimate(d); got != "2024/15/03" {
		t.Errorf("FormatEstimate() = %s, want 2024/15/03", got)
	}
}

func TestEstimateRoundTrip(t *testing.T) {
	start := time.Date(2023, time.January, 1, 12, 0, 0, 0, time.Local)
	// Every day across a leap year boundary.
	for i := 0; i < 800; i++ {
		d := start.AddDate(0, 0, i)
		want := FormatEstimate(d)

		parsed, err := ParseEstimate(want)
		if err != nil {
			t.Fatalf("ParseEstimate(%q) error = %v", want, err)
		}
		if got := FormatEstimate(parsed); got != want {
			t.Fatalf("round trip of %s: got %s, want %s", d.Format("2006-01-02"), got, want)
		}
		if !SameDay(parsed, d) {
			t.Fatalf("round trip of %s landed on %s", d.Format("2006-01-02"), parsed.Format("2006-01-02"))
		}
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	if !SameDay(a, a.Add(23*time.Hour)) {
		t.Error("SameDay() = false for times on the same date")
	}
	if SameDay(a, a.AddDate(0, 0, 1)) {
		t.Error("SameDay() = true for consecutive dates")
	}
}
