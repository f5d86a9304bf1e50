package dates

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{name: "start of year", text: "01-02-2020", want: time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC)},
		{name: "end of year", text: "12-31-2024", want: time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{name: "leap day", text: "02-29-2024", want: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.text); !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseFallsBackToToday(t *testing.T) {
	today := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return today }
	defer func() { nowFunc = time.Now }()

	tests := []struct {
		name string
		text string
	}{
		{name: "impossible month and day", text: "13-40-2024"},
		{name: "wrong shape", text: "2024-01-02"},
		{name: "non-numeric fields", text: "ab-cd-efgh"},
		{name: "empty", text: ""},
		{name: "non-leap feb 29", text: "02-29-2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Must never panic or surface an error; fallback is today.
			if got := Parse(tt.text); !got.Equal(today) {
				t.Errorf("Parse(%q) = %v, want fallback %v", tt.text, got, today)
			}
		})
	}
}

func TestParseFallbackLogsDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	Parse("13-40-2024")

	out := buf.String()
	if !strings.Contains(out, "unparseable bill date") {
		t.Errorf("fallback did not log a diagnostic, got %q", out)
	}
	if !strings.Contains(out, "13-40-2024") {
		t.Errorf("diagnostic does not carry the offending date, got %q", out)
	}
}

func TestChartLabel(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{name: "zero-padded day", date: time.Date(2020, time.January, 5, 0, 0, 0, 0, time.UTC), want: "Jan 05"},
		{name: "two digit day", date: time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), want: "Dec 31"},
		{name: "zero time", date: time.Time{}, want: "Invalid Date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChartLabel(tt.date); got != tt.want {
				t.Errorf("ChartLabel(%v) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}
