package cli

import (
	"testing"
	"time"

	"github.com/jmallicoat/tally/internal/models"
)

func TestParseWeekdays_NamesAndNumbers(t *testing.T) {
	got, err := ParseWeekdays("mon, Wednesday,5")
	if err != nil {
		t.Fatalf("ParseWeekdays failed: %v", err)
	}
	want := []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	if len(got) != len(want) {
		t.Fatalf("Expected %d weekdays, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestParseWeekdays_Invalid(t *testing.T) {
	for _, input := range []string{"", "noday", "7", "-1", "mon,,fri"} {
		if _, err := ParseWeekdays(input); err == nil {
			t.Errorf("Expected ParseWeekdays(%q) to fail", input)
		}
	}
}

func TestFormatFrequency(t *testing.T) {
	cases := []struct {
		habit models.Habit
		want  string
	}{
		{models.Habit{Frequency: models.FrequencyDaily}, "daily"},
		{models.Habit{Frequency: models.FrequencyMonthly}, "monthly"},
		{models.Habit{Frequency: models.FrequencyWeekly}, "weekly"},
		{models.Habit{
			Frequency:  models.FrequencyWeekly,
			TargetDays: []time.Weekday{time.Monday, time.Friday},
		}, "weekly on Mon,Fri"},
		{models.Habit{Frequency: "bogus"}, "unknown"},
	}
	for _, c := range cases {
		if got := FormatFrequency(c.habit); got != c.want {
			t.Errorf("FormatFrequency(%q) = %q, want %q", c.habit.Frequency, got, c.want)
		}
	}
}

func TestResolveDate(t *testing.T) {
	got, err := ResolveDate("2024-01-07")
	if err != nil {
		t.Fatalf("ResolveDate failed: %v", err)
	}
	if got != "2024-01-07" {
		t.Errorf("Expected canonical pass-through, got %q", got)
	}

	if _, err := ResolveDate("07/01/2024"); err == nil {
		t.Error("Expected ResolveDate to reject non-canonical input")
	}

	today, err := ResolveDate("")
	if err != nil {
		t.Fatalf("ResolveDate(\"\") failed: %v", err)
	}
	if len(today) != len("2006-01-02") {
		t.Errorf("Expected a YYYY-MM-DD date for empty input, got %q", today)
	}
}
