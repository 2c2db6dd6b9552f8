package stats

import (
	"testing"

	"github.com/jmallicoat/tally/internal/models"
)

func TestWeeklyTotals_AlwaysTwelveBuckets(t *testing.T) {
	buckets := WeeklyTotals(nil, mustParse(t, "2024-06-15"))
	if len(buckets) != 12 {
		t.Fatalf("Expected 12 buckets with no entries, got %d", len(buckets))
	}
	for i, b := range buckets {
		if b.Completions != 0 {
			t.Errorf("Bucket %d should be empty, got %d", i, b.Completions)
		}
		if b.Label == "" {
			t.Errorf("Bucket %d has no label", i)
		}
	}
}

func TestWeeklyTotals_NewestBucketLast(t *testing.T) {
	today := mustParse(t, "2024-06-15")
	entries := []models.HabitEntry{
		{HabitID: "h", Date: "2024-06-15", Completed: true},
		{HabitID: "h", Date: "2024-06-08", Completed: true}, // one window back
		{HabitID: "h", Date: "2024-06-09", Completed: true},
	}

	buckets := WeeklyTotals(entries, today)

	if got := buckets[11].Completions; got != 1 {
		t.Errorf("Expected 1 completion in the newest bucket, got %d", got)
	}
	if got := buckets[10].Completions; got != 2 {
		t.Errorf("Expected 2 completions one window back, got %d", got)
	}
	if buckets[11].Label != "6/15" {
		t.Errorf("Expected newest bucket labeled by its window start 6/15, got %q", buckets[11].Label)
	}
}

func TestWeeklyTotals_IgnoresIncompleteAndOutOfRange(t *testing.T) {
	today := mustParse(t, "2024-06-15")
	entries := []models.HabitEntry{
		{HabitID: "h", Date: "2024-06-15", Completed: false},
		{HabitID: "h", Date: "2020-01-01", Completed: true}, // far outside all windows
		{HabitID: "h", Date: "bogus", Completed: true},
	}

	for i, b := range WeeklyTotals(entries, today) {
		if b.Completions != 0 {
			t.Errorf("Bucket %d should be empty, got %d", i, b.Completions)
		}
	}
}

func TestMonthlyTotals_BucketsByCalendarMonth(t *testing.T) {
	today := mustParse(t, "2024-02-10")
	entries := []models.HabitEntry{
		{HabitID: "h", Date: "2024-02-01", Completed: true},
		{HabitID: "h", Date: "2024-02-09", Completed: true},
		{HabitID: "h", Date: "2024-01-31", Completed: true},
		{HabitID: "h", Date: "2023-03-15", Completed: true}, // older than 12 months
	}

	buckets := MonthlyTotals(entries, today)

	if len(buckets) != 12 {
		t.Fatalf("Expected 12 buckets, got %d", len(buckets))
	}
	if buckets[11].Label != "Feb 2024" || buckets[11].Completions != 2 {
		t.Errorf("Expected newest bucket Feb 2024 with 2 completions, got %q with %d",
			buckets[11].Label, buckets[11].Completions)
	}
	if buckets[10].Label != "Jan 2024" || buckets[10].Completions != 1 {
		t.Errorf("Expected Jan 2024 with 1 completion, got %q with %d",
			buckets[10].Label, buckets[10].Completions)
	}
	if buckets[0].Label != "Mar 2023" {
		t.Errorf("Expected oldest bucket Mar 2023, got %q", buckets[0].Label)
	}
	if buckets[0].Completions != 1 {
		t.Errorf("Expected Mar 2023 to hold the year-old completion, got %d", buckets[0].Completions)
	}
}

func TestMonthlyTotals_CrossesYearBoundary(t *testing.T) {
	buckets := MonthlyTotals(nil, mustParse(t, "2024-03-01"))
	if buckets[0].Label != "Apr 2023" {
		t.Errorf("Expected oldest bucket Apr 2023, got %q", buckets[0].Label)
	}
	if buckets[11].Label != "Mar 2024" {
		t.Errorf("Expected newest bucket Mar 2024, got %q", buckets[11].Label)
	}
}
