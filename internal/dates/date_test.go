package dates

import (
	"testing"
	"time"
)

func TestParse_ValidDates(t *testing.T) {
	d, err := Parse("2024-01-15")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.January || d.DayOfMonth() != 15 {
		t.Errorf("Expected 2024-01-15, got %s", d)
	}
	if d.String() != "2024-01-15" {
		t.Errorf("Expected round-trip to 2024-01-15, got %s", d.String())
	}
}

func TestParse_InvalidDates(t *testing.T) {
	invalid := []string{"", "2024-1-5", "15/01/2024", "2024-13-01", "not a date"}
	for _, s := range invalid {
		if _, err := Parse(s); err == nil {
			t.Errorf("Expected Parse(%q) to fail, but it succeeded", s)
		}
	}
}

func TestAddDays_CrossesMonthBoundary(t *testing.T) {
	d := New(2024, time.January, 31).AddDays(1)
	if d.String() != "2024-02-01" {
		t.Errorf("Expected 2024-02-01, got %s", d)
	}
}

func TestAddDays_LeapYear(t *testing.T) {
	d := New(2024, time.February, 28).AddDays(1)
	if d.String() != "2024-02-29" {
		t.Errorf("Expected leap day 2024-02-29, got %s", d)
	}

	d = New(2023, time.February, 28).AddDays(1)
	if d.String() != "2023-03-01" {
		t.Errorf("Expected 2023-03-01 in a non-leap year, got %s", d)
	}
}

func TestAddDays_Negative(t *testing.T) {
	d := New(2024, time.March, 1).AddDays(-1)
	if d.String() != "2024-02-29" {
		t.Errorf("Expected 2024-02-29, got %s", d)
	}
}

func TestSub_WholeDays(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"2024-01-07", "2024-01-01", 6},
		{"2024-01-01", "2024-01-01", 0},
		{"2024-01-01", "2024-01-07", -6},
		{"2024-03-01", "2024-02-28", 2}, // leap year
	}
	for _, c := range cases {
		a, _ := Parse(c.a)
		b, _ := Parse(c.b)
		if got := a.Sub(b); got != c.want {
			t.Errorf("%s.Sub(%s) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestComparisons(t *testing.T) {
	a := New(2024, time.January, 1)
	b := New(2024, time.January, 2)

	if !a.Before(b) || b.Before(a) {
		t.Error("Before ordering is wrong")
	}
	if !b.After(a) || a.After(b) {
		t.Error("After ordering is wrong")
	}
	if !a.Equal(New(2024, time.January, 1)) {
		t.Error("Equal days should compare equal")
	}
}

func TestMonthIndex_Distance(t *testing.T) {
	a := New(2023, time.December, 15)
	b := New(2024, time.January, 3)
	if b.MonthIndex()-a.MonthIndex() != 1 {
		t.Errorf("Expected adjacent months across a year boundary, got distance %d",
			b.MonthIndex()-a.MonthIndex())
	}
}

func TestFromTime_UsesLocationDate(t *testing.T) {
	// 23:30 local is still the same calendar date even though it is the
	// next day in UTC for negative offsets.
	loc := time.FixedZone("UTC-5", -5*60*60)
	wall := time.Date(2024, time.June, 10, 23, 30, 0, 0, loc)
	if got := FromTime(wall).String(); got != "2024-06-10" {
		t.Errorf("Expected 2024-06-10, got %s", got)
	}
}

func TestTextMarshaling(t *testing.T) {
	d := New(2024, time.May, 9)
	b, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(b) != "2024-05-09" {
		t.Errorf("Expected 2024-05-09, got %s", b)
	}

	var parsed Day
	if err := parsed.UnmarshalText(b); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if !parsed.Equal(d) {
		t.Errorf("Round trip changed the date: %s", parsed)
	}

	if err := parsed.UnmarshalText([]byte("garbage")); err == nil {
		t.Error("Expected UnmarshalText to reject garbage input")
	}
}

func TestIsZero(t *testing.T) {
	var d Day
	if !d.IsZero() {
		t.Error("Zero-value Day should report IsZero")
	}
	if New(2024, time.January, 1).IsZero() {
		t.Error("A real date should not report IsZero")
	}
}
