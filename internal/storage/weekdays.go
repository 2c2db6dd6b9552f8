package storage

import (
	"strconv"
	"strings"
	"time"
)

// MarshalWeekdays serializes a target weekday set to its storage form, a
// comma-separated list of integers (0 = Sunday).
func MarshalWeekdays(days []time.Weekday) string {
	if len(days) == 0 {
		return ""
	}
	parts := make([]string, len(days))
	for i, wd := range days {
		parts[i] = strconv.Itoa(int(wd))
	}
	return strings.Join(parts, ",")
}

// UnmarshalWeekdays parses the storage form produced by MarshalWeekdays.
// Malformed elements are skipped rather than failing the whole row.
func UnmarshalWeekdays(s string) []time.Weekday {
	if s == "" {
		return nil
	}
	var days []time.Weekday
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 6 {
			continue
		}
		days = append(days, time.Weekday(n))
	}
	return days
}
