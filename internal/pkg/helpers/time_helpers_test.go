package helpers

import (
	"testing"
	"time"
)

func TestWithinDateRange(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"inside window", time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), true},
		{"on start date", time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC), true},
		{"on end date", time.Date(2024, 1, 31, 0, 0, 1, 0, time.UTC), true},
		{"day before start", time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC), false},
		{"day after end", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WithinDateRange(tc.now, start, end); got != tc.want {
				t.Fatalf("WithinDateRange(%v) = %v, want %v", tc.now, got, tc.want)
			}
		})
	}
}

func TestWithinDateRangeIgnoresTimeOfDay(t *testing.T) {
	// Window boundaries stored with a time component must still be
	// treated as whole calendar days.
	start := time.Date(2024, 3, 10, 16, 30, 0, 0, time.UTC)
	end := time.Date(2024, 3, 20, 8, 0, 0, 0, time.UTC)

	early := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, 3, 20, 23, 59, 0, 0, time.UTC)

	if !WithinDateRange(early, start, end) {
		t.Fatal("expected midnight of the start day to be inside the window")
	}
	if !WithinDateRange(late, start, end) {
		t.Fatal("expected late evening of the end day to be inside the window")
	}
}
