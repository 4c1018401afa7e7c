package services

import (
	"errors"
	"testing"
	"time"

	"turakBack/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRangesConflict(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"identical", day(2024, 6, 1), day(2024, 6, 10), day(2024, 6, 1), day(2024, 6, 10), true},
		{"contained", day(2024, 6, 1), day(2024, 6, 10), day(2024, 6, 3), day(2024, 6, 5), true},
		{"partial overlap", day(2024, 6, 1), day(2024, 6, 10), day(2024, 6, 8), day(2024, 6, 15), true},
		{"touching boundary blocks", day(2024, 6, 1), day(2024, 6, 10), day(2024, 6, 10), day(2024, 6, 15), true},
		{"day after is free", day(2024, 6, 1), day(2024, 6, 10), day(2024, 6, 11), day(2024, 6, 15), false},
		{"day before is free", day(2024, 6, 11), day(2024, 6, 15), day(2024, 6, 1), day(2024, 6, 10), false},
		{"single day vs itself", day(2024, 6, 5), day(2024, 6, 5), day(2024, 6, 5), day(2024, 6, 5), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DateRangesConflict(tc.s1, tc.e1, tc.s2, tc.e2)
			if got != tc.want {
				t.Fatalf("expected %v got %v", tc.want, got)
			}
		})
	}
}

func TestValidateDateRange(t *testing.T) {
	if err := ValidateDateRange(day(2024, 6, 1), day(2024, 6, 1)); err != nil {
		t.Fatalf("same-day range must be valid: %v", err)
	}
	if err := ValidateDateRange(day(2024, 6, 2), day(2024, 6, 1)); !errors.Is(err, models.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}
