package services

import (
	"time"

	"turakBack/internal/models"
)

// DateRangesConflict reports whether two date intervals share at least one
// day. Bounds are inclusive on both sides: a reservation ending on the day
// another begins is a conflict ("changeover day blocked" policy).
func DateRangesConflict(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !e1.Before(s2)
}

// ValidateDateRange checks that start does not come after end.
func ValidateDateRange(start, end time.Time) error {
	if start.After(end) {
		return models.ErrInvalidDateRange
	}
	return nil
}
