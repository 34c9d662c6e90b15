package utils

import (
	"time"

	"github.com/julianstephens/daydial/internal/constants"
	apperrors "github.com/julianstephens/daydial/internal/errors"
	"github.com/julianstephens/daydial/internal/models"
)

// IsApplicable determines if an activity is scheduled on the given date.
// Archived activities never apply. Recurring activities apply on their
// weekdays; single-date activities apply only on SpecificDate. Malformed
// activities and zero dates fail closed.
func IsApplicable(activity models.Activity, date time.Time) bool {
	if activity.IsArchived || date.IsZero() {
		return false
	}

	if activity.IsRecurring {
		wd := date.Weekday()
		for _, d := range activity.ScheduledDays() {
			if d == wd {
				return true
			}
		}
		return false
	}

	if !ValidDateKey(activity.SpecificDate) {
		return false
	}
	return DateKey(date) == activity.SpecificDate
}

// ValidDateKey reports whether key is a well-formed yyyy-MM-dd date.
func ValidDateKey(key string) bool {
	if key == "" {
		return false
	}
	_, err := time.Parse(constants.DateFormat, key)
	return err == nil
}

// ValidateSlot rejects completed slots with a malformed date or an hour
// outside the dial.
func ValidateSlot(slot models.CompletedSlot) error {
	if !ValidDateKey(slot.Date) {
		return apperrors.InvalidInputf("date %q, expected %s", slot.Date, constants.DateFormat)
	}
	if slot.Hour < constants.MinHour || slot.Hour > constants.MaxHour {
		return apperrors.InvalidInputf("hour %d, expected %d-%d", slot.Hour, constants.MinHour, constants.MaxHour)
	}
	return nil
}

// PrecedesSpecificDate reports whether date falls before a single-date
// activity's date. It is false for recurring or malformed activities.
func PrecedesSpecificDate(activity models.Activity, date time.Time) bool {
	if activity.IsRecurring || !ValidDateKey(activity.SpecificDate) {
		return false
	}
	// Keys compare lexically in chronological order.
	return DateKey(date) < activity.SpecificDate
}
