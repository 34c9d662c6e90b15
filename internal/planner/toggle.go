package planner

import (
	"fmt"

	"github.com/julianstephens/daydial/internal/constants"
	apperrors "github.com/julianstephens/daydial/internal/errors"
	"github.com/julianstephens/daydial/internal/logger"
	"github.com/julianstephens/daydial/internal/models"
	"github.com/julianstephens/daydial/internal/utils"
)

// ToggleSlot flips the completion of one hour and returns the new state.
func (p *Planner) ToggleSlot(dateKey string, hour int) (bool, error) {
	if !utils.ValidDateKey(dateKey) {
		return false, apperrors.InvalidInputf("date %q, expected %s", dateKey, constants.DateFormat)
	}
	if hour < constants.MinHour || hour > constants.MaxHour {
		return false, apperrors.InvalidInputf("hour %d, expected %d-%d", hour, constants.MinHour, constants.MaxHour)
	}

	done, err := p.completedOn(dateKey)
	if err != nil {
		return false, err
	}

	slot := models.CompletedSlot{Date: dateKey, Hour: hour}
	if done[hour] {
		if err := p.store.RemoveCompletedSlot(slot); err != nil {
			return false, fmt.Errorf("failed to remove slot: %w", err)
		}
		logger.Debug("Slot cleared", "date", dateKey, "hour", hour)
		return false, nil
	}
	if err := p.store.AddCompletedSlot(slot); err != nil {
		return false, fmt.Errorf("failed to add slot: %w", err)
	}
	logger.Debug("Slot completed", "date", dateKey, "hour", hour)
	return true, nil
}

// ToggleActivity completes every slot of an activity on a date, or clears
// them all when the activity is already complete. It returns the new state.
func (p *Planner) ToggleActivity(dateKey, activityID string) (bool, error) {
	if !utils.ValidDateKey(dateKey) {
		return false, apperrors.InvalidInputf("date %q, expected %s", dateKey, constants.DateFormat)
	}
	activity, err := p.store.GetActivity(activityID)
	if err != nil {
		return false, err
	}
	if len(activity.Slots) == 0 {
		return false, apperrors.InvalidInputf("activity %s has no slots", activity.Name)
	}

	done, err := p.completedOn(dateKey)
	if err != nil {
		return false, err
	}

	complete := true
	for _, h := range activity.Slots {
		if !done[h] {
			complete = false
			break
		}
	}

	for _, h := range activity.Slots {
		slot := models.CompletedSlot{Date: dateKey, Hour: h}
		if complete {
			err = p.store.RemoveCompletedSlot(slot)
		} else if !done[h] {
			err = p.store.AddCompletedSlot(slot)
		}
		if err != nil {
			return false, fmt.Errorf("failed to update slot %d: %w", h, err)
		}
	}
	return !complete, nil
}

func (p *Planner) completedOn(dateKey string) (map[int]bool, error) {
	slots, err := p.store.GetCompletedSlotsInRange(dateKey, dateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed slots: %w", err)
	}
	done := make(map[int]bool, len(slots))
	for _, s := range slots {
		done[s.Hour] = true
	}
	return done, nil
}
