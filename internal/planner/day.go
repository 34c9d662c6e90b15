package planner

import (
	"fmt"
	"time"

	apperrors "github.com/julianstephens/daydial/internal/errors"
	"github.com/julianstephens/daydial/internal/logger"
	"github.com/julianstephens/daydial/internal/models"
	"github.com/julianstephens/daydial/internal/streak"
	"github.com/julianstephens/daydial/internal/utils"
)

// ActivityView is one row of a day plan.
type ActivityView struct {
	Activity       models.Activity
	Completed      bool
	CompletedHours int
	Streak         models.Streak
	Tier           streak.Tier
}

// DayView is the rendered plan of one date.
type DayView struct {
	Date         time.Time
	Key          string
	IsToday      bool
	IsPast       bool
	FromSnapshot bool
	Activities   []ActivityView
	Planned      int
	Completed    int
}

// Day builds the plan for date. Viewing a past date for the first time
// freezes its applicable set into a persisted snapshot.
func (p *Planner) Day(date time.Time) (DayView, error) {
	date = utils.StartOfDay(date.In(p.loc))
	today := p.Today()
	key := utils.DateKey(date)

	catalog, err := p.catalog()
	if err != nil {
		return DayView{}, err
	}
	idx, err := p.index()
	if err != nil {
		return DayView{}, err
	}

	snapshots := make(map[string]models.DailySnapshot, 1)
	snap, err := p.store.GetSnapshot(key)
	switch {
	case err == nil:
		snapshots[key] = snap
	case !apperrors.Is(err, apperrors.ErrNotFound):
		return DayView{}, fmt.Errorf("failed to load snapshot: %w", err)
	}

	if snap, ok := p.scheduler.MaterializeSnapshot(catalog, date, today, snapshots); ok {
		created, err := p.store.SaveSnapshot(snap)
		if err != nil {
			return DayView{}, fmt.Errorf("failed to save snapshot: %w", err)
		}
		if !created {
			// Another writer got there first; theirs is authoritative
			if snap, err = p.store.GetSnapshot(key); err != nil {
				return DayView{}, fmt.Errorf("failed to load snapshot: %w", err)
			}
		} else {
			logger.Debug("Snapshot created", "date", key, "activities", len(snap.Activities))
		}
		snapshots[key] = snap
	}

	_, hasSnapshot := snapshots[key]
	view := DayView{
		Date:         date,
		Key:          key,
		IsToday:      utils.SameDay(date, today),
		IsPast:       utils.IsBeforeDay(date, today),
		FromSnapshot: hasSnapshot && utils.IsBeforeDay(date, today),
	}

	all, err := p.store.GetAllActivities(true)
	if err != nil {
		return DayView{}, fmt.Errorf("failed to load activities: %w", err)
	}
	live := make(map[string]models.Activity, len(all))
	for _, a := range all {
		live[a.ID] = a
	}

	plan := p.scheduler.BuildDailyPlan(catalog, date, today, snapshots, idx)
	view.Activities = make([]ActivityView, 0, len(plan))
	for _, a := range plan {
		// Streaks follow the live definition; archived or deleted activities have none
		st := models.Streak{ActivityID: a.ID}
		if source, ok := live[a.ID]; ok && !source.IsArchived {
			st = p.streaks.Streak(source, idx, today)
		}
		done := idx.CompletedCount(key, a.Slots)
		view.Activities = append(view.Activities, ActivityView{
			Activity:       a,
			Completed:      idx.IsActivityCompletedOnDate(a, date),
			CompletedHours: done,
			Streak:         st,
			Tier:           streak.TierFor(st.Current),
		})
		view.Planned += len(a.Slots)
		view.Completed += done
	}

	return view, nil
}
