package scheduler

import (
	"sort"
	"time"

	"github.com/julianstephens/daydial/internal/completion"
	"github.com/julianstephens/daydial/internal/models"
	"github.com/julianstephens/daydial/internal/utils"
)

// Scheduler selects and orders the activities shown for a day.
type Scheduler struct{}

// New returns a Scheduler. It holds no state and is safe for concurrent use.
func New() *Scheduler {
	return &Scheduler{}
}

// BuildDailyPlan returns the activities to show for date, incomplete ones first.
// Past dates with a snapshot render the frozen set; every other date renders
// the applicable entries of the live catalog. Inputs are never mutated.
func (s *Scheduler) BuildDailyPlan(catalog []models.Activity, date, today time.Time, snapshots map[string]models.DailySnapshot, idx *completion.Index) []models.Activity {
	if date.IsZero() {
		return []models.Activity{}
	}

	var candidates []models.Activity
	if snap, ok := snapshots[utils.DateKey(date)]; ok && utils.IsBeforeDay(date, today) {
		candidates = copyActivities(snap.Activities)
	} else {
		candidates = applicable(catalog, date)
	}

	// Completed activities sink to the bottom, catalog order kept otherwise
	sort.SliceStable(candidates, func(i, j int) bool {
		return !idx.IsActivityCompletedOnDate(candidates[i], date) && idx.IsActivityCompletedOnDate(candidates[j], date)
	})

	return candidates
}

// MaterializeSnapshot freezes the applicable set for a past date. It reports
// false and an empty snapshot when date is today or later, or when a snapshot
// for the date already exists.
func (s *Scheduler) MaterializeSnapshot(catalog []models.Activity, date, today time.Time, snapshots map[string]models.DailySnapshot) (models.DailySnapshot, bool) {
	if date.IsZero() || !utils.IsBeforeDay(date, today) {
		return models.DailySnapshot{}, false
	}

	key := utils.DateKey(date)
	if _, exists := snapshots[key]; exists {
		return models.DailySnapshot{}, false
	}

	return models.DailySnapshot{
		Date:       key,
		Activities: applicable(catalog, date),
		CreatedAt:  today,
	}, true
}

func applicable(catalog []models.Activity, date time.Time) []models.Activity {
	out := make([]models.Activity, 0, len(catalog))
	for _, a := range catalog {
		if utils.IsApplicable(a, date) {
			out = append(out, copyActivity(a))
		}
	}
	return out
}

func copyActivities(in []models.Activity) []models.Activity {
	out := make([]models.Activity, len(in))
	for i, a := range in {
		out[i] = copyActivity(a)
	}
	return out
}

func copyActivity(a models.Activity) models.Activity {
	if a.Slots != nil {
		a.Slots = append(make([]int, 0, len(a.Slots)), a.Slots...)
	}
	if a.Days != nil {
		a.Days = append(make([]time.Weekday, 0, len(a.Days)), a.Days...)
	}
	return a
}
