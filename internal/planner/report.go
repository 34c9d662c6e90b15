package planner

import (
	"fmt"
	"time"

	"github.com/julianstephens/daydial/internal/completion"
	"github.com/julianstephens/daydial/internal/constants"
	"github.com/julianstephens/daydial/internal/models"
	"github.com/julianstephens/daydial/internal/stats"
	"github.com/julianstephens/daydial/internal/streak"
	"github.com/julianstephens/daydial/internal/utils"
)

// StreakView pairs an activity with its streak and tier.
type StreakView struct {
	Activity models.Activity
	Streak   models.Streak
	Tier     streak.Tier
}

// Streaks returns the streak of every active activity relative to ref, in
// catalog order.
func (p *Planner) Streaks(ref time.Time) ([]StreakView, error) {
	catalog, err := p.catalog()
	if err != nil {
		return nil, err
	}
	idx, err := p.index()
	if err != nil {
		return nil, err
	}

	ref = utils.StartOfDay(ref.In(p.loc))
	computed := p.streaks.Compute(catalog, idx, ref)
	views := make([]StreakView, 0, len(catalog))
	for _, a := range catalog {
		st := computed[a.ID]
		views = append(views, StreakView{Activity: a, Streak: st, Tier: streak.TierFor(st.Current)})
	}
	return views, nil
}

// Stats summarizes the period containing anchor.
func (p *Planner) Stats(period constants.PeriodType, anchor time.Time) (stats.Summary, error) {
	catalog, err := p.catalog()
	if err != nil {
		return stats.Summary{}, err
	}

	anchor = utils.StartOfDay(anchor.In(p.loc))
	start, end := stats.Interval(period, anchor, p.weekStart)
	slots, err := p.store.GetCompletedSlotsInRange(utils.DateKey(start), utils.DateKey(end))
	if err != nil {
		return stats.Summary{}, fmt.Errorf("failed to load completed slots: %w", err)
	}

	return stats.Summarize(catalog, completion.New(slots), period, anchor, p.weekStart), nil
}
