// Package streak counts consecutive applicable days on which an activity was
// fully completed. Days on which an activity does not apply are transparent.
package streak

import (
	"time"

	"github.com/julianstephens/daydial/internal/completion"
	"github.com/julianstephens/daydial/internal/constants"
	"github.com/julianstephens/daydial/internal/models"
	"github.com/julianstephens/daydial/internal/utils"
)

// Engine computes streaks relative to a caller supplied reference date.
type Engine struct {
	lookbackDays int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLookbackDays bounds the backward walk of the current streak.
// Non-positive values keep the default.
func WithLookbackDays(days int) Option {
	return func(e *Engine) {
		if days > 0 {
			e.lookbackDays = days
		}
	}
}

// New creates an Engine with a lookback of constants.DefaultLookbackDays.
func New(opts ...Option) *Engine {
	e := &Engine{lookbackDays: constants.DefaultLookbackDays}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// LookbackDays returns the configured walk bound.
func (e *Engine) LookbackDays() int {
	return e.lookbackDays
}

// Compute returns the streak of every activity in the catalog keyed by ID.
func (e *Engine) Compute(catalog []models.Activity, idx *completion.Index, ref time.Time) map[string]models.Streak {
	out := make(map[string]models.Streak, len(catalog))
	for _, a := range catalog {
		out[a.ID] = e.Streak(a, idx, ref)
	}
	return out
}

// Streak returns both counters for one activity.
func (e *Engine) Streak(a models.Activity, idx *completion.Index, ref time.Time) models.Streak {
	current := e.Current(a, idx, ref)
	return models.Streak{
		ActivityID: a.ID,
		Current:    current,
		Longest:    e.longest(a, idx, ref, current),
	}
}

// Current walks back from ref. Inapplicable days are skipped, a completed
// applicable day extends the streak and an incomplete one ends it. The
// reference day is still in progress, so leaving it incomplete does not break
// the streak. Single-date activities stop once the walk passes their date.
func (e *Engine) Current(a models.Activity, idx *completion.Index, ref time.Time) int {
	if !countable(a) || ref.IsZero() {
		return 0
	}

	ref = utils.StartOfDay(ref)
	count := 0
	for i := 0; i < e.lookbackDays; i++ {
		day := utils.AddDays(ref, -i)
		if utils.PrecedesSpecificDate(a, day) {
			break
		}
		if !utils.IsApplicable(a, day) {
			continue
		}
		if idx.IsActivityCompletedOnDate(a, day) {
			count++
			continue
		}
		if i == 0 {
			continue
		}
		break
	}
	return count
}

// Longest returns the longest run of completed applicable days up to ref. It is never lower than Current.
func (e *Engine) Longest(a models.Activity, idx *completion.Index, ref time.Time) int {
	return e.longest(a, idx, ref, e.Current(a, idx, ref))
}

func (e *Engine) longest(a models.Activity, idx *completion.Index, ref time.Time, current int) int {
	if !countable(a) || ref.IsZero() {
		return 0
	}

	ref = utils.StartOfDay(ref)
	longest, run := 0, 0
	var prev time.Time
	// Only completed days are visited; the gap between two of them is
	// walked until the first applicable day, at most a week.
	for _, key := range idx.CompletedDates(a.Slots) {
		day, err := utils.ParseDateKey(key, ref.Location())
		if err != nil {
			continue
		}
		if day.After(ref) {
			break
		}
		if !utils.IsApplicable(a, day) {
			continue
		}
		if run > 0 && missedBetween(a, prev, day) {
			run = 0
		}
		run++
		prev = day
		if run > longest {
			longest = run
		}
	}

	if current > longest {
		longest = current
	}
	return longest
}

// missedBetween reports whether an applicable day falls strictly between from
// and to.
func missedBetween(a models.Activity, from, to time.Time) bool {
	for day := utils.AddDays(from, 1); day.Before(to); day = utils.AddDays(day, 1) {
		if utils.IsApplicable(a, day) {
			return true
		}
	}
	return false
}

// countable reports whether an activity can hold a streak at all.
func countable(a models.Activity) bool {
	return !a.IsArchived && len(a.Slots) > 0
}
