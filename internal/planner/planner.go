// Package planner binds the pure scheduling, streak and statistics core to a
// storage provider and a clock. Commands and the TUI go through it.
package planner

import (
	"fmt"
	"time"

	"github.com/julianstephens/daydial/internal/completion"
	"github.com/julianstephens/daydial/internal/constants"
	apperrors "github.com/julianstephens/daydial/internal/errors"
	"github.com/julianstephens/daydial/internal/logger"
	"github.com/julianstephens/daydial/internal/models"
	"github.com/julianstephens/daydial/internal/scheduler"
	"github.com/julianstephens/daydial/internal/stats"
	"github.com/julianstephens/daydial/internal/storage"
	"github.com/julianstephens/daydial/internal/streak"
	"github.com/julianstephens/daydial/internal/utils"
	"github.com/julianstephens/daydial/internal/validation"
)

// Planner answers day, streak and statistics queries against a store.
type Planner struct {
	store     storage.Provider
	scheduler *scheduler.Scheduler
	streaks   *streak.Engine
	validator *validation.Validator
	loc       *time.Location
	weekStart time.Weekday
	now       func() time.Time
}

// Option configures a Planner.
type Option func(*Planner)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) {
		p.now = now
	}
}

// WithLocation overrides the timezone from settings.
func WithLocation(loc *time.Location) Option {
	return func(p *Planner) {
		p.loc = loc
	}
}

// New creates a Planner configured from the store's settings. A store without
// settings, or with an unknown timezone, falls back to the defaults.
func New(store storage.Provider, opts ...Option) *Planner {
	settings, err := store.GetSettings()
	if err != nil {
		logger.Warn("Failed to read settings, using defaults", "error", err)
		settings = models.DefaultSettings()
	}

	p := &Planner{
		store:     store,
		scheduler: scheduler.New(),
		streaks:   streak.New(streak.WithLookbackDays(settings.LookbackDays)),
		validator: validation.New(),
		weekStart: stats.WeekStart(settings.WeekStart),
		now:       time.Now,
	}

	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		logger.Warn("Unknown timezone, using local time", "timezone", settings.Timezone, "error", err)
		loc = time.Local
	}
	p.loc = loc

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Location returns the timezone all dates are interpreted in.
func (p *Planner) Location() *time.Location {
	return p.loc
}

// Today returns local midnight of the current day.
func (p *Planner) Today() time.Time {
	return utils.StartOfDay(p.now().In(p.loc))
}

// ParseDate resolves a date key, or today when key is empty.
func (p *Planner) ParseDate(key string) (time.Time, error) {
	if key == "" {
		return p.Today(), nil
	}
	d, err := utils.ParseDateKey(key, p.loc)
	if err != nil {
		return time.Time{}, apperrors.InvalidInputf("date %q, expected %s", key, constants.DateFormat)
	}
	return d, nil
}

// catalog loads the non-archived activities and reports malformed ones.
func (p *Planner) catalog() ([]models.Activity, error) {
	activities, err := p.store.GetAllActivities(false)
	if err != nil {
		return nil, fmt.Errorf("failed to load activities: %w", err)
	}

	result := p.validator.ValidateActivities(activities)
	for _, c := range result.Conflicts {
		if !c.Warning && isMalformed(c.Type) {
			logger.Warn("Malformed activity", "type", c.Type, "activities", c.ActivityIDs, "description", c.Description)
		}
	}
	return activities, nil
}

func isMalformed(t constants.ConflictType) bool {
	switch t {
	case constants.ConflictInvalidSlot, constants.ConflictInvalidWeekday,
		constants.ConflictMissingSpecificDate, constants.ConflictInvalidSpecificDate,
		constants.ConflictMissingActivityID:
		return true
	}
	return false
}

func (p *Planner) index() (*completion.Index, error) {
	slots, err := p.store.GetCompletedSlots()
	if err != nil {
		return nil, fmt.Errorf("failed to load completed slots: %w", err)
	}
	return completion.New(slots), nil
}

// Validate checks the whole catalog, archived entries included.
func (p *Planner) Validate() (validation.ValidationResult, error) {
	activities, err := p.store.GetAllActivities(true)
	if err != nil {
		return validation.ValidationResult{}, fmt.Errorf("failed to load activities: %w", err)
	}
	return p.validator.ValidateActivities(activities), nil
}
