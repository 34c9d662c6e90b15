package models

import (
	"sort"
	"time"

	"github.com/julianstephens/daydial/internal/constants"
)

// Activity is a named block of hours on the daily dial. Recurring activities
// apply on a set of weekdays; single-date activities apply on SpecificDate only.
type Activity struct {
	ID              string         `json:"id" yaml:"id"`
	Name            string         `json:"name" yaml:"name"`
	Icon            string         `json:"icon" yaml:"icon"`
	Color           string         `json:"color" yaml:"color"`
	Slots           []int          `json:"slots" yaml:"slots"`
	IsRecurring     bool           `json:"isRecurring" yaml:"isRecurring"`
	Days            []time.Weekday `json:"days" yaml:"days"`
	SpecificDate    string         `json:"specificDate,omitempty" yaml:"specificDate,omitempty"` // yyyy-MM-dd
	IsArchived      bool           `json:"isArchived" yaml:"isArchived"`
	ReminderMinutes int            `json:"reminderMinutes,omitempty" yaml:"reminderMinutes,omitempty"`
	CreatedAt       time.Time      `json:"createdAt,omitzero" yaml:"createdAt,omitempty"`
}

// ScheduledDays returns the weekdays a recurring activity applies on.
// A nil day set means the field was never set and defaults to every day.
func (a Activity) ScheduledDays() []time.Weekday {
	if a.Days == nil {
		return constants.AllWeekdays
	}
	return a.Days
}

// HasSlot reports whether the activity occupies the given hour.
func (a Activity) HasSlot(hour int) bool {
	for _, h := range a.Slots {
		if h == hour {
			return true
		}
	}
	return false
}

// ActivityRecord is the intake form of an activity as it arrives from storage
// or an import file. Fields that older data may lack are pointers so that
// Normalize can tell "unset" apart from "set to the zero value".
type ActivityRecord struct {
	ID              string    `json:"id" yaml:"id"`
	Name            string    `json:"name" yaml:"name"`
	Icon            string    `json:"icon" yaml:"icon"`
	Color           string    `json:"color" yaml:"color"`
	Slots           []int     `json:"slots" yaml:"slots"`
	IsRecurring     *bool     `json:"isRecurring,omitempty" yaml:"isRecurring,omitempty"`
	Days            []int     `json:"days" yaml:"days"`
	SpecificDate    string    `json:"specificDate,omitempty" yaml:"specificDate,omitempty"`
	IsArchived      bool      `json:"isArchived,omitempty" yaml:"isArchived,omitempty"`
	ReminderMinutes int       `json:"reminderMinutes,omitempty" yaml:"reminderMinutes,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitzero" yaml:"createdAt,omitempty"`
}

// Normalize migrates a record into a fully specified Activity:
// a missing isRecurring becomes true, missing days on a recurring activity
// become all seven weekdays, and slots/days are de-duplicated and sorted.
// Only the field selected by IsRecurring is kept.
func (r ActivityRecord) Normalize() Activity {
	recurring := true
	if r.IsRecurring != nil {
		recurring = *r.IsRecurring
	}

	a := Activity{
		ID:              r.ID,
		Name:            r.Name,
		Icon:            r.Icon,
		Color:           r.Color,
		Slots:           uniqueSorted(r.Slots),
		IsRecurring:     recurring,
		IsArchived:      r.IsArchived,
		ReminderMinutes: r.ReminderMinutes,
		CreatedAt:       r.CreatedAt,
	}

	if recurring {
		if r.Days == nil {
			a.Days = append([]time.Weekday(nil), constants.AllWeekdays...)
		} else {
			days := uniqueSorted(r.Days)
			a.Days = make([]time.Weekday, len(days))
			for i, d := range days {
				a.Days[i] = time.Weekday(d)
			}
		}
	} else {
		a.SpecificDate = r.SpecificDate
	}

	return a
}

// RecordFromActivity converts an activity back to its intake form.
func RecordFromActivity(a Activity) ActivityRecord {
	recurring := a.IsRecurring
	r := ActivityRecord{
		ID:              a.ID,
		Name:            a.Name,
		Icon:            a.Icon,
		Color:           a.Color,
		Slots:           append([]int(nil), a.Slots...),
		IsRecurring:     &recurring,
		IsArchived:      a.IsArchived,
		ReminderMinutes: a.ReminderMinutes,
		CreatedAt:       a.CreatedAt,
	}
	if a.IsRecurring {
		r.Days = make([]int, 0, len(a.ScheduledDays()))
		for _, d := range a.ScheduledDays() {
			r.Days = append(r.Days, int(d))
		}
	} else {
		r.SpecificDate = a.SpecificDate
	}
	return r
}

// NormalizeActivity re-applies normalization to an activity built in code.
func NormalizeActivity(a Activity) Activity {
	return RecordFromActivity(a).Normalize()
}

func uniqueSorted(values []int) []int {
	if values == nil {
		return []int{}
	}
	seen := make(map[int]bool, len(values))
	out := make([]int, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
