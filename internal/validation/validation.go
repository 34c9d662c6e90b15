package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/daydial/internal/constants"
	"github.com/julianstephens/daydial/internal/models"
	"github.com/julianstephens/daydial/internal/utils"
)

// Conflict represents a detected problem in the activity catalog
type Conflict struct {
	Type        constants.ConflictType
	Description string
	Date        string   // YYYY-MM-DD format (if applicable)
	Items       []string // Activity names involved
	Hours       []int    // Dial hours involved (if applicable)
	ActivityIDs []string // IDs of activities involved
	Warning     bool     // Warnings do not make the catalog invalid
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// HasErrors returns true if any conflict is not a warning
func (vr *ValidationResult) HasErrors() bool {
	for _, c := range vr.Conflicts {
		if !c.Warning {
			return true
		}
	}
	return false
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		if conflict.Warning {
			fmt.Fprintf(&b, "- [warning] %s\n", conflict.Description)
		} else {
			fmt.Fprintf(&b, "- %s\n", conflict.Description)
		}
	}
	return b.String()
}

// Validator validates the activity catalog for conflicts
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateActivities checks every activity in the catalog
func (v *Validator) ValidateActivities(activities []models.Activity) ValidationResult {
	return v.ValidateActivitiesForDate(activities, nil)
}

// ValidateActivitiesForDate checks activities for conflicts, optionally scoped to a date.
// If date is nil, overlaps are reported for any day two activities could share.
// If date is provided, only activities applicable on that date are checked for overlaps.
func (v *Validator) ValidateActivitiesForDate(activities []models.Activity, date *time.Time) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	// Check for duplicate names, in catalog order
	var names []string
	nameIDs := make(map[string][]string)
	for _, a := range activities {
		if a.IsArchived || a.Name == "" {
			continue
		}
		if _, seen := nameIDs[a.Name]; !seen {
			names = append(names, a.Name)
		}
		nameIDs[a.Name] = append(nameIDs[a.Name], a.ID)
	}
	for _, name := range names {
		if ids := nameIDs[name]; len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        constants.ConflictDuplicateName,
				Description: fmt.Sprintf("Duplicate activity name: \"%s\" (IDs: %v)", name, ids),
				Items:       []string{name},
				ActivityIDs: ids,
			})
		}
	}

	// Check each activity on its own
	for _, a := range activities {
		result.Conflicts = append(result.Conflicts, validateActivity(a)...)
	}

	// Check for overlapping slots between live activities
	var live []models.Activity
	for _, a := range activities {
		if a.IsArchived {
			continue
		}
		if date != nil && !utils.IsApplicable(a, *date) {
			continue
		}
		live = append(live, a)
	}

	// Pairwise over the live catalog
	for i := 0; i < len(live); i++ {
		for j := i + 1; j < len(live); j++ {
			a1, a2 := live[i], live[j]
			hours := sharedHours(a1.Slots, a2.Slots)
			if len(hours) == 0 {
				continue
			}
			when, ok := sharedDay(a1, a2)
			if date != nil {
				when, ok = utils.DateKey(*date), true
			}
			if !ok {
				continue
			}
			c := Conflict{
				Type: constants.ConflictOverlappingSlots,
				Description: fmt.Sprintf("Activities overlap: \"%s\" and \"%s\" share %s on %s",
					a1.Name, a2.Name, formatHours(hours), when),
				Items:       []string{a1.Name, a2.Name},
				Hours:       hours,
				ActivityIDs: []string{a1.ID, a2.ID},
			}
			if utils.ValidDateKey(when) {
				c.Date = when
			}
			result.Conflicts = append(result.Conflicts, c)
		}
	}

	return result
}

func validateActivity(a models.Activity) []Conflict {
	var conflicts []Conflict
	label := a.Name
	if label == "" {
		label = a.ID
	}

	if a.ID == "" {
		conflicts = append(conflicts, Conflict{
			Type:        constants.ConflictMissingActivityID,
			Description: fmt.Sprintf("Activity \"%s\" has no ID", a.Name),
			Items:       []string{a.Name},
		})
	}

	var bad []int
	for _, h := range a.Slots {
		if h < constants.MinHour || h > constants.MaxHour {
			bad = append(bad, h)
		}
	}
	if len(bad) > 0 {
		conflicts = append(conflicts, Conflict{
			Type:        constants.ConflictInvalidSlot,
			Description: fmt.Sprintf("Activity \"%s\" has slots outside 0-23: %v", label, bad),
			Items:       []string{label},
			Hours:       bad,
			ActivityIDs: []string{a.ID},
		})
	}

	if a.IsRecurring {
		if a.Days != nil && len(a.Days) == 0 && !a.IsArchived {
			conflicts = append(conflicts, Conflict{
				Type:        constants.ConflictInvalidWeekday,
				Description: fmt.Sprintf("Activity \"%s\" has no weekdays and will never be scheduled", label),
				Items:       []string{label},
				ActivityIDs: []string{a.ID},
				Warning:     true,
			})
		}
		for _, d := range a.Days {
			if d < time.Sunday || d > time.Saturday {
				conflicts = append(conflicts, Conflict{
					Type:        constants.ConflictInvalidWeekday,
					Description: fmt.Sprintf("Activity \"%s\" has invalid weekday: %d", label, int(d)),
					Items:       []string{label},
					ActivityIDs: []string{a.ID},
				})
			}
		}
	} else {
		switch {
		case a.SpecificDate == "":
			conflicts = append(conflicts, Conflict{
				Type:        constants.ConflictMissingSpecificDate,
				Description: fmt.Sprintf("Single-date activity \"%s\" has no date and will never be scheduled", label),
				Items:       []string{label},
				ActivityIDs: []string{a.ID},
			})
		case !utils.ValidDateKey(a.SpecificDate):
			conflicts = append(conflicts, Conflict{
				Type:        constants.ConflictInvalidSpecificDate,
				Description: fmt.Sprintf("Single-date activity \"%s\" has invalid date: %s", label, a.SpecificDate),
				Date:        a.SpecificDate,
				Items:       []string{label},
				ActivityIDs: []string{a.ID},
			})
		}
	}

	if len(a.Slots) == 0 && !a.IsArchived {
		conflicts = append(conflicts, Conflict{
			Type:        constants.ConflictEmptySlots,
			Description: fmt.Sprintf("Activity \"%s\" has no slots and can never be completed", label),
			Items:       []string{label},
			ActivityIDs: []string{a.ID},
			Warning:     true,
		})
	}

	if a.ReminderMinutes < 0 {
		conflicts = append(conflicts, Conflict{
			Type:        constants.ConflictInvalidReminder,
			Description: fmt.Sprintf("Activity \"%s\" has negative reminder offset: %d", label, a.ReminderMinutes),
			Items:       []string{label},
			ActivityIDs: []string{a.ID},
		})
	}

	return conflicts
}

// sharedDay reports whether two activities can apply on the same day, and
// describes that day (a date key or a weekday list).
func sharedDay(a1, a2 models.Activity) (string, bool) {
	switch {
	case a1.IsRecurring && a2.IsRecurring:
		var common []string
		for _, d := range a1.ScheduledDays() {
			if containsWeekday(a2.ScheduledDays(), d) {
				common = append(common, d.String()[:3])
			}
		}
		return strings.Join(common, ","), len(common) > 0
	case !a1.IsRecurring && !a2.IsRecurring:
		ok := utils.ValidDateKey(a1.SpecificDate) && a1.SpecificDate == a2.SpecificDate
		return a1.SpecificDate, ok
	default:
		single, recurring := a1, a2
		if single.IsRecurring {
			single, recurring = a2, a1
		}
		day, err := time.Parse(constants.DateFormat, single.SpecificDate)
		if err != nil {
			return "", false
		}
		return single.SpecificDate, containsWeekday(recurring.ScheduledDays(), day.Weekday())
	}
}

func containsWeekday(days []time.Weekday, d time.Weekday) bool {
	for _, x := range days {
		if x == d {
			return true
		}
	}
	return false
}

func sharedHours(a, b []int) []int {
	set := make(map[int]bool, len(a))
	for _, h := range a {
		set[h] = true
	}
	var out []int
	for _, h := range b {
		if set[h] {
			out = append(out, h)
			delete(set, h)
		}
	}
	sort.Ints(out)
	return out
}

func formatHours(hours []int) string {
	parts := make([]string, len(hours))
	for i, h := range hours {
		parts[i] = fmt.Sprintf("%02d:00", h)
	}
	return strings.Join(parts, ", ")
}
