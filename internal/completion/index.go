// Package completion projects the flat completed-slot log into a set that
// answers "is (date, hour) done?" and "is this activity done on this date?".
package completion

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/daydial/internal/constants"
	"github.com/julianstephens/daydial/internal/models"
	"github.com/julianstephens/daydial/internal/utils"
)

// Index is a read-side projection of the completed-slot log. The zero value
// is an empty index. It is not safe for concurrent mutation.
type Index struct {
	slots    map[string]struct{}
	earliest string
}

// New builds an index from the log. Duplicate entries collapse into one.
func New(log []models.CompletedSlot) *Index {
	idx := &Index{slots: make(map[string]struct{}, len(log))}
	for _, s := range log {
		idx.add(s.Date, s.Hour)
	}
	return idx
}

func (idx *Index) add(dateKey string, hour int) {
	if idx.slots == nil {
		idx.slots = make(map[string]struct{})
	}
	idx.slots[models.SlotKey(dateKey, hour)] = struct{}{}
	if idx.earliest == "" || dateKey < idx.earliest {
		idx.earliest = dateKey
	}
}

// IsSlotCompleted reports whether hour was completed on dateKey.
func (idx *Index) IsSlotCompleted(dateKey string, hour int) bool {
	if idx == nil {
		return false
	}
	_, ok := idx.slots[models.SlotKey(dateKey, hour)]
	return ok
}

// IsActivityCompletedOnDate reports whether every slot of the activity was
// completed on date. An activity without slots is never completed.
func (idx *Index) IsActivityCompletedOnDate(activity models.Activity, date time.Time) bool {
	if len(activity.Slots) == 0 || date.IsZero() {
		return false
	}
	key := utils.DateKey(date)
	for _, hour := range activity.Slots {
		if !idx.IsSlotCompleted(key, hour) {
			return false
		}
	}
	return true
}

// CompletedCount returns how many of hours were completed on dateKey.
func (idx *Index) CompletedCount(dateKey string, hours []int) int {
	count := 0
	for _, hour := range hours {
		if idx.IsSlotCompleted(dateKey, hour) {
			count++
		}
	}
	return count
}

// Toggle flips a slot and returns its new state. Reads after Toggle observe
// the change immediately. A nil index records nothing and reports false.
func (idx *Index) Toggle(dateKey string, hour int) bool {
	if idx == nil {
		return false
	}
	if idx.IsSlotCompleted(dateKey, hour) {
		delete(idx.slots, models.SlotKey(dateKey, hour))
		idx.recomputeEarliest()
		return false
	}
	idx.add(dateKey, hour)
	return true
}

func (idx *Index) recomputeEarliest() {
	idx.earliest = ""
	for key := range idx.slots {
		s, ok := parseKey(key)
		if !ok {
			continue
		}
		if idx.earliest == "" || s.Date < idx.earliest {
			idx.earliest = s.Date
		}
	}
}

// EarliestDate returns the earliest date key with a completed slot, or "" if
// the index is empty.
func (idx *Index) EarliestDate() string {
	if idx == nil {
		return ""
	}
	return idx.earliest
}

// CompletedDates returns the date keys on which every hour was completed,
// ascending. It returns nil for an empty hour list.
func (idx *Index) CompletedDates(hours []int) []string {
	if idx == nil || len(hours) == 0 {
		return nil
	}
	var out []string
	for key := range idx.slots {
		s, ok := parseKey(key)
		if !ok || s.Hour != hours[0] {
			continue
		}
		if idx.CompletedCount(s.Date, hours) == len(hours) {
			out = append(out, s.Date)
		}
	}
	sort.Strings(out)
	return out
}

// Len returns the number of distinct completed slots.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.slots)
}

// Slots exports the index ordered by date then hour.
func (idx *Index) Slots() []models.CompletedSlot {
	if idx == nil {
		return nil
	}
	out := make([]models.CompletedSlot, 0, len(idx.slots))
	for key := range idx.slots {
		s, ok := parseKey(key)
		if !ok {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Hour < out[j].Hour
	})
	return out
}

// parseKey splits "{yyyy-MM-dd}-{hour}" back into a slot.
func parseKey(key string) (models.CompletedSlot, bool) {
	if len(key) <= len(constants.DateFormat)+1 {
		return models.CompletedSlot{}, false
	}
	date := key[:len(constants.DateFormat)]
	rest := strings.TrimPrefix(key[len(constants.DateFormat):], "-")
	hour, err := strconv.Atoi(rest)
	if err != nil {
		return models.CompletedSlot{}, false
	}
	return models.CompletedSlot{Date: date, Hour: hour}, true
}
