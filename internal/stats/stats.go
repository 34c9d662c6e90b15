// Package stats summarizes planned and completed hours over a day, week,
// month or year.
package stats

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/daydial/internal/completion"
	"github.com/julianstephens/daydial/internal/constants"
	"github.com/julianstephens/daydial/internal/models"
	"github.com/julianstephens/daydial/internal/utils"
)

// ActivityStat holds the per-activity totals of a period.
type ActivityStat struct {
	ID        string
	Name      string
	Icon      string
	Color     string
	Planned   int
	Completed int
}

// Bucket is one point of the trend series.
type Bucket struct {
	Label     string
	Completed int
}

// Summary is the aggregate view of a period.
type Summary struct {
	Period            constants.PeriodType
	Start             time.Time
	End               time.Time
	Planned           int
	Completed         int
	CompletionPercent int
	MostFrequent      string
	Activities        []ActivityStat
	Trend             []Bucket
}

// ParsePeriod accepts day, week, month or year.
func ParsePeriod(s string) (constants.PeriodType, error) {
	switch p := constants.PeriodType(strings.ToLower(strings.TrimSpace(s))); p {
	case constants.PeriodDay, constants.PeriodWeek, constants.PeriodMonth, constants.PeriodYear:
		return p, nil
	default:
		return "", fmt.Errorf("invalid period %q (expected day, week, month or year)", s)
	}
}

// WeekStart maps the week_start setting to a weekday. Anything other than
// "sunday" starts the week on Monday.
func WeekStart(setting string) time.Weekday {
	if strings.EqualFold(setting, "sunday") {
		return time.Sunday
	}
	return time.Monday
}

// Interval returns the first and last calendar day of the period containing anchor.
func Interval(period constants.PeriodType, anchor time.Time, weekStart time.Weekday) (time.Time, time.Time) {
	day := utils.StartOfDay(anchor)
	switch period {
	case constants.PeriodWeek:
		offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
		start := utils.AddDays(day, -offset)
		return start, utils.AddDays(start, 6)
	case constants.PeriodMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return start, utils.AddDays(start.AddDate(0, 1, 0), -1)
	case constants.PeriodYear:
		start := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location())
		return start, time.Date(day.Year(), time.December, 31, 0, 0, 0, 0, day.Location())
	default:
		return day, day
	}
}

// Summarize aggregates the period containing anchor. Planned hours are the
// slots of activities applicable on each day. A completed hour counts once
// toward the total and once for every applicable activity that owns it;
// completed hours no applicable activity owns are ignored.
func Summarize(catalog []models.Activity, idx *completion.Index, period constants.PeriodType, anchor time.Time, weekStart time.Weekday) Summary {
	start, end := Interval(period, anchor, weekStart)
	s := Summary{Period: period, Start: start, End: end}

	byID := make(map[string]int)
	for _, a := range catalog {
		if a.IsArchived {
			continue
		}
		byID[a.ID] = len(s.Activities)
		s.Activities = append(s.Activities, ActivityStat{ID: a.ID, Name: a.Name, Icon: a.Icon, Color: a.Color})
	}

	trend := make(map[string]int)
	for _, day := range utils.DaysBetween(start, end) {
		key := utils.DateKey(day)
		owned := make(map[int]bool)
		for _, a := range catalog {
			if !utils.IsApplicable(a, day) {
				continue
			}
			stat := &s.Activities[byID[a.ID]]
			stat.Planned += len(a.Slots)
			s.Planned += len(a.Slots)
			for _, hour := range a.Slots {
				if idx.IsSlotCompleted(key, hour) {
					stat.Completed++
					owned[hour] = true
				}
			}
		}
		s.Completed += len(owned)
		trend[bucketKey(period, day)] += len(owned)
	}

	if s.Planned > 0 {
		s.CompletionPercent = int(math.Round(float64(s.Completed) / float64(s.Planned) * 100))
	}

	best := 0
	for _, stat := range s.Activities {
		if stat.Completed > best {
			best = stat.Completed
			s.MostFrequent = stat.Name
		}
	}

	s.Trend = buildTrend(period, start, end, trend, s.Activities)
	return s
}

func bucketKey(period constants.PeriodType, day time.Time) string {
	if period == constants.PeriodYear {
		return day.Format("2006-01")
	}
	return utils.DateKey(day)
}

func buildTrend(period constants.PeriodType, start, end time.Time, counts map[string]int, activities []ActivityStat) []Bucket {
	var out []Bucket
	switch period {
	case constants.PeriodWeek:
		for _, day := range utils.DaysBetween(start, end) {
			out = append(out, Bucket{Label: day.Format("Mon"), Completed: counts[utils.DateKey(day)]})
		}
	case constants.PeriodMonth:
		for _, day := range utils.DaysBetween(start, end) {
			out = append(out, Bucket{Label: strconv.Itoa(day.Day()), Completed: counts[utils.DateKey(day)]})
		}
	case constants.PeriodYear:
		for m := start; !m.After(end); m = m.AddDate(0, 1, 0) {
			out = append(out, Bucket{Label: m.Format("Jan"), Completed: counts[m.Format("2006-01")]})
		}
	default:
		for _, stat := range activities {
			if stat.Completed > 0 {
				out = append(out, Bucket{Label: stat.Name, Completed: stat.Completed})
			}
		}
	}
	return out
}
