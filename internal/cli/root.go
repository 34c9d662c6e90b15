package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/daydial/internal/backup"
	"github.com/julianstephens/daydial/internal/constants"
	apperrors "github.com/julianstephens/daydial/internal/errors"
	"github.com/julianstephens/daydial/internal/logger"
	"github.com/julianstephens/daydial/internal/models"
	"github.com/julianstephens/daydial/internal/planner"
	"github.com/julianstephens/daydial/internal/storage"
)

type Context struct {
	Store storage.Provider
	// Now overrides the clock; nil means time.Now
	Now func() time.Time

	planner *planner.Planner
}

// Planner returns the planner bound to the loaded store, created on first use
// so it picks up the persisted settings.
func (c *Context) Planner() *planner.Planner {
	if c.planner == nil {
		var opts []planner.Option
		if c.Now != nil {
			opts = append(opts, planner.WithClock(c.Now))
		}
		c.planner = planner.New(c.Store, opts...)
	}
	return c.planner
}

// ResetPlanner drops the cached planner after settings change
func (c *Context) ResetPlanner() {
	c.planner = nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors.
// Only file-backed SQLite stores are backed up.
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if path == constants.MemoryConfigPath || path == "postgresql" {
		return
	}
	mgr := backup.NewManager(path)
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// FindActivity resolves an activity by ID, or by case-insensitive name
func (c *Context) FindActivity(ref string) (models.Activity, error) {
	if a, err := c.Store.GetActivity(ref); err == nil {
		return a, nil
	} else if !apperrors.Is(err, apperrors.ErrNotFound) {
		return models.Activity{}, err
	}

	activities, err := c.Store.GetAllActivities(true)
	if err != nil {
		return models.Activity{}, err
	}
	var matches []models.Activity
	for _, a := range activities {
		if strings.EqualFold(a.Name, ref) {
			matches = append(matches, a)
		}
	}
	switch len(matches) {
	case 0:
		return models.Activity{}, apperrors.NotFoundf("activity %q", ref)
	case 1:
		return matches[0], nil
	default:
		return models.Activity{}, fmt.Errorf("%d activities are named %q, use an ID instead", len(matches), ref)
	}
}

// ParseWeekdays parses a comma-separated list of weekdays
func ParseWeekdays(s string) ([]time.Weekday, error) {
	if strings.TrimSpace(s) == "" {
		return []time.Weekday{}, nil
	}

	dayMap := map[string]time.Weekday{
		"sun":       time.Sunday,
		"sunday":    time.Sunday,
		"mon":       time.Monday,
		"monday":    time.Monday,
		"tue":       time.Tuesday,
		"tuesday":   time.Tuesday,
		"wed":       time.Wednesday,
		"wednesday": time.Wednesday,
		"thu":       time.Thursday,
		"thursday":  time.Thursday,
		"fri":       time.Friday,
		"friday":    time.Friday,
		"sat":       time.Saturday,
		"saturday":  time.Saturday,
	}

	var weekdays []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		switch part {
		case "all", "daily", "everyday":
			weekdays = append(weekdays, constants.AllWeekdays...)
			continue
		case "weekdays":
			weekdays = append(weekdays, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)
			continue
		case "weekends":
			weekdays = append(weekdays, time.Saturday, time.Sunday)
			continue
		}
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
		} else {
			// Try parsing as number (0=Sunday, 6=Saturday)
			num, err := strconv.Atoi(part)
			if err == nil && num >= 0 && num <= 6 {
				weekdays = append(weekdays, time.Weekday(num))
			} else {
				return nil, fmt.Errorf("invalid weekday: %s", part)
			}
		}
	}

	sort.Slice(weekdays, func(i, j int) bool { return weekdays[i] < weekdays[j] })
	unique := weekdays[:0]
	for i, wd := range weekdays {
		if i == 0 || wd != weekdays[i-1] {
			unique = append(unique, wd)
		}
	}
	return unique, nil
}

// ParseSlots parses hours such as "7,8,9" or ranges such as "7-9". A range
// whose end is before its start wraps past midnight, so "22-1" is 22,23,0,1.
func ParseSlots(s string) ([]int, error) {
	seen := make(map[int]bool)
	var hours []int
	add := func(h int) {
		if !seen[h] {
			seen[h] = true
			hours = append(hours, h)
		}
	}

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		startStr, endStr, isRange := strings.Cut(part, "-")
		start, err := parseHour(startStr)
		if err != nil {
			return nil, err
		}
		if !isRange {
			add(start)
			continue
		}
		end, err := parseHour(endStr)
		if err != nil {
			return nil, err
		}
		for h := start; ; h = (h + 1) % constants.HoursPerDay {
			add(h)
			if h == end {
				break
			}
		}
	}

	sort.Ints(hours)
	if hours == nil {
		hours = []int{}
	}
	return hours, nil
}

func parseHour(s string) (int, error) {
	h, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || h < constants.MinHour || h > constants.MaxHour {
		return 0, fmt.Errorf("invalid hour: %q (expected %d-%d)", s, constants.MinHour, constants.MaxHour)
	}
	return h, nil
}

// FormatDays renders an activity's schedule for listings
func FormatDays(a models.Activity) string {
	if !a.IsRecurring {
		return "on " + a.SpecificDate
	}
	days := a.ScheduledDays()
	switch len(days) {
	case 0:
		return "never"
	case 7:
		return "daily"
	}
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()[:3]
	}
	return strings.Join(names, ",")
}

// FormatSlots renders hours with consecutive runs collapsed, e.g. "0-5,9"
func FormatSlots(hours []int) string {
	if len(hours) == 0 {
		return "-"
	}
	var parts []string
	for i := 0; i < len(hours); {
		j := i
		for j+1 < len(hours) && hours[j+1] == hours[j]+1 {
			j++
		}
		if i == j {
			parts = append(parts, strconv.Itoa(hours[i]))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", hours[i], hours[j]))
		}
		i = j + 1
	}
	return strings.Join(parts, ",")
}
