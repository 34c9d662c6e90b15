package streak

import (
	"fmt"
	"testing"
	"time"

	"github.com/julianstephens/daydial/internal/completion"
	"github.com/julianstephens/daydial/internal/models"
)

func mustDate(t *testing.T, key string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", key, time.UTC)
	if err != nil {
		t.Fatalf("bad date %q: %v", key, err)
	}
	return d
}

// completeDays marks every hour in hours as done on each date.
func completeDays(dates []string, hours ...int) []models.CompletedSlot {
	var log []models.CompletedSlot
	for _, d := range dates {
		for _, h := range hours {
			log = append(log, models.CompletedSlot{Date: d, Hour: h})
		}
	}
	return log
}

var weekdaysOnly = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

func TestCurrent_SkipsInapplicableWeekend(t *testing.T) {
	a := models.Activity{ID: "A", Slots: []int{7, 8}, IsRecurring: true, Days: weekdaysOnly}
	idx := completion.New(completeDays([]string{
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05",
	}, 7, 8))

	e := New()
	got := e.Streak(a, idx, mustDate(t, "2024-01-08"))
	if got.Current != 5 {
		t.Errorf("expected current streak 5, got %d", got.Current)
	}
	if got.Longest != 5 {
		t.Errorf("expected longest streak 5, got %d", got.Longest)
	}
}

func TestCurrent_SingleDateActivity(t *testing.T) {
	b := models.Activity{ID: "B", Slots: []int{20}, IsRecurring: false, SpecificDate: "2024-03-15"}
	idx := completion.New(completeDays([]string{"2024-03-15"}, 20))

	e := New()
	if got := e.Current(b, idx, mustDate(t, "2024-03-16")); got != 1 {
		t.Errorf("expected current streak 1, got %d", got)
	}
	if got := e.Current(b, idx, mustDate(t, "2024-03-14")); got != 0 {
		t.Errorf("expected no streak before the date, got %d", got)
	}
	if got := e.Current(b, completion.New(nil), mustDate(t, "2024-03-20")); got != 0 {
		t.Errorf("expected no streak when never completed, got %d", got)
	}
}

func TestCurrent_BreaksOnMissedDay(t *testing.T) {
	a := models.Activity{ID: "daily", Slots: []int{6}, IsRecurring: true}
	// 2024-02-03 missed
	idx := completion.New(completeDays([]string{
		"2024-02-01", "2024-02-02", "2024-02-04", "2024-02-05",
	}, 6))

	e := New()
	tests := []struct {
		name    string
		ref     string
		current int
		longest int
	}{
		{"completed reference day", "2024-02-05", 2, 2},
		{"reference day in progress", "2024-02-06", 2, 2},
		{"gap before reference day", "2024-02-07", 0, 2},
		{"before the gap", "2024-02-02", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Streak(a, idx, mustDate(t, tt.ref))
			if got.Current != tt.current {
				t.Errorf("expected current %d, got %d", tt.current, got.Current)
			}
			if got.Longest != tt.longest {
				t.Errorf("expected longest %d, got %d", tt.longest, got.Longest)
			}
		})
	}
}

func TestCurrent_PartialDayIsIncomplete(t *testing.T) {
	a := models.Activity{ID: "a", Slots: []int{7, 8}, IsRecurring: true}
	idx := completion.New([]models.CompletedSlot{
		{Date: "2024-01-01", Hour: 7},
		{Date: "2024-01-01", Hour: 8},
		{Date: "2024-01-02", Hour: 7},
	})

	if got := New().Current(a, idx, mustDate(t, "2024-01-03")); got != 0 {
		t.Errorf("expected partial day to break the streak, got %d", got)
	}
}

func TestStreak_ArchivedAndEmpty(t *testing.T) {
	idx := completion.New(completeDays([]string{"2024-01-01", "2024-01-02"}, 9))
	ref := mustDate(t, "2024-01-02")
	e := New()

	archived := models.Activity{ID: "arch", Slots: []int{9}, IsRecurring: true, IsArchived: true}
	if got := e.Streak(archived, idx, ref); got.Current != 0 || got.Longest != 0 {
		t.Errorf("expected archived activity to report 0/0, got %d/%d", got.Current, got.Longest)
	}

	empty := models.Activity{ID: "empty", Slots: []int{}, IsRecurring: true}
	if got := e.Streak(empty, idx, ref); got.Current != 0 || got.Longest != 0 {
		t.Errorf("expected empty activity to report 0/0, got %d/%d", got.Current, got.Longest)
	}
}

func TestCurrent_LookbackBound(t *testing.T) {
	a := models.Activity{ID: "daily", Slots: []int{1}, IsRecurring: true}
	ref := mustDate(t, "2024-01-31")
	var dates []string
	for i := 1; i <= 31; i++ {
		dates = append(dates, fmt.Sprintf("2024-01-%02d", i))
	}
	idx := completion.New(completeDays(dates, 1))

	e := New(WithLookbackDays(10))
	if got := e.Current(a, idx, ref); got != 10 {
		t.Errorf("expected lookback to cap current at 10, got %d", got)
	}
	if got := e.Longest(a, idx, ref); got != 31 {
		t.Errorf("expected longest 31, got %d", got)
	}
	if New(WithLookbackDays(0)).LookbackDays() != 365 {
		t.Error("expected non-positive lookback to keep the default")
	}
}

func TestLongestNeverBelowCurrent(t *testing.T) {
	activities := []models.Activity{
		{ID: "daily", Slots: []int{7}, IsRecurring: true},
		{ID: "weekdays", Slots: []int{7, 8}, IsRecurring: true, Days: weekdaysOnly},
		{ID: "mwf", Slots: []int{8}, IsRecurring: true, Days: []time.Weekday{time.Monday, time.Wednesday, time.Friday}},
		{ID: "once", Slots: []int{7}, IsRecurring: false, SpecificDate: "2024-01-10"},
		{ID: "never", Slots: []int{7}, IsRecurring: true, Days: []time.Weekday{}},
	}
	// Irregular history: every day except multiples of 4 and 7
	var log []models.CompletedSlot
	for d := 1; d <= 31; d++ {
		if d%4 == 0 || d%7 == 0 {
			continue
		}
		key := fmt.Sprintf("2024-01-%02d", d)
		log = append(log, models.CompletedSlot{Date: key, Hour: 7}, models.CompletedSlot{Date: key, Hour: 8})
	}
	idx := completion.New(log)
	e := New()

	for d := 1; d <= 31; d++ {
		ref := mustDate(t, fmt.Sprintf("2024-01-%02d", d))
		for id, s := range e.Compute(activities, idx, ref) {
			if s.Longest < s.Current {
				t.Errorf("%s on %s: longest %d < current %d", id, ref.Format("2006-01-02"), s.Longest, s.Current)
			}
		}
	}
}

func TestLongest_SparseDistantHistory(t *testing.T) {
	a := models.Activity{ID: "A", Slots: []int{7, 8}, IsRecurring: true, Days: weekdaysOnly}
	log := []models.CompletedSlot{{Date: "1900-01-01", Hour: 3}}
	log = append(log, completeDays([]string{"1900-01-01"}, 7, 8)...)
	log = append(log, models.CompletedSlot{Date: "2024-01-03", Hour: 7})
	// Thu, Fri, Mon, Tue across a weekend, then Wed missed
	log = append(log, completeDays([]string{
		"2024-01-04", "2024-01-05", "2024-01-08", "2024-01-09", "2024-01-11", "2024-01-15",
	}, 7, 8)...)
	idx := completion.New(log)

	got := New().Streak(a, idx, mustDate(t, "2024-01-12"))
	if got.Current != 1 {
		t.Errorf("expected current streak 1, got %d", got.Current)
	}
	if got.Longest != 4 {
		t.Errorf("expected longest streak 4, got %d", got.Longest)
	}
}

func TestCompute_KeysEveryActivity(t *testing.T) {
	activities := []models.Activity{
		{ID: "a", Slots: []int{1}, IsRecurring: true},
		{ID: "b", Slots: []int{2}, IsRecurring: true, IsArchived: true},
	}
	got := New().Compute(activities, completion.New(nil), mustDate(t, "2024-01-01"))
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got["a"].ActivityID != "a" {
		t.Errorf("expected activity id a, got %q", got["a"].ActivityID)
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		n    int
		want Tier
	}{
		{0, TierNone},
		{1, TierNone},
		{2, TierEmber},
		{6, TierEmber},
		{7, TierBlaze},
		{29, TierBlaze},
		{30, TierInferno},
		{179, TierInferno},
		{180, TierEclipse},
		{1000, TierEclipse},
	}
	for _, tt := range tests {
		if got := TierFor(tt.n); got != tt.want {
			t.Errorf("TierFor(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
	if TierNone.Color() != "" {
		t.Error("expected no color for TierNone")
	}
}
