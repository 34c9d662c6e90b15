package cli

import (
	"reflect"
	"testing"
	"time"

	"github.com/julianstephens/daydial/internal/models"
	"github.com/julianstephens/daydial/internal/storage/memory"
)

func setupTestContext(t *testing.T, activities ...models.Activity) *Context {
	t.Helper()
	store := memory.New()
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	for _, a := range activities {
		if err := store.AddActivity(a); err != nil {
			t.Fatalf("failed to add activity: %v", err)
		}
	}
	return &Context{Store: store}
}

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []time.Weekday
		wantErr bool
	}{
		{"empty means never", "", []time.Weekday{}, false},
		{"names", "mon,Wednesday,fri", []time.Weekday{time.Monday, time.Wednesday, time.Friday}, false},
		{"numbers", "0,6", []time.Weekday{time.Sunday, time.Saturday}, false},
		{"weekends", "weekends", []time.Weekday{time.Sunday, time.Saturday}, false},
		{"duplicates collapse", "mon,weekdays", []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}, false},
		{"daily", "daily", []time.Weekday{0, 1, 2, 3, 4, 5, 6}, false},
		{"out of range", "7", nil, true},
		{"unknown name", "someday", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdays(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseSlots(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{"list", "9,7,8", []int{7, 8, 9}, false},
		{"range", "7-9", []int{7, 8, 9}, false},
		{"wrapping range", "22-1", []int{0, 1, 22, 23}, false},
		{"mixed with duplicates", "5,3-5,5", []int{3, 4, 5}, false},
		{"empty", "", []int{}, false},
		{"hour too large", "24", nil, true},
		{"negative", "-1", nil, true},
		{"not a number", "nine", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSlots(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFormatSlots(t *testing.T) {
	tests := []struct {
		hours []int
		want  string
	}{
		{nil, "-"},
		{[]int{9}, "9"},
		{[]int{0, 1, 2, 3, 4, 5, 9}, "0-5,9"},
		{[]int{6, 21, 22, 23}, "6,21-23"},
	}

	for _, tt := range tests {
		if got := FormatSlots(tt.hours); got != tt.want {
			t.Errorf("FormatSlots(%v): expected %q, got %q", tt.hours, tt.want, got)
		}
	}
}

func TestFormatDays(t *testing.T) {
	tests := []struct {
		name     string
		activity models.Activity
		want     string
	}{
		{"unset days", models.Activity{IsRecurring: true}, "daily"},
		{"explicit empty", models.Activity{IsRecurring: true, Days: []time.Weekday{}}, "never"},
		{"some days", models.Activity{IsRecurring: true, Days: []time.Weekday{time.Monday, time.Friday}}, "Mon,Fri"},
		{"single date", models.Activity{SpecificDate: "2024-01-10"}, "on 2024-01-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDays(tt.activity); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFindActivity(t *testing.T) {
	ctx := setupTestContext(t,
		models.Activity{ID: "a", Name: "Work", IsRecurring: true, Slots: []int{9}},
		models.Activity{ID: "b", Name: "Read", IsRecurring: true, Slots: []int{20}},
		models.Activity{ID: "c", Name: "read", IsRecurring: true, Slots: []int{21}},
	)

	t.Run("by id", func(t *testing.T) {
		a, err := ctx.FindActivity("b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Name != "Read" {
			t.Errorf("expected Read, got %s", a.Name)
		}
	})

	t.Run("by name ignoring case", func(t *testing.T) {
		a, err := ctx.FindActivity("WORK")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.ID != "a" {
			t.Errorf("expected a, got %s", a.ID)
		}
	})

	t.Run("ambiguous name", func(t *testing.T) {
		if _, err := ctx.FindActivity("read"); err == nil {
			t.Error("expected error for ambiguous name")
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, err := ctx.FindActivity("nap"); err == nil {
			t.Error("expected error for unknown activity")
		}
	})
}

func TestPlanner_UsesInjectedClock(t *testing.T) {
	ctx := setupTestContext(t)
	fixed := time.Date(2024, 1, 10, 15, 0, 0, 0, time.Local)
	ctx.Now = func() time.Time { return fixed }

	if got := ctx.Planner().Today().Day(); got != 10 {
		t.Errorf("expected day 10, got %d", got)
	}
	first := ctx.Planner()
	ctx.ResetPlanner()
	if ctx.Planner() == first {
		t.Error("expected a new planner after reset")
	}
}
