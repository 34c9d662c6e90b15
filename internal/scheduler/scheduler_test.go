package scheduler

import (
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

func ids(activities []models.Activity) []string {
	out := make([]string, len(activities))
	for i, a := range activities {
		out[i] = a.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuildDailyPlan_FiltersByApplicability(t *testing.T) {
	s := New()
	// 2024-01-03 is a Wednesday
	date := mustDate(t, "2024-01-03")
	catalog := []models.Activity{
		{ID: "wed", Slots: []int{9}, IsRecurring: true, Days: []time.Weekday{time.Wednesday}},
		{ID: "sat", Slots: []int{10}, IsRecurring: true, Days: []time.Weekday{time.Saturday}},
		{ID: "once", Slots: []int{11}, IsRecurring: false, SpecificDate: "2024-01-03"},
		{ID: "other-day", Slots: []int{12}, IsRecurring: false, SpecificDate: "2024-01-04"},
		{ID: "archived", Slots: []int{13}, IsRecurring: true, IsArchived: true},
	}

	plan := s.BuildDailyPlan(catalog, date, date, nil, completion.New(nil))

	want := []string{"wed", "once"}
	if got := ids(plan); !equalIDs(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBuildDailyPlan_IncompleteFirstStable(t *testing.T) {
	s := New()
	date := mustDate(t, "2024-01-03")
	catalog := []models.Activity{
		{ID: "a", Slots: []int{1}, IsRecurring: true},
		{ID: "b", Slots: []int{2}, IsRecurring: true},
		{ID: "c", Slots: []int{3}, IsRecurring: true},
		{ID: "d", Slots: []int{4}, IsRecurring: true},
		{ID: "e", Slots: []int{}, IsRecurring: true},
	}
	idx := completion.New([]models.CompletedSlot{
		{Date: "2024-01-03", Hour: 1},
		{Date: "2024-01-03", Hour: 3},
	})

	plan := s.BuildDailyPlan(catalog, date, date, nil, idx)

	want := []string{"b", "d", "e", "a", "c"}
	if got := ids(plan); !equalIDs(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBuildDailyPlan_UsesSnapshotForPastDate(t *testing.T) {
	s := New()
	past := mustDate(t, "2024-01-01")
	today := mustDate(t, "2024-01-05")
	catalog := []models.Activity{
		{ID: "new", Slots: []int{8}, IsRecurring: true},
	}
	snapshots := map[string]models.DailySnapshot{
		"2024-01-01": {
			Date:       "2024-01-01",
			Activities: []models.Activity{{ID: "frozen", Slots: []int{7}, IsRecurring: true}},
		},
	}

	plan := s.BuildDailyPlan(catalog, past, today, snapshots, completion.New(nil))
	if got := ids(plan); !equalIDs(got, []string{"frozen"}) {
		t.Errorf("expected snapshot activities, got %v", got)
	}

	// On the snapshot's own day the live catalog wins
	plan = s.BuildDailyPlan(catalog, past, past, snapshots, completion.New(nil))
	if got := ids(plan); !equalIDs(got, []string{"new"}) {
		t.Errorf("expected live catalog for today, got %v", got)
	}
}

func TestBuildDailyPlan_DoesNotMutateInputs(t *testing.T) {
	s := New()
	date := mustDate(t, "2024-01-03")
	catalog := []models.Activity{
		{ID: "a", Slots: []int{1}, IsRecurring: true},
		{ID: "b", Slots: []int{2}, IsRecurring: true},
	}
	idx := completion.New([]models.CompletedSlot{{Date: "2024-01-03", Hour: 1}})

	plan := s.BuildDailyPlan(catalog, date, date, nil, idx)
	plan[0].Slots[0] = 99

	if catalog[0].ID != "a" || catalog[1].ID != "b" {
		t.Errorf("catalog order changed: %v", ids(catalog))
	}
	if catalog[1].Slots[0] != 2 {
		t.Errorf("catalog slots mutated through plan, got %d", catalog[1].Slots[0])
	}
}

func TestMaterializeSnapshot(t *testing.T) {
	s := New()
	today := mustDate(t, "2024-01-05")
	catalog := []models.Activity{
		{ID: "daily", Slots: []int{8}, IsRecurring: true},
	}

	t.Run("today is not frozen", func(t *testing.T) {
		if _, created := s.MaterializeSnapshot(catalog, today, today, nil); created {
			t.Error("expected no snapshot for today")
		}
	})

	t.Run("future is not frozen", func(t *testing.T) {
		if _, created := s.MaterializeSnapshot(catalog, mustDate(t, "2024-01-06"), today, nil); created {
			t.Error("expected no snapshot for a future date")
		}
	})

	t.Run("past date creates once", func(t *testing.T) {
		past := mustDate(t, "2024-01-02")
		snap, created := s.MaterializeSnapshot(catalog, past, today, nil)
		if !created {
			t.Fatal("expected snapshot for a past date")
		}
		if snap.Date != "2024-01-02" {
			t.Errorf("expected date 2024-01-02, got %s", snap.Date)
		}
		if got := ids(snap.Activities); !equalIDs(got, []string{"daily"}) {
			t.Errorf("expected [daily], got %v", got)
		}

		existing := map[string]models.DailySnapshot{snap.Date: snap}
		if _, again := s.MaterializeSnapshot(catalog, past, today, existing); again {
			t.Error("expected existing snapshot to be left alone")
		}
	})
}

func TestSnapshotImmutability(t *testing.T) {
	s := New()
	past := mustDate(t, "2024-01-02")
	today := mustDate(t, "2024-01-05")
	catalog := []models.Activity{
		{ID: "daily", Name: "Daily", Slots: []int{8}, IsRecurring: true},
	}

	snap, created := s.MaterializeSnapshot(catalog, past, today, nil)
	if !created {
		t.Fatal("expected snapshot")
	}
	snapshots := map[string]models.DailySnapshot{snap.Date: snap}
	before := s.BuildDailyPlan(catalog, past, today, snapshots, completion.New(nil))

	// Edit, archive and add to the catalog after the snapshot was taken
	catalog[0].Slots[0] = 20
	catalog[0].IsArchived = true
	catalog = append(catalog, models.Activity{ID: "later", Slots: []int{9}, IsRecurring: true})

	after := s.BuildDailyPlan(catalog, past, today, snapshots, completion.New(nil))

	if !equalIDs(ids(before), ids(after)) {
		t.Fatalf("expected %v, got %v", ids(before), ids(after))
	}
	if after[0].Slots[0] != 8 || after[0].IsArchived {
		t.Errorf("snapshot changed with catalog: %+v", after[0])
	}
}

func TestBuildDailyPlan_ZeroDate(t *testing.T) {
	s := New()
	catalog := []models.Activity{{ID: "a", Slots: []int{1}, IsRecurring: true}}
	if plan := s.BuildDailyPlan(catalog, time.Time{}, time.Now(), nil, nil); len(plan) != 0 {
		t.Errorf("expected empty plan for zero date, got %v", ids(plan))
	}
}
