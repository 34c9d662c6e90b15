package activities

import (
	"testing"
	"time"

	"github.com/julianstephens/daydial/internal/cli"
	apperrors "github.com/julianstephens/daydial/internal/errors"
	"github.com/julianstephens/daydial/internal/storage/memory"
)

func setupTestActivities(t *testing.T) *cli.Context {
	t.Helper()
	store := memory.New()
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return &cli.Context{Store: store}
}

func strPtr(s string) *string { return &s }

func TestAddCmd(t *testing.T) {
	ctx := setupTestActivities(t)

	cmd := &AddCmd{Name: "  Work ", Slots: "11,9-10", Days: "weekdays"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	all, err := ctx.Store.GetAllActivities(false)
	if err != nil {
		t.Fatalf("failed to list activities: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(all))
	}
	a := all[0]
	if a.ID == "" {
		t.Error("expected generated ID")
	}
	if a.Name != "Work" {
		t.Errorf("expected trimmed name Work, got %q", a.Name)
	}
	if len(a.Slots) != 3 || a.Slots[0] != 9 || a.Slots[2] != 11 {
		t.Errorf("expected slots [9 10 11], got %v", a.Slots)
	}
	if !a.IsRecurring || len(a.Days) != 5 {
		t.Errorf("expected recurring on 5 weekdays, got recurring=%v days=%v", a.IsRecurring, a.Days)
	}
}

func TestAddCmd_DefaultsToEveryDay(t *testing.T) {
	ctx := setupTestActivities(t)

	if err := (&AddCmd{Name: "Sleep", Slots: "0-5"}).Run(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	all, _ := ctx.Store.GetAllActivities(false)
	if got := len(all[0].ScheduledDays()); got != 7 {
		t.Errorf("expected 7 scheduled days, got %d", got)
	}
}

func TestAddCmd_Rejects(t *testing.T) {
	tests := []struct {
		name string
		cmd  AddCmd
	}{
		{"empty name", AddCmd{Name: " ", Slots: "9"}},
		{"bad hour", AddCmd{Name: "Late", Slots: "24"}},
		{"days and date", AddCmd{Name: "Both", Slots: "9", Days: "mon", Date: "2024-01-10"}},
		{"bad date", AddCmd{Name: "Trip", Slots: "9", Date: "10/01/2024"}},
		{"bad weekday", AddCmd{Name: "Odd", Slots: "9", Days: "funday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := setupTestActivities(t)
			if err := tt.cmd.Run(ctx); err == nil {
				t.Error("expected error")
			}
			all, _ := ctx.Store.GetAllActivities(true)
			if len(all) != 0 {
				t.Errorf("expected nothing stored, got %d activities", len(all))
			}
		})
	}
}

func TestEditCmd(t *testing.T) {
	ctx := setupTestActivities(t)
	if err := (&AddCmd{Name: "Read", Slots: "20"}).Run(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	t.Run("switch to single date", func(t *testing.T) {
		cmd := &EditCmd{Activity: "read", Date: strPtr("2024-02-01"), Slots: strPtr("20-21")}
		if err := cmd.Run(ctx); err != nil {
			t.Fatalf("edit failed: %v", err)
		}
		a, err := ctx.FindActivity("Read")
		if err != nil {
			t.Fatalf("failed to find activity: %v", err)
		}
		if a.IsRecurring || a.SpecificDate != "2024-02-01" {
			t.Errorf("expected single date 2024-02-01, got recurring=%v date=%q", a.IsRecurring, a.SpecificDate)
		}
		if len(a.Slots) != 2 {
			t.Errorf("expected 2 slots, got %v", a.Slots)
		}
	})

	t.Run("back to weekly", func(t *testing.T) {
		cmd := &EditCmd{Activity: "Read", Days: strPtr("sat,sun")}
		if err := cmd.Run(ctx); err != nil {
			t.Fatalf("edit failed: %v", err)
		}
		a, _ := ctx.FindActivity("Read")
		if !a.IsRecurring || a.SpecificDate != "" {
			t.Errorf("expected weekly activity, got recurring=%v date=%q", a.IsRecurring, a.SpecificDate)
		}
		if len(a.Days) != 2 || a.Days[0] != time.Sunday {
			t.Errorf("expected [Sunday Saturday], got %v", a.Days)
		}
	})

	t.Run("unknown activity", func(t *testing.T) {
		cmd := &EditCmd{Activity: "nap", Name: strPtr("Nap")}
		if err := cmd.Run(ctx); !apperrors.Is(err, apperrors.ErrNotFound) {
			t.Errorf("expected not found, got %v", err)
		}
	})
}

func TestArchiveUnarchiveDelete(t *testing.T) {
	ctx := setupTestActivities(t)
	if err := (&AddCmd{Name: "Sport", Slots: "17"}).Run(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := (&ArchiveCmd{Activity: "Sport"}).Run(ctx); err != nil {
		t.Fatalf("archive failed: %v", err)
	}
	active, _ := ctx.Store.GetAllActivities(false)
	if len(active) != 0 {
		t.Errorf("expected no active activities, got %d", len(active))
	}

	if err := (&UnarchiveCmd{Activity: "Sport"}).Run(ctx); err != nil {
		t.Fatalf("unarchive failed: %v", err)
	}
	active, _ = ctx.Store.GetAllActivities(false)
	if len(active) != 1 {
		t.Errorf("expected 1 active activity, got %d", len(active))
	}

	if err := (&ListCmd{All: true}).Run(ctx); err != nil {
		t.Errorf("list failed: %v", err)
	}

	if err := (&DeleteCmd{Activity: "Sport"}).Run(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	all, _ := ctx.Store.GetAllActivities(true)
	if len(all) != 0 {
		t.Errorf("expected empty catalog, got %d", len(all))
	}
}
