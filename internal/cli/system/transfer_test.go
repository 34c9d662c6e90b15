package system

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/daydial/internal/cli"
	"github.com/julianstephens/daydial/internal/models"
	"github.com/julianstephens/daydial/internal/storage/memory"
)

func setupTestTransferStore(t *testing.T) *cli.Context {
	t.Helper()
	store := memory.New()
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return &cli.Context{Store: store}
}

func TestExportImportCmd(t *testing.T) {
	for _, name := range []string{"bundle.json", "bundle.yaml"} {
		t.Run(name, func(t *testing.T) {
			src := setupTestTransferStore(t)
			if err := src.Store.AddActivity(models.Activity{ID: "a", Name: "Work", IsRecurring: true, Slots: []int{9, 10}}); err != nil {
				t.Fatalf("failed to add activity: %v", err)
			}
			if err := src.Store.AddCompletedSlot(models.CompletedSlot{Date: "2024-01-09", Hour: 9}); err != nil {
				t.Fatalf("failed to add slot: %v", err)
			}
			snap := models.DailySnapshot{Date: "2024-01-09", Activities: []models.Activity{{ID: "a", Name: "Work", IsRecurring: true, Slots: []int{9, 10}}}}
			if _, err := src.Store.SaveSnapshot(snap); err != nil {
				t.Fatalf("failed to save snapshot: %v", err)
			}

			path := filepath.Join(t.TempDir(), name)
			if err := (&ExportCmd{File: path}).Run(src); err != nil {
				t.Fatalf("export failed: %v", err)
			}

			dst := setupTestTransferStore(t)
			if err := (&ImportCmd{File: path}).Run(dst); err != nil {
				t.Fatalf("import failed: %v", err)
			}

			a, err := dst.Store.GetActivity("a")
			if err != nil {
				t.Fatalf("imported activity missing: %v", err)
			}
			if a.Name != "Work" || len(a.Slots) != 2 {
				t.Errorf("expected Work with 2 slots, got %s with %v", a.Name, a.Slots)
			}
			slots, err := dst.Store.GetCompletedSlots()
			if err != nil {
				t.Fatalf("failed to list slots: %v", err)
			}
			if len(slots) != 1 || slots[0].Key() != "2024-01-09-9" {
				t.Errorf("expected slot 2024-01-09-9, got %v", slots)
			}
			if _, err := dst.Store.GetSnapshot("2024-01-09"); err != nil {
				t.Errorf("expected imported snapshot, got %v", err)
			}

			// A second import updates in place
			if err := (&ImportCmd{File: path}).Run(dst); err != nil {
				t.Fatalf("second import failed: %v", err)
			}
			all, _ := dst.Store.GetAllActivities(true)
			if len(all) != 1 {
				t.Errorf("expected 1 activity after re-import, got %d", len(all))
			}
		})
	}
}

func TestExportCmd_InvalidFormat(t *testing.T) {
	ctx := setupTestTransferStore(t)
	if err := (&ExportCmd{Format: "xml"}).Run(ctx); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestValidateCmd(t *testing.T) {
	ctx := setupTestTransferStore(t)
	if err := (&ValidateCmd{}).Run(ctx); err != nil {
		t.Errorf("expected empty catalog to validate, got %v", err)
	}

	bad := models.Activity{ID: "x", Name: "Broken", IsRecurring: true, Slots: []int{25}}
	if err := ctx.Store.AddActivity(bad); err != nil {
		t.Fatalf("failed to add activity: %v", err)
	}
	ctx.ResetPlanner()
	if err := (&ValidateCmd{}).Run(ctx); err == nil {
		t.Error("expected validation error for out-of-range slot")
	}
}
