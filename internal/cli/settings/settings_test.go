package settings

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/daydial/internal/cli"
	"github.com/julianstephens/daydial/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	ctx := &cli.Context{Store: store}

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return ctx, cleanup
}

func TestShowCmd(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&ShowCmd{}).Run(ctx); err != nil {
		t.Errorf("settings show failed: %v", err)
	}
}

func TestSetCmd(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	tests := []struct {
		key     string
		value   string
		wantErr bool
	}{
		{"timezone", "UTC", false},
		{"timezone", "Mars/Olympus", true},
		{"lookback_days", "30", false},
		{"lookback_days", "0", true},
		{"lookback_days", "a year", true},
		{"week_start", "Sunday", false},
		{"week_start", "friday", true},
		{"seed_defaults", "false", false},
		{"seed_defaults", "maybe", true},
		{"day_start", "08:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			err := (&SetCmd{Key: tt.key, Value: tt.value}).Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if settings.Timezone != "UTC" {
		t.Errorf("expected timezone UTC, got %s", settings.Timezone)
	}
	if settings.LookbackDays != 30 {
		t.Errorf("expected lookback 30, got %d", settings.LookbackDays)
	}
	if settings.WeekStart != "sunday" {
		t.Errorf("expected week start sunday, got %s", settings.WeekStart)
	}
	if settings.SeedDefaults {
		t.Error("expected seed_defaults to be false")
	}
}

func TestSetCmd_ResetsPlanner(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	before := ctx.Planner()
	if err := (&SetCmd{Key: "timezone", Value: "UTC"}).Run(ctx); err != nil {
		t.Fatalf("settings set failed: %v", err)
	}
	after := ctx.Planner()
	if before == after {
		t.Error("expected planner to be rebuilt after a settings change")
	}
	if after.Location().String() != "UTC" {
		t.Errorf("expected UTC location, got %s", after.Location())
	}
}
