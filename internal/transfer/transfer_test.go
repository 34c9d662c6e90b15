package transfer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/daydial/internal/models"
	"github.com/julianstephens/daydial/internal/storage/memory"
)

func sampleBundle() Bundle {
	activities := []models.Activity{
		{ID: "a", Name: "Read", Icon: "📚", Slots: []int{20, 21}, IsRecurring: true, Days: []time.Weekday{time.Monday, time.Thursday}},
		{ID: "b", Name: "Trip", Slots: []int{9}, SpecificDate: "2024-03-01"},
		{ID: "c", Name: "Never", Slots: []int{5}, IsRecurring: true, Days: []time.Weekday{}},
	}
	slots := []models.CompletedSlot{{Date: "2024-01-01", Hour: 20}, {Date: "2024-01-01", Hour: 21}}
	snapshots := []models.DailySnapshot{{Date: "2024-01-01", Activities: activities[:1]}}
	return NewBundle(activities, slots, snapshots, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
}

func TestExportImport_PreservesSchedules(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Export(&buf, format, sampleBundle()); err != nil {
				t.Fatalf("export failed: %v", err)
			}

			b, err := Import(&buf, format)
			if err != nil {
				t.Fatalf("import failed: %v", err)
			}
			activities := b.NormalizedActivities()
			if len(activities) != 3 {
				t.Fatalf("expected 3 activities, got %d", len(activities))
			}
			if days := activities[0].Days; len(days) != 2 || days[1] != time.Thursday {
				t.Errorf("expected [Monday Thursday], got %v", days)
			}
			if activities[1].IsRecurring || activities[1].SpecificDate != "2024-03-01" {
				t.Errorf("expected single-date activity, got %+v", activities[1])
			}
			if activities[2].Days == nil || len(activities[2].Days) != 0 {
				t.Errorf("expected an explicit empty day set, got %v", activities[2].Days)
			}
			if len(b.CompletedSlots) != 2 {
				t.Errorf("expected 2 slots, got %v", b.CompletedSlots)
			}
			snaps := b.NormalizedSnapshots()
			if len(snaps) != 1 || snaps[0].Activities[0].ID != "a" {
				t.Errorf("unexpected snapshots %+v", snaps)
			}
		})
	}
}

func TestImport_LegacyActivities(t *testing.T) {
	// Files from before weekday scheduling carry neither isRecurring nor days
	legacy := `{
  "activities": [{"id": "1", "name": "Sleep", "icon": "😴", "color": "#8b5cf6", "slots": [5, 0, 1, 1]}],
  "completedSlots": [
    {"date": "2024-01-01", "hour": 0},
    {"date": "2024-01-01", "hour": 0},
    {"date": "2024-01-01", "hour": 24},
    {"date": "yesterday", "hour": 3}
  ]
}`
	b, err := Import(strings.NewReader(legacy), FormatJSON)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	a := b.NormalizedActivities()[0]
	if !a.IsRecurring || len(a.Days) != 7 {
		t.Errorf("expected recurring every day, got %+v", a)
	}
	if len(a.Slots) != 3 || a.Slots[0] != 0 || a.Slots[2] != 5 {
		t.Errorf("expected slots [0 1 5], got %v", a.Slots)
	}
	if len(b.CompletedSlots) != 1 {
		t.Errorf("expected duplicates and invalid slots dropped, got %v", b.CompletedSlots)
	}
}

func TestImport_RejectsNewerVersion(t *testing.T) {
	if _, err := Import(strings.NewReader("version: 99\n"), FormatYAML); err == nil {
		t.Error("expected an error for a newer bundle version")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}

	if FormatFromPath("backup.YML") != FormatYAML || FormatFromPath("backup.json") != FormatJSON {
		t.Error("FormatFromPath picked the wrong format")
	}
}

func TestApply_NeverOverwritesSnapshots(t *testing.T) {
	store := memory.New()
	store.Init()
	store.AddActivity(models.Activity{ID: "a", Name: "Old name", Slots: []int{1}, IsRecurring: true})
	store.SaveSnapshot(models.DailySnapshot{Date: "2024-01-01", Activities: []models.Activity{{ID: "z", Name: "Frozen", IsRecurring: true}}})
	store.AddCompletedSlot(models.CompletedSlot{Date: "2024-01-01", Hour: 20})

	res, err := Apply(store, sampleBundle())
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if res.ActivitiesAdded != 2 || res.ActivitiesUpdated != 1 {
		t.Errorf("expected 2 added and 1 updated, got %+v", res)
	}
	if res.SnapshotsAdded != 0 || res.SnapshotsSkipped != 1 {
		t.Errorf("expected the snapshot to be skipped, got %+v", res)
	}

	a, _ := store.GetActivity("a")
	if a.Name != "Read" {
		t.Errorf("expected activity to be updated, got %q", a.Name)
	}
	snap, _ := store.GetSnapshot("2024-01-01")
	if snap.Activities[0].ID != "z" {
		t.Error("existing snapshot was overwritten")
	}
	slots, _ := store.GetCompletedSlots()
	if len(slots) != 2 {
		t.Errorf("expected slots to merge without duplicates, got %v", slots)
	}
}
