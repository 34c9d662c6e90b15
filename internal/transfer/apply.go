package transfer

import (
	"fmt"

	apperrors "github.com/julianstephens/daydial/internal/errors"
	"github.com/julianstephens/daydial/internal/storage"
)

// Result counts what an import changed.
type Result struct {
	ActivitiesAdded   int
	ActivitiesUpdated int
	SlotsImported     int
	SnapshotsAdded    int
	SnapshotsSkipped  int
}

// Apply writes a bundle into store. Activities with a known ID are updated,
// others are added. Existing snapshots are left untouched.
func Apply(store storage.Provider, b Bundle) (Result, error) {
	var res Result

	for _, a := range b.NormalizedActivities() {
		if a.ID == "" {
			return res, apperrors.InvalidInputf("activity %q has no ID", a.Name)
		}
		err := store.AddActivity(a)
		switch {
		case err == nil:
			res.ActivitiesAdded++
		case apperrors.Is(err, apperrors.ErrAlreadyExists):
			if err := store.UpdateActivity(a); err != nil {
				return res, fmt.Errorf("failed to update activity %s: %w", a.ID, err)
			}
			res.ActivitiesUpdated++
		default:
			return res, fmt.Errorf("failed to add activity %s: %w", a.ID, err)
		}
	}

	for _, s := range b.CompletedSlots {
		if err := store.AddCompletedSlot(s); err != nil {
			return res, fmt.Errorf("failed to import slot %s: %w", s.Key(), err)
		}
		res.SlotsImported++
	}

	for _, snap := range b.NormalizedSnapshots() {
		created, err := store.SaveSnapshot(snap)
		if err != nil {
			return res, fmt.Errorf("failed to import snapshot %s: %w", snap.Date, err)
		}
		if created {
			res.SnapshotsAdded++
		} else {
			res.SnapshotsSkipped++
		}
	}

	return res, nil
}
