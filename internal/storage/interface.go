package storage

import "github.com/julianstephens/daydial/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Activities
	AddActivity(models.Activity) error
	GetActivity(id string) (models.Activity, error)
	// GetAllActivities returns the catalog ordered by creation time.
	GetAllActivities(includeArchived bool) ([]models.Activity, error)
	UpdateActivity(models.Activity) error
	ArchiveActivity(id string) error
	UnarchiveActivity(id string) error
	DeleteActivity(id string) error

	// Completed slots
	GetCompletedSlots() ([]models.CompletedSlot, error)
	// GetCompletedSlotsInRange returns slots with start <= date <= end (date keys).
	GetCompletedSlotsInRange(start, end string) ([]models.CompletedSlot, error)
	// AddCompletedSlot is idempotent; adding an existing slot is not an error.
	AddCompletedSlot(models.CompletedSlot) error
	RemoveCompletedSlot(models.CompletedSlot) error

	// Snapshots
	GetSnapshot(date string) (models.DailySnapshot, error)
	GetAllSnapshots() ([]models.DailySnapshot, error)
	// SaveSnapshot stores the snapshot unless one already exists for its date,
	// and reports whether it was written. Existing snapshots are never replaced.
	SaveSnapshot(models.DailySnapshot) (bool, error)

	// Utils
	GetConfigPath() string
}
