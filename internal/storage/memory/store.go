// Package memory is an in-process storage provider. Nothing is persisted;
// it backs tests and the ":memory:" config value.
package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/julianstephens/daydial/internal/constants"
	apperrors "github.com/julianstephens/daydial/internal/errors"
	"github.com/julianstephens/daydial/internal/models"
	"github.com/julianstephens/daydial/internal/utils"
)

type Store struct {
	mu          sync.RWMutex
	initialized bool
	settings    *models.Settings
	activities  map[string]models.Activity
	order       []string
	slots       map[string]models.CompletedSlot
	snapshots   map[string]models.DailySnapshot
}

func New() *Store {
	return &Store{
		activities: make(map[string]models.Activity),
		slots:      make(map[string]models.CompletedSlot),
		snapshots:  make(map[string]models.DailySnapshot),
	}
}

func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialized = true
	if s.settings == nil {
		defaults := models.DefaultSettings()
		s.settings = &defaults
	}
	return nil
}

// Load initializes the store on first use since there is no file to find.
func (s *Store) Load() error {
	s.mu.RLock()
	ok := s.initialized
	s.mu.RUnlock()
	if ok {
		return nil
	}
	return s.Init()
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) GetConfigPath() string {
	return constants.MemoryConfigPath
}

func (s *Store) GetSettings() (models.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return models.Settings{}, apperrors.NotFoundf("settings")
	}
	settings := *s.settings
	models.ApplyDefaultSettings(&settings)
	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = &settings
	return nil
}

func (s *Store) AddActivity(activity models.Activity) error {
	if activity.ID == "" {
		return apperrors.InvalidInputf("activity has no ID")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.activities[activity.ID]; ok {
		return fmt.Errorf("activity %s: %w", activity.ID, apperrors.ErrAlreadyExists)
	}
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now().UTC()
	}
	s.activities[activity.ID] = cloneActivity(activity)
	s.order = append(s.order, activity.ID)
	return nil
}

func (s *Store) GetActivity(id string) (models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.activities[id]
	if !ok {
		return models.Activity{}, apperrors.NotFoundf("activity %s", id)
	}
	return cloneActivity(a), nil
}

func (s *Store) GetAllActivities(includeArchived bool) ([]models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activities := make([]models.Activity, 0, len(s.order))
	for _, id := range s.order {
		a := s.activities[id]
		if a.IsArchived && !includeArchived {
			continue
		}
		activities = append(activities, cloneActivity(a))
	}
	// Insertion order breaks ties between equal creation times
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].CreatedAt.Before(activities[j].CreatedAt)
	})
	return activities, nil
}

func (s *Store) UpdateActivity(activity models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.activities[activity.ID]
	if !ok {
		return apperrors.NotFoundf("activity %s", activity.ID)
	}
	activity.CreatedAt = existing.CreatedAt
	s.activities[activity.ID] = cloneActivity(activity)
	return nil
}

func (s *Store) ArchiveActivity(id string) error {
	return s.setArchived(id, true)
}

func (s *Store) UnarchiveActivity(id string) error {
	return s.setArchived(id, false)
}

func (s *Store) setArchived(id string, archived bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.activities[id]
	if !ok {
		return apperrors.NotFoundf("activity %s", id)
	}
	a.IsArchived = archived
	s.activities[id] = a
	return nil
}

func (s *Store) DeleteActivity(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.activities[id]; !ok {
		return apperrors.NotFoundf("activity %s", id)
	}
	delete(s.activities, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) GetCompletedSlots() ([]models.CompletedSlot, error) {
	return s.slotsWhere(func(models.CompletedSlot) bool { return true }), nil
}

func (s *Store) GetCompletedSlotsInRange(start, end string) ([]models.CompletedSlot, error) {
	return s.slotsWhere(func(slot models.CompletedSlot) bool {
		return slot.Date >= start && slot.Date <= end
	}), nil
}

func (s *Store) slotsWhere(keep func(models.CompletedSlot) bool) []models.CompletedSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slots := []models.CompletedSlot{}
	for _, slot := range s.slots {
		if keep(slot) {
			slots = append(slots, slot)
		}
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Date != slots[j].Date {
			return slots[i].Date < slots[j].Date
		}
		return slots[i].Hour < slots[j].Hour
	})
	return slots
}

func (s *Store) AddCompletedSlot(slot models.CompletedSlot) error {
	if err := utils.ValidateSlot(slot); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[slot.Key()] = slot
	return nil
}

func (s *Store) RemoveCompletedSlot(slot models.CompletedSlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, slot.Key())
	return nil
}

func (s *Store) GetSnapshot(date string) (models.DailySnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snapshots[date]
	if !ok {
		return models.DailySnapshot{}, apperrors.NotFoundf("snapshot %s", date)
	}
	return cloneSnapshot(snap), nil
}

func (s *Store) GetAllSnapshots() ([]models.DailySnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshots := make([]models.DailySnapshot, 0, len(s.snapshots))
	for _, snap := range s.snapshots {
		snapshots = append(snapshots, cloneSnapshot(snap))
	}
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Date < snapshots[j].Date
	})
	return snapshots, nil
}

func (s *Store) SaveSnapshot(snap models.DailySnapshot) (bool, error) {
	if !utils.ValidDateKey(snap.Date) {
		return false, apperrors.InvalidInputf("snapshot date %q", snap.Date)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.snapshots[snap.Date]; ok {
		return false, nil
	}
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Now().UTC()
	}
	s.snapshots[snap.Date] = cloneSnapshot(snap)
	return true, nil
}

// Copies keep callers from mutating stored state through shared slices.

func cloneActivity(a models.Activity) models.Activity {
	if a.Slots != nil {
		a.Slots = append(make([]int, 0, len(a.Slots)), a.Slots...)
	}
	if a.Days != nil {
		a.Days = append(make([]time.Weekday, 0, len(a.Days)), a.Days...)
	}
	return a
}

func cloneSnapshot(snap models.DailySnapshot) models.DailySnapshot {
	activities := make([]models.Activity, len(snap.Activities))
	for i, a := range snap.Activities {
		activities[i] = cloneActivity(a)
	}
	snap.Activities = activities
	return snap
}
