package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/julianstephens/daydial/internal/errors"
	"github.com/julianstephens/daydial/internal/models"
	"github.com/julianstephens/daydial/internal/utils"
)

func (s *Store) GetSnapshot(date string) (models.DailySnapshot, error) {
	row := s.db.QueryRow("SELECT date, activities, created_at FROM snapshots WHERE date = $1", date)
	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DailySnapshot{}, apperrors.NotFoundf("snapshot %s", date)
	}
	return snap, err
}

func (s *Store) GetAllSnapshots() ([]models.DailySnapshot, error) {
	rows, err := s.db.Query("SELECT date, activities, created_at FROM snapshots ORDER BY date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots := []models.DailySnapshot{}
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, rows.Err()
}

// SaveSnapshot inserts the snapshot only if its date has none yet.
func (s *Store) SaveSnapshot(snap models.DailySnapshot) (bool, error) {
	if !utils.ValidDateKey(snap.Date) {
		return false, apperrors.InvalidInputf("snapshot date %q", snap.Date)
	}
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Now().UTC()
	}
	activities := snap.Activities
	if activities == nil {
		activities = []models.Activity{}
	}
	data, err := json.Marshal(activities)
	if err != nil {
		return false, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	res, err := s.db.Exec(`
		INSERT INTO snapshots (date, activities, created_at) VALUES ($1, $2, $3)
		ON CONFLICT (date) DO NOTHING`,
		snap.Date, string(data), snap.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to save snapshot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func scanSnapshot(row scanner) (models.DailySnapshot, error) {
	var (
		snap models.DailySnapshot
		data []byte
	)
	if err := row.Scan(&snap.Date, &data, &snap.CreatedAt); err != nil {
		return models.DailySnapshot{}, err
	}

	var records []models.ActivityRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return models.DailySnapshot{}, fmt.Errorf("failed to parse snapshot %s: %w", snap.Date, err)
	}
	snap.Activities = make([]models.Activity, len(records))
	for i, r := range records {
		snap.Activities[i] = r.Normalize()
	}
	return snap, nil
}
