package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/julianstephens/daydial/internal/errors"
	"github.com/julianstephens/daydial/internal/models"
)

const activityColumns = `id, name, icon, color, slots, is_recurring, days, specific_date,
	is_archived, reminder_minutes, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) AddActivity(activity models.Activity) error {
	if activity.ID == "" {
		return apperrors.InvalidInputf("activity has no ID")
	}
	if _, err := s.GetActivity(activity.ID); err == nil {
		return fmt.Errorf("activity %s: %w", activity.ID, apperrors.ErrAlreadyExists)
	}

	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now().UTC()
	}
	slots, days, err := encodeSchedule(activity)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Format(timeLayout)
	_, err = s.db.Exec(`
		INSERT INTO activities (id, name, icon, color, slots, is_recurring, days, specific_date,
			is_archived, reminder_minutes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		activity.ID, activity.Name, activity.Icon, activity.Color, slots, activity.IsRecurring,
		days, nullString(activity.SpecificDate), activity.IsArchived, activity.ReminderMinutes,
		activity.CreatedAt.UTC().Format(timeLayout), now)
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}
	return nil
}

func (s *Store) GetActivity(id string) (models.Activity, error) {
	row := s.db.QueryRow("SELECT "+activityColumns+" FROM activities WHERE id = ?", id)
	a, err := scanActivity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Activity{}, apperrors.NotFoundf("activity %s", id)
	}
	return a, err
}

func (s *Store) GetAllActivities(includeArchived bool) ([]models.Activity, error) {
	query := "SELECT " + activityColumns + " FROM activities"
	if !includeArchived {
		query += " WHERE is_archived = 0"
	}
	query += " ORDER BY created_at, rowid"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []models.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (s *Store) UpdateActivity(activity models.Activity) error {
	slots, days, err := encodeSchedule(activity)
	if err != nil {
		return err
	}

	res, err := s.db.Exec(`
		UPDATE activities SET name = ?, icon = ?, color = ?, slots = ?, is_recurring = ?,
			days = ?, specific_date = ?, is_archived = ?, reminder_minutes = ?, updated_at = ?
		WHERE id = ?`,
		activity.Name, activity.Icon, activity.Color, slots, activity.IsRecurring,
		days, nullString(activity.SpecificDate), activity.IsArchived, activity.ReminderMinutes,
		time.Now().UTC().Format(timeLayout), activity.ID)
	if err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}
	return requireAffected(res, "activity "+activity.ID)
}

func (s *Store) ArchiveActivity(id string) error {
	return s.setArchived(id, true)
}

func (s *Store) UnarchiveActivity(id string) error {
	return s.setArchived(id, false)
}

func (s *Store) setArchived(id string, archived bool) error {
	res, err := s.db.Exec("UPDATE activities SET is_archived = ?, updated_at = ? WHERE id = ?",
		archived, time.Now().UTC().Format(timeLayout), id)
	if err != nil {
		return err
	}
	return requireAffected(res, "activity "+id)
}

func (s *Store) DeleteActivity(id string) error {
	res, err := s.db.Exec("DELETE FROM activities WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(res, "activity "+id)
}

// scanActivity reads one row into its intake record and normalizes it, so
// rows written before days were tracked come back recurring every day.
func scanActivity(row scanner) (models.Activity, error) {
	var (
		r            models.ActivityRecord
		slots        string
		recurring    bool
		days         sql.NullString
		specificDate sql.NullString
		createdAt    string
	)
	err := row.Scan(&r.ID, &r.Name, &r.Icon, &r.Color, &slots, &recurring, &days, &specificDate,
		&r.IsArchived, &r.ReminderMinutes, &createdAt)
	if err != nil {
		return models.Activity{}, err
	}

	if err := json.Unmarshal([]byte(slots), &r.Slots); err != nil {
		return models.Activity{}, fmt.Errorf("failed to parse slots for activity %s: %w", r.ID, err)
	}
	if days.Valid {
		if err := json.Unmarshal([]byte(days.String), &r.Days); err != nil {
			return models.Activity{}, fmt.Errorf("failed to parse days for activity %s: %w", r.ID, err)
		}
	}
	r.IsRecurring = &recurring
	r.SpecificDate = specificDate.String
	r.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return models.Activity{}, fmt.Errorf("failed to parse created_at for activity %s: %w", r.ID, err)
	}

	return r.Normalize(), nil
}

// encodeSchedule serializes slots and days; nil days are stored as NULL.
func encodeSchedule(a models.Activity) (string, sql.NullString, error) {
	slots := a.Slots
	if slots == nil {
		slots = []int{}
	}
	slotsJSON, err := json.Marshal(slots)
	if err != nil {
		return "", sql.NullString{}, err
	}

	if a.Days == nil || !a.IsRecurring {
		return string(slotsJSON), sql.NullString{}, nil
	}
	daysJSON, err := json.Marshal(a.Days)
	if err != nil {
		return "", sql.NullString{}, err
	}
	return string(slotsJSON), sql.NullString{String: string(daysJSON), Valid: true}, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.NotFoundf("%s", what)
	}
	return nil
}
