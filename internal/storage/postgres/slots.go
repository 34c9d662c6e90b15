package postgres

import (
	"database/sql"
	"time"

	"github.com/julianstephens/daydial/internal/models"
	"github.com/julianstephens/daydial/internal/utils"
)

func (s *Store) GetCompletedSlots() ([]models.CompletedSlot, error) {
	rows, err := s.db.Query("SELECT date, hour FROM completed_slots ORDER BY date, hour")
	if err != nil {
		return nil, err
	}
	return scanSlots(rows)
}

func (s *Store) GetCompletedSlotsInRange(start, end string) ([]models.CompletedSlot, error) {
	rows, err := s.db.Query(`
		SELECT date, hour FROM completed_slots
		WHERE date >= $1 AND date <= $2
		ORDER BY date, hour`, start, end)
	if err != nil {
		return nil, err
	}
	return scanSlots(rows)
}

func (s *Store) AddCompletedSlot(slot models.CompletedSlot) error {
	if err := utils.ValidateSlot(slot); err != nil {
		return err
	}
	_, err := s.db.Exec(`
		INSERT INTO completed_slots (date, hour, completed_at) VALUES ($1, $2, $3)
		ON CONFLICT (date, hour) DO NOTHING`,
		slot.Date, slot.Hour, time.Now().UTC())
	return err
}

func (s *Store) RemoveCompletedSlot(slot models.CompletedSlot) error {
	_, err := s.db.Exec("DELETE FROM completed_slots WHERE date = $1 AND hour = $2", slot.Date, slot.Hour)
	return err
}

func scanSlots(rows *sql.Rows) ([]models.CompletedSlot, error) {
	defer rows.Close()

	slots := []models.CompletedSlot{}
	for rows.Next() {
		var slot models.CompletedSlot
		if err := rows.Scan(&slot.Date, &slot.Hour); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}
