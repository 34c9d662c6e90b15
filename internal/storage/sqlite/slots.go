package sqlite

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
		WHERE date >= ? AND date <= ?
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
	_, err := s.db.Exec("INSERT OR IGNORE INTO completed_slots (date, hour, completed_at) VALUES (?, ?, ?)",
		slot.Date, slot.Hour, time.Now().UTC().Format(timeLayout))
	return err
}

func (s *Store) RemoveCompletedSlot(slot models.CompletedSlot) error {
	_, err := s.db.Exec("DELETE FROM completed_slots WHERE date = ? AND hour = ?", slot.Date, slot.Hour)
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
