package models

import "fmt"

// CompletedSlot records that an hour was marked complete on a date.
type CompletedSlot struct {
	Date string `json:"date" yaml:"date"` // yyyy-MM-dd
	Hour int    `json:"hour" yaml:"hour"`
}

// Key returns the set key of the slot, "{date}-{hour}".
func (s CompletedSlot) Key() string {
	return SlotKey(s.Date, s.Hour)
}

// SlotKey builds the lookup key used by the completion index.
func SlotKey(dateKey string, hour int) string {
	return fmt.Sprintf("%s-%d", dateKey, hour)
}
