package constants

import "time"

// PeriodType identifies a statistics aggregation window
type PeriodType string

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	AppName            = "daydial"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/daydial/daydial.db"
	MemoryConfigPath   = ":memory:"
	Version            = "v0.3.0"

	// DateFormat is the canonical date key format used throughout the application (yyyy-MM-dd)
	DateFormat = "2006-01-02"

	// Dial bounds
	MinHour     = 0
	MaxHour     = 23
	HoursPerDay = 24

	// DefaultLookbackDays bounds the backward streak walk
	DefaultLookbackDays = 365

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "daydial-"
	BackupFileSuffix = ".db"

	// Environment variables
	EnvConfig       = "DAYDIAL_CONFIG"
	EnvDebug        = "DAYDIAL_DEBUG"
	EnvDBConnection = "DAYDIAL_DB_CONNECTION"

	// Statistics periods
	PeriodDay   PeriodType = "day"
	PeriodWeek  PeriodType = "week"
	PeriodMonth PeriodType = "month"
	PeriodYear  PeriodType = "year"

	// Conflict types
	ConflictInvalidSlot         ConflictType = "invalid_slot"
	ConflictInvalidWeekday      ConflictType = "invalid_weekday"
	ConflictMissingSpecificDate ConflictType = "missing_specific_date"
	ConflictInvalidSpecificDate ConflictType = "invalid_specific_date"
	ConflictDuplicateName       ConflictType = "duplicate_activity_name"
	ConflictOverlappingSlots    ConflictType = "overlapping_slots"
	ConflictEmptySlots          ConflictType = "empty_slots"
	ConflictInvalidReminder     ConflictType = "invalid_reminder"
	ConflictMissingActivityID   ConflictType = "missing_activity_id"
)

// AllWeekdays is the default day set for recurring activities.
var AllWeekdays = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}
