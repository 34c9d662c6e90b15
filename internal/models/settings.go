package models

// Settings represents application-wide settings
type Settings struct {
	Timezone     string `json:"timezone"`      // IANA timezone name, or "Local" for the system timezone
	LookbackDays int    `json:"lookback_days"` // how far back the current-streak walk may go
	WeekStart    string `json:"week_start"`    // "monday" or "sunday", used by weekly statistics
	SeedDefaults bool   `json:"seed_defaults"` // seed the starter catalog on init
}
