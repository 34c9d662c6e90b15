package constants

const (
	// Setting keys
	SettingTimezone     = "timezone"
	SettingLookbackDays = "lookback_days"
	SettingWeekStart    = "week_start"
	SettingSeedDefaults = "seed_defaults"

	// Setting defaults
	DefaultTimezone     = "Local"
	DefaultWeekStart    = "monday"
	DefaultSeedDefaults = true
)
