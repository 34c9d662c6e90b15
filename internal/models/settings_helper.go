package models

import (
	"fmt"

	"github.com/julianstephens/daydial/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingLookbackDays:
			if _, err := fmt.Sscanf(value, "%d", &settings.LookbackDays); err != nil {
				return Settings{}, fmt.Errorf("parsing lookback_days: %w", err)
			}
		case constants.SettingWeekStart:
			settings.WeekStart = value
		case constants.SettingSeedDefaults:
			settings.SeedDefaults = value == "true"
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingTimezone:     settings.Timezone,
		constants.SettingLookbackDays: fmt.Sprintf("%d", settings.LookbackDays),
		constants.SettingWeekStart:    settings.WeekStart,
		constants.SettingSeedDefaults: fmt.Sprintf("%v", settings.SeedDefaults),
	}
}

// DefaultSettings returns the settings written by a fresh init.
func DefaultSettings() Settings {
	return Settings{
		Timezone:     constants.DefaultTimezone,
		LookbackDays: constants.DefaultLookbackDays,
		WeekStart:    constants.DefaultWeekStart,
		SeedDefaults: constants.DefaultSeedDefaults,
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
	if settings.LookbackDays <= 0 {
		settings.LookbackDays = constants.DefaultLookbackDays
	}
	if settings.WeekStart != "monday" && settings.WeekStart != "sunday" {
		settings.WeekStart = constants.DefaultWeekStart
	}
}
