package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/daydial/internal/cli"
	"github.com/julianstephens/daydial/internal/constants"
	"github.com/julianstephens/daydial/internal/utils"
)

type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	fmt.Println("Current Settings:")
	fmt.Printf("  %-14s %s\n", constants.SettingTimezone+":", settings.Timezone)
	fmt.Printf("  %-14s %d\n", constants.SettingLookbackDays+":", settings.LookbackDays)
	fmt.Printf("  %-14s %s\n", constants.SettingWeekStart+":", settings.WeekStart)
	fmt.Printf("  %-14s %v\n", constants.SettingSeedDefaults+":", settings.SeedDefaults)
	fmt.Printf("\nStorage: %s\n", ctx.Store.GetConfigPath())
	return nil
}

type SetCmd struct {
	Key   string `arg:"" help:"Setting name (timezone, lookback_days, week_start, seed_defaults)."`
	Value string `arg:"" help:"New value."`
}

func (c *SetCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	value := strings.TrimSpace(c.Value)
	switch strings.ToLower(c.Key) {
	case constants.SettingTimezone:
		if !utils.ValidateTimezone(value) {
			return fmt.Errorf("invalid timezone %q (use an IANA name such as Europe/Paris, or Local)", value)
		}
		settings.Timezone = value
	case constants.SettingLookbackDays:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("lookback_days must be a positive number of days")
		}
		settings.LookbackDays = n
	case constants.SettingWeekStart:
		value = strings.ToLower(value)
		if value != "monday" && value != "sunday" {
			return fmt.Errorf("week_start must be monday or sunday")
		}
		settings.WeekStart = value
	case constants.SettingSeedDefaults:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("seed_defaults must be true or false")
		}
		settings.SeedDefaults = b
	default:
		return fmt.Errorf("unknown setting %q", c.Key)
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.ResetPlanner()
	fmt.Println("Settings updated successfully.")
	return nil
}
