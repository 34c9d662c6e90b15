package activities

import (
	"fmt"
	"strings"

	"github.com/julianstephens/daydial/internal/cli"
	"github.com/julianstephens/daydial/internal/models"
)

type EditCmd struct {
	Activity string  `arg:"" help:"Activity ID or name."`
	Name     *string `help:"New name."`
	Slots    *string `help:"New hours, e.g. 7,8,9 or 7-9."`
	Days     *string `help:"Make weekly on these weekdays (names or 0-6)."`
	Date     *string `help:"Make single-date on this date (YYYY-MM-DD)."`
	Icon     *string `help:"New icon."`
	Color    *string `help:"New color."`
	Reminder *int    `help:"Reminder lead time in minutes (0 = none)."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	if c.Days != nil && c.Date != nil {
		return fmt.Errorf("--days and --date are mutually exclusive")
	}

	activity, err := ctx.FindActivity(c.Activity)
	if err != nil {
		return err
	}

	updated := false
	if c.Name != nil {
		activity.Name = strings.TrimSpace(*c.Name)
		updated = true
	}
	if c.Slots != nil {
		if activity.Slots, err = cli.ParseSlots(*c.Slots); err != nil {
			return err
		}
		updated = true
	}
	if c.Days != nil {
		if activity.Days, err = cli.ParseWeekdays(*c.Days); err != nil {
			return err
		}
		activity.IsRecurring = true
		activity.SpecificDate = ""
		updated = true
	}
	if c.Date != nil {
		activity.IsRecurring = false
		activity.SpecificDate = *c.Date
		activity.Days = nil
		updated = true
	}
	if c.Icon != nil {
		activity.Icon = *c.Icon
		updated = true
	}
	if c.Color != nil {
		activity.Color = *c.Color
		updated = true
	}
	if c.Reminder != nil {
		activity.ReminderMinutes = *c.Reminder
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified.")
		return nil
	}

	activity = models.NormalizeActivity(activity)
	if err := checkActivity(ctx, activity); err != nil {
		return err
	}
	if err := ctx.Store.UpdateActivity(activity); err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}

	fmt.Printf("Updated activity: %s (%s, %s)\n", activity.Name, cli.FormatSlots(activity.Slots), cli.FormatDays(activity))
	return nil
}
