package activities

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/daydial/internal/cli"
	"github.com/julianstephens/daydial/internal/constants"
	"github.com/julianstephens/daydial/internal/models"
	"github.com/julianstephens/daydial/internal/utils"
	"github.com/julianstephens/daydial/internal/validation"
)

type AddCmd struct {
	Name     string `arg:"" help:"Activity name."`
	Slots    string `help:"Hours on the dial, e.g. 7,8,9 or 7-9 (22-1 wraps past midnight)." required:""`
	Days     string `help:"Weekdays (names or 0-6, 0 = Sunday). Defaults to every day."`
	Date     string `help:"Schedule once on this date (YYYY-MM-DD) instead of weekly."`
	Icon     string `help:"Display icon."`
	Color    string `help:"Display color, e.g. #3b82f6."`
	Reminder int    `help:"Reminder lead time in minutes (0 = none)."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	if c.Days != "" && c.Date != "" {
		return fmt.Errorf("--days and --date are mutually exclusive")
	}

	slots, err := cli.ParseSlots(c.Slots)
	if err != nil {
		return err
	}

	activity := models.Activity{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(c.Name),
		Icon:            c.Icon,
		Color:           c.Color,
		Slots:           slots,
		IsRecurring:     c.Date == "",
		SpecificDate:    c.Date,
		ReminderMinutes: c.Reminder,
	}
	if c.Days != "" {
		if activity.Days, err = cli.ParseWeekdays(c.Days); err != nil {
			return err
		}
	}
	activity = models.NormalizeActivity(activity)

	if err := checkActivity(ctx, activity); err != nil {
		return err
	}

	if err := ctx.Store.AddActivity(activity); err != nil {
		return fmt.Errorf("failed to add activity: %w", err)
	}

	fmt.Printf("Added activity: %s (%s, %s)\n", activity.Name, cli.FormatSlots(activity.Slots), cli.FormatDays(activity))
	fmt.Printf("ID: %s\n", activity.ID)
	return nil
}

// checkActivity rejects malformed activities and prints catalog conflicts
// the activity would introduce.
func checkActivity(ctx *cli.Context, activity models.Activity) error {
	if activity.Name == "" {
		return fmt.Errorf("activity name cannot be empty")
	}
	if !activity.IsRecurring && !utils.ValidDateKey(activity.SpecificDate) {
		return fmt.Errorf("invalid date %q, expected %s", activity.SpecificDate, constants.DateFormat)
	}

	v := validation.New()
	own := v.ValidateActivities([]models.Activity{activity})
	if own.HasErrors() {
		return fmt.Errorf("invalid activity:\n%s", own.FormatReport())
	}
	for _, c := range own.Conflicts {
		fmt.Println(cli.PendingStyle.Render("Warning: " + c.Description))
	}

	existing, err := ctx.Store.GetAllActivities(false)
	if err != nil {
		return fmt.Errorf("failed to load activities: %w", err)
	}
	catalog := make([]models.Activity, 0, len(existing)+1)
	for _, a := range existing {
		if a.ID != activity.ID {
			catalog = append(catalog, a)
		}
	}
	catalog = append(catalog, activity)

	for _, c := range v.ValidateActivities(catalog).Conflicts {
		if involves(c, activity.ID) && c.Type != constants.ConflictEmptySlots {
			fmt.Println(cli.PendingStyle.Render("Warning: " + c.Description))
		}
	}
	return nil
}

func involves(c validation.Conflict, id string) bool {
	for _, cid := range c.ActivityIDs {
		if cid == id {
			return true
		}
	}
	return false
}
