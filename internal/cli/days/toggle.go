package days

import (
	"fmt"

	"github.com/julianstephens/daydial/internal/cli"
	"github.com/julianstephens/daydial/internal/utils"
)

// ToggleCmd flips hour slots. Every hour in a range is toggled on its own.
type ToggleCmd struct {
	Hours string `arg:"" help:"Hours to toggle, e.g. 9 or 9,10 or 7-9."`
	Date  string `help:"Date (YYYY-MM-DD). Defaults to today."`
}

func (c *ToggleCmd) Run(ctx *cli.Context) error {
	p := ctx.Planner()
	date, err := p.ParseDate(c.Date)
	if err != nil {
		return err
	}
	hours, err := cli.ParseSlots(c.Hours)
	if err != nil {
		return err
	}
	if len(hours) == 0 {
		return fmt.Errorf("no hours given")
	}

	key := utils.DateKey(date)
	for _, h := range hours {
		on, err := p.ToggleSlot(key, h)
		if err != nil {
			return err
		}
		state := cli.MutedStyle.Render("cleared")
		if on {
			state = cli.DoneStyle.Render("completed")
		}
		fmt.Printf("%s %02d:00 %s\n", key, h, state)
	}
	return nil
}

// DoneCmd toggles all of an activity's slots at once
type DoneCmd struct {
	Activity string `arg:"" help:"Activity ID or name."`
	Date     string `help:"Date (YYYY-MM-DD). Defaults to today."`
}

func (c *DoneCmd) Run(ctx *cli.Context) error {
	p := ctx.Planner()
	date, err := p.ParseDate(c.Date)
	if err != nil {
		return err
	}
	activity, err := ctx.FindActivity(c.Activity)
	if err != nil {
		return err
	}

	key := utils.DateKey(date)
	if !utils.IsApplicable(activity, date) {
		fmt.Println(cli.PendingStyle.Render(fmt.Sprintf("Note: %s is not scheduled on %s", activity.Name, key)))
	}

	on, err := p.ToggleActivity(key, activity.ID)
	if err != nil {
		return err
	}
	if on {
		fmt.Printf("%s %s\n", cli.DoneStyle.Render("✓ Completed"), activity.Name)
	} else {
		fmt.Printf("%s %s\n", cli.MutedStyle.Render("Cleared"), activity.Name)
	}
	return nil
}
