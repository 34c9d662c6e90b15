package days

import (
	"fmt"

	"github.com/julianstephens/daydial/internal/cli"
)

type StreakCmd struct {
	Date string `help:"Reference date (YYYY-MM-DD). Defaults to today."`
}

func (c *StreakCmd) Run(ctx *cli.Context) error {
	p := ctx.Planner()
	ref, err := p.ParseDate(c.Date)
	if err != nil {
		return err
	}

	views, err := p.Streaks(ref)
	if err != nil {
		return err
	}
	if len(views) == 0 {
		fmt.Println("No activities found.")
		return nil
	}

	fmt.Println(cli.HeaderStyle.Render("Streaks"))
	for _, v := range views {
		fmt.Printf("  %s %-20s  current %-22s  longest %d\n",
			v.Activity.Icon, v.Activity.Name, cli.FormatStreak(v.Streak.Current), v.Streak.Longest)
	}
	return nil
}
