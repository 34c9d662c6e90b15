package days

import (
	"fmt"
	"strings"

	"github.com/julianstephens/daydial/internal/cli"
	"github.com/julianstephens/daydial/internal/planner"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD). Defaults to today."`
}

func (c *DayCmd) Run(ctx *cli.Context) error {
	p := ctx.Planner()
	date, err := p.ParseDate(c.Date)
	if err != nil {
		return err
	}

	view, err := p.Day(date)
	if err != nil {
		return err
	}
	fmt.Print(RenderDay(view))
	return nil
}

// RenderDay formats a day plan for the terminal
func RenderDay(view planner.DayView) string {
	var b strings.Builder

	title := fmt.Sprintf("Plan for %s (%s)", view.Key, view.Date.Weekday())
	if view.IsToday {
		title += " - today"
	}
	b.WriteString(cli.HeaderStyle.Render(title) + "\n")
	if view.FromSnapshot {
		b.WriteString(cli.MutedStyle.Render("Frozen plan recorded for this date") + "\n")
	}
	b.WriteString("\n")

	if len(view.Activities) == 0 {
		b.WriteString("  No activities scheduled\n")
		return b.String()
	}

	for _, row := range view.Activities {
		a := row.Activity
		status := cli.PendingStyle.Render(fmt.Sprintf("[%d/%d]", row.CompletedHours, len(a.Slots)))
		if row.Completed {
			status = cli.DoneStyle.Render("[done]")
		}
		fmt.Fprintf(&b, "  %s %s %-20s  %-14s  %s  %s\n",
			cli.Swatch(a.Color), a.Icon, a.Name, cli.FormatSlots(a.Slots), status, cli.FormatStreak(row.Streak.Current))
	}

	percent := 0
	if view.Planned > 0 {
		percent = view.Completed * 100 / view.Planned
	}
	fmt.Fprintf(&b, "\n%d of %d hours completed (%d%%)\n", view.Completed, view.Planned, percent)
	return b.String()
}
