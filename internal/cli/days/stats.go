package days

import (
	"fmt"
	"strings"

	"github.com/julianstephens/daydial/internal/cli"
	"github.com/julianstephens/daydial/internal/stats"
	"github.com/julianstephens/daydial/internal/utils"
)

type StatsCmd struct {
	Period string `help:"Period to summarize (day, week, month, year)." default:"week" enum:"day,week,month,year"`
	Date   string `help:"Any date inside the period (YYYY-MM-DD). Defaults to today."`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	period, err := stats.ParsePeriod(c.Period)
	if err != nil {
		return err
	}
	p := ctx.Planner()
	anchor, err := p.ParseDate(c.Date)
	if err != nil {
		return err
	}

	summary, err := p.Stats(period, anchor)
	if err != nil {
		return err
	}
	fmt.Print(RenderStats(summary))
	return nil
}

// RenderStats formats a period summary with a bar per trend bucket
func RenderStats(s stats.Summary) string {
	var b strings.Builder

	title := fmt.Sprintf("Stats for %s %s", s.Period, utils.DateKey(s.Start))
	if !utils.SameDay(s.Start, s.End) {
		title += " to " + utils.DateKey(s.End)
	}
	b.WriteString(cli.HeaderStyle.Render(title) + "\n\n")
	fmt.Fprintf(&b, "  Completed:     %d / %d hours (%d%%)\n", s.Completed, s.Planned, s.CompletionPercent)
	if s.MostFrequent != "" {
		fmt.Fprintf(&b, "  Most frequent: %s\n", s.MostFrequent)
	}

	if len(s.Activities) > 0 {
		b.WriteString("\n" + cli.HeaderStyle.Render("By activity") + "\n")
		for _, a := range s.Activities {
			fmt.Fprintf(&b, "  %s %s %-20s %d / %d\n", cli.Swatch(a.Color), a.Icon, a.Name, a.Completed, a.Planned)
		}
	}

	if len(s.Trend) > 0 {
		peak := 0
		for _, bucket := range s.Trend {
			peak = max(peak, bucket.Completed)
		}
		b.WriteString("\n" + cli.HeaderStyle.Render("Trend") + "\n")
		for _, bucket := range s.Trend {
			width := 0
			if peak > 0 {
				width = bucket.Completed * 30 / peak
			}
			fmt.Fprintf(&b, "  %-6s %s %d\n", bucket.Label, cli.DoneStyle.Render(strings.Repeat("█", width)), bucket.Completed)
		}
	}
	return b.String()
}
