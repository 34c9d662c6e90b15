package activities

import (
	"fmt"

	"github.com/julianstephens/daydial/internal/cli"
)

type ListCmd struct {
	All bool `help:"Include archived activities."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	activities, err := ctx.Store.GetAllActivities(c.All)
	if err != nil {
		return fmt.Errorf("failed to list activities: %w", err)
	}

	if len(activities) == 0 {
		fmt.Println("No activities found. Add one with 'daydial activity add'.")
		return nil
	}

	fmt.Println(cli.HeaderStyle.Render(fmt.Sprintf("Activities (%d):", len(activities))))
	for _, a := range activities {
		line := fmt.Sprintf("%s %s %-20s  %-14s  %-24s  %s",
			cli.Swatch(a.Color), a.Icon, a.Name, cli.FormatSlots(a.Slots), cli.FormatDays(a), cli.MutedStyle.Render(a.ID))
		if a.IsArchived {
			line = cli.MutedStyle.Render(line + "  [archived]")
		}
		fmt.Println(line)
	}
	return nil
}
