package activities

import (
	"fmt"

	"github.com/julianstephens/daydial/internal/cli"
)

type ArchiveCmd struct {
	Activity string `arg:"" help:"Activity ID or name."`
}

func (c *ArchiveCmd) Run(ctx *cli.Context) error {
	activity, err := ctx.FindActivity(c.Activity)
	if err != nil {
		return err
	}
	if err := ctx.Store.ArchiveActivity(activity.ID); err != nil {
		return fmt.Errorf("failed to archive activity: %w", err)
	}
	fmt.Printf("Archived activity: %s\n", activity.Name)
	return nil
}

type UnarchiveCmd struct {
	Activity string `arg:"" help:"Activity ID or name."`
}

func (c *UnarchiveCmd) Run(ctx *cli.Context) error {
	activity, err := ctx.FindActivity(c.Activity)
	if err != nil {
		return err
	}
	if err := ctx.Store.UnarchiveActivity(activity.ID); err != nil {
		return fmt.Errorf("failed to unarchive activity: %w", err)
	}
	fmt.Printf("Restored activity: %s\n", activity.Name)
	return nil
}

// DeleteCmd removes an activity for good. Completed slots and snapshots
// that mention it are kept.
type DeleteCmd struct {
	Activity string `arg:"" help:"Activity ID or name."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	activity, err := ctx.FindActivity(c.Activity)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteActivity(activity.ID); err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	fmt.Printf("Deleted activity: %s\n", activity.Name)
	return nil
}
