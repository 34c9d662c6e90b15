package system

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julianstephens/daydial/internal/cli"
	"github.com/julianstephens/daydial/internal/transfer"
)

type ExportCmd struct {
	File   string `arg:"" optional:"" help:"Output file. Defaults to stdout."`
	Format string `help:"Output format (json or yaml). Defaults to the file extension, else json."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	format, err := resolveFormat(c.Format, c.File)
	if err != nil {
		return err
	}

	activities, err := ctx.Store.GetAllActivities(true)
	if err != nil {
		return fmt.Errorf("failed to read activities: %w", err)
	}
	slots, err := ctx.Store.GetCompletedSlots()
	if err != nil {
		return fmt.Errorf("failed to read completed slots: %w", err)
	}
	snapshots, err := ctx.Store.GetAllSnapshots()
	if err != nil {
		return fmt.Errorf("failed to read snapshots: %w", err)
	}
	bundle := transfer.NewBundle(activities, slots, snapshots, time.Now().UTC())

	var w io.Writer = os.Stdout
	if c.File != "" {
		f, err := os.Create(c.File)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", c.File, err)
		}
		defer f.Close()
		w = f
	}

	if err := transfer.Export(w, format, bundle); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if c.File != "" {
		fmt.Printf("Exported %d activities, %d completed slots and %d snapshots to %s\n",
			len(activities), len(slots), len(snapshots), c.File)
	}
	return nil
}

type ImportCmd struct {
	File   string `arg:"" help:"Bundle file to import." type:"existingfile"`
	Format string `help:"Input format (json or yaml). Defaults to the file extension."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	format, err := resolveFormat(c.Format, c.File)
	if err != nil {
		return err
	}

	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", c.File, err)
	}
	defer f.Close()

	bundle, err := transfer.Import(f, format)
	if err != nil {
		return err
	}
	res, err := transfer.Apply(ctx.Store, bundle)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Imported %d new and %d updated activities, %d completed slots\n",
		res.ActivitiesAdded, res.ActivitiesUpdated, res.SlotsImported)
	fmt.Printf("Snapshots: %d added, %d kept as recorded\n", res.SnapshotsAdded, res.SnapshotsSkipped)
	return nil
}

func resolveFormat(flag, path string) (transfer.Format, error) {
	if flag != "" {
		return transfer.ParseFormat(flag)
	}
	return transfer.FormatFromPath(path), nil
}
