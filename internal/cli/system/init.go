package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/daydial/internal/cli"
	"github.com/julianstephens/daydial/internal/constants"
	"github.com/julianstephens/daydial/internal/models"
)

type InitCmd struct {
	Force  bool `help:"Force reset by deleting existing database before initialization."`
	NoSeed bool `help:"Do not add the starter activities."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized daydial storage at: %s\n", ctx.Store.GetConfigPath())

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}
	if c.NoSeed || !settings.SeedDefaults {
		return nil
	}

	existing, err := ctx.Store.GetAllActivities(true)
	if err != nil {
		return fmt.Errorf("failed to read activities: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	seeded := 0
	for _, a := range models.DefaultActivities() {
		if err := ctx.Store.AddActivity(a); err != nil {
			return fmt.Errorf("failed to seed activity %s: %w", a.Name, err)
		}
		seeded++
	}
	fmt.Printf("Added %d starter activities\n", seeded)
	return nil
}

// reset removes an existing SQLite database file
func (c *InitCmd) reset(ctx *cli.Context) error {
	dbPath := ctx.Store.GetConfigPath()
	if dbPath == constants.MemoryConfigPath || dbPath == "postgresql" {
		return fmt.Errorf("--force is only supported for SQLite databases")
	}

	if _, err := os.Stat(dbPath); err == nil {
		// Close first to prevent file locking issues
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		fmt.Printf("Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}
