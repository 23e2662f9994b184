package system

import (
	"fmt"
	"os"

	"github.com/meetly-app/meetly-cli/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting the existing cache before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.CachePath
		if _, err := os.Stat(dbPath); err == nil {
			// Close before deleting to avoid file locking issues.
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing cache: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing cache: %w", err)
			}
			fmt.Printf("Deleted existing cache at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing cache: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized meetly cache at: %s\n", ctx.Store.GetConfigPath())
	fmt.Println("Run 'meetly login' and then 'meetly sync' to populate it.")
	return nil
}
