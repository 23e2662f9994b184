package cli

import (
	"context"
	"fmt"
)

type SyncCmd struct{}

func (c *SyncCmd) Run(ctx *Context) error {
	if err := ctx.RefreshCache(context.Background()); err != nil {
		return err
	}
	fmt.Println("Synced with server.")
	return nil
}
