package state

import (
	"context"

	"github.com/google/uuid"
)

// Command is an optimistic store mutation tied to a remote call: the local
// change is applied first, the call runs, and on failure the change is
// reverted so the store never drifts from what the server holds.
type Command struct {
	ID     string
	Apply  func()
	Revert func()
	Call   func(ctx context.Context) error
}

// Run executes the command. Revert fires only when the call fails. The
// command id is assigned on first run and identifies the mutation in logs.
func (c *Command) Run(ctx context.Context) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Apply != nil {
		c.Apply()
	}
	if err := c.Call(ctx); err != nil {
		if c.Revert != nil {
			c.Revert()
		}
		return err
	}
	return nil
}
