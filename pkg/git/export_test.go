package git

import (
	"context"
	"os/exec"
)

func (c *CommandCloner) Command(ctx context.Context, args []string) *exec.Cmd {
	return c.command(ctx, args)
}
