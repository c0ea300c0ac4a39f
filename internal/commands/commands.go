// Package commands implements the iexpense subcommands.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/google/subcommands"

	"iexpense/internal/cli"
)

// Env is what every command needs from the process: a way to open the
// session lazily (so help does not touch storage) and where to print.
type Env struct {
	Open func(ctx context.Context) (*cli.Session, error)
	Out  io.Writer
	Err  io.Writer
}

// Register the subcommands.
func Register(c *subcommands.Commander, env *Env) {
	c.Register(&addCmd{env: env}, "expenses")
	c.Register(&listCmd{env: env}, "expenses")
	c.Register(&removeCmd{env: env}, "expenses")
	c.Register(&summaryCmd{env: env}, "expenses")

	c.Register(&favoriteCmd{env: env}, "favorites")
	c.Register(&activityCmd{env: env}, "activities")
}

// withSession opens the session, runs fn and closes it again.
func (e *Env) withSession(ctx context.Context, fn func(*cli.Session) subcommands.ExitStatus) subcommands.ExitStatus {
	s, err := e.Open(ctx)
	if err != nil {
		fmt.Fprintf(e.Err, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	status := fn(s)
	if err := s.Close(); err != nil {
		fmt.Fprintf(e.Err, "Error closing ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	return status
}
