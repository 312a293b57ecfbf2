package commands

import (
	"errors"

	"tours/internal/pkg/guard"
)

var (
	ErrSweepOrphansCommandIsNotConstructed = errors.New(
		"SweepOrphansCommand must be created via NewSweepOrphansCommand constructor",
	)
)

// SweepOrphansCommand removes dependents whose tour no longer exists. It
// completes cascades that failed part way through.
type SweepOrphansCommand struct {
	guard guard.ConstructorGuard
}

func NewSweepOrphansCommand() SweepOrphansCommand {
	return SweepOrphansCommand{guard: guard.NewConstructorGuard()}
}

func (c SweepOrphansCommand) Validate() error {
	return c.guard.Validate(ErrSweepOrphansCommandIsNotConstructed)
}
