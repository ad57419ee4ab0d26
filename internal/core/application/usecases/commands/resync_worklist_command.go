package commands

import (
	"errors"

	"radiology/internal/pkg/guard"
)

var (
	ErrResyncWorklistCommandIsNotConstructed = errors.New(
		"ResyncWorklistCommand must be created via NewResyncWorklistCommand constructor",
	)
)

// ResyncWorklistCommand requests a re-notification of the worklist for every
// study whose last save-path notification failed. It is issued periodically
// by the resync job, not by users.
type ResyncWorklistCommand struct {
	guard guard.ConstructorGuard
}

// NewResyncWorklistCommand creates a parameterless resync command.
func NewResyncWorklistCommand() ResyncWorklistCommand {
	return ResyncWorklistCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrResyncWorklistCommandIsNotConstructed if validation fails.
func (c ResyncWorklistCommand) Validate() error {
	return c.guard.Validate(ErrResyncWorklistCommandIsNotConstructed)
}
