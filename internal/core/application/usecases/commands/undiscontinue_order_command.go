package commands

import (
	"errors"

	"radiology/internal/core/domain/model/kernel"
	"radiology/internal/pkg/guard"
)

var (
	ErrUndiscontinueOrderCommandIsNotConstructed = errors.New(
		"UndiscontinueOrderCommand must be created via NewUndiscontinueOrderCommand constructor",
	)
)

// UndiscontinueOrderCommand represents a request to resume a discontinued
// order. Resumption is gated on worklist confirmation.
type UndiscontinueOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.RecordID

	guard guard.ConstructorGuard
}

// NewUndiscontinueOrderCommand creates a command to undiscontinue the given order.
func NewUndiscontinueOrderCommand(orderID kernel.RecordID) (UndiscontinueOrderCommand, error) {
	cmd := UndiscontinueOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UndiscontinueOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUndiscontinueOrderCommandIsNotConstructed if validation fails.
func (c UndiscontinueOrderCommand) Validate() error {
	return c.guard.Validate(ErrUndiscontinueOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to undiscontinue.
func (c UndiscontinueOrderCommand) OrderID() kernel.RecordID {
	return c.orderID
}

func (c *UndiscontinueOrderCommand) setOrderID(orderID kernel.RecordID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
