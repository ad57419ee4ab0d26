package commands

import (
	"errors"

	"radiology/internal/core/domain/model/kernel"
	"radiology/internal/pkg/guard"
)

var (
	ErrUnvoidOrderCommandIsNotConstructed = errors.New(
		"UnvoidOrderCommand must be created via NewUnvoidOrderCommand constructor",
	)
)

// UnvoidOrderCommand represents a request to restore a voided order.
// Unvoiding is gated on worklist confirmation like the other reversals.
type UnvoidOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.RecordID

	guard guard.ConstructorGuard
}

// NewUnvoidOrderCommand creates a command to unvoid the given order.
func NewUnvoidOrderCommand(orderID kernel.RecordID) (UnvoidOrderCommand, error) {
	cmd := UnvoidOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UnvoidOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUnvoidOrderCommandIsNotConstructed if validation fails.
func (c UnvoidOrderCommand) Validate() error {
	return c.guard.Validate(ErrUnvoidOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to unvoid.
func (c UnvoidOrderCommand) OrderID() kernel.RecordID {
	return c.orderID
}

func (c *UnvoidOrderCommand) setOrderID(orderID kernel.RecordID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
