package commands

import (
	"errors"

	"radiology/internal/core/domain/model/kernel"
	"radiology/internal/pkg/errs"
	"radiology/internal/pkg/guard"
)

var (
	ErrVoidOrderCommandIsNotConstructed = errors.New(
		"VoidOrderCommand must be created via NewVoidOrderCommand constructor",
	)
)

// VoidOrderCommand represents a request to void an existing order, marking it
// as entered in error. Voiding is gated: the local flag is only set after the
// worklist confirmed the matching notification.
//
// Example:
//
//	orderID, _ := kernel.NewRecordID(7)
//	cmd, err := NewVoidOrderCommand(orderID, "duplicate")
//	if err != nil {
//	    return fmt.Errorf("invalid void request: %w", err)
//	}
type VoidOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.RecordID
	reason  string

	guard guard.ConstructorGuard
}

// NewVoidOrderCommand creates a command to void the given order.
// The order identifier and a non-empty reason are required.
func NewVoidOrderCommand(orderID kernel.RecordID, reason string) (VoidOrderCommand, error) {
	cmd := VoidOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
	); err != nil {
		return VoidOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrVoidOrderCommandIsNotConstructed if validation fails.
func (c VoidOrderCommand) Validate() error {
	return c.guard.Validate(ErrVoidOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to void.
func (c VoidOrderCommand) OrderID() kernel.RecordID {
	return c.orderID
}

// Reason returns the reason the order is being voided.
func (c VoidOrderCommand) Reason() string {
	return c.reason
}

func (c *VoidOrderCommand) setOrderID(orderID kernel.RecordID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *VoidOrderCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("void reason")
	}
	c.reason = reason
	return nil
}
