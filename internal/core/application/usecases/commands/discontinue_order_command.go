package commands

import (
	"errors"
	"time"

	"radiology/internal/core/domain/model/kernel"
	"radiology/internal/pkg/errs"
	"radiology/internal/pkg/guard"
)

var (
	ErrDiscontinueOrderCommandIsNotConstructed = errors.New(
		"DiscontinueOrderCommand must be created via NewDiscontinueOrderCommand constructor",
	)
)

// DiscontinueOrderCommand represents a request to discontinue an existing
// order, recording the reason and the date the discontinuation takes effect.
// Discontinuation is gated on worklist confirmation.
type DiscontinueOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.RecordID
	reason  string
	date    time.Time

	guard guard.ConstructorGuard
}

// NewDiscontinueOrderCommand creates a command to discontinue the given order.
// The order identifier, a non-empty reason and a non-zero date are required.
func NewDiscontinueOrderCommand(
	orderID kernel.RecordID,
	reason string,
	date time.Time,
) (DiscontinueOrderCommand, error) {
	cmd := DiscontinueOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
		cmd.setDate(date),
	); err != nil {
		return DiscontinueOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDiscontinueOrderCommandIsNotConstructed if validation fails.
func (c DiscontinueOrderCommand) Validate() error {
	return c.guard.Validate(ErrDiscontinueOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to discontinue.
func (c DiscontinueOrderCommand) OrderID() kernel.RecordID {
	return c.orderID
}

// Reason returns the reason the order is being discontinued.
func (c DiscontinueOrderCommand) Reason() string {
	return c.reason
}

// Date returns the date the discontinuation takes effect.
func (c DiscontinueOrderCommand) Date() time.Time {
	return c.date
}

func (c *DiscontinueOrderCommand) setOrderID(orderID kernel.RecordID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *DiscontinueOrderCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("discontinue reason")
	}
	c.reason = reason
	return nil
}

func (c *DiscontinueOrderCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("discontinue date")
	}
	c.date = date
	return nil
}
