package commands

import (
	"context"

	"radiology/internal/core/domain/model/order"
	"radiology/internal/core/domain/model/study"
	"radiology/internal/core/ports"
	"radiology/internal/pkg/auth"
)

// UnvoidOrderCommandHandler restores a voided order after the worklist
// confirmed the unvoid notification.
type UnvoidOrderCommandHandler struct {
	uowFactory UoWFactory
	gateway    ports.WorklistGateway
}

// NewUnvoidOrderCommandHandler creates a handler for order unvoid operations.
func NewUnvoidOrderCommandHandler(uowFactory UoWFactory, gateway ports.WorklistGateway) UnvoidOrderCommandHandler {
	return UnvoidOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the unvoid command through the gate-then-commit sequence.
func (h *UnvoidOrderCommandHandler) Handle(ctx context.Context, cmd UnvoidOrderCommand) (Outcome, error) {
	if _, ok := auth.FromContext(ctx); !ok {
		return OutcomeNotAuthenticated, nil
	}

	if err := cmd.Validate(); err != nil {
		return OutcomeInternalError, err
	}

	committed, err := gateThenCommit(
		ctx, h.uowFactory.Create(), h.gateway,
		cmd.OrderID(), study.ActionUnvoid,
		func(o *order.Order) error {
			o.Unvoid()
			return nil
		},
	)
	if err != nil {
		return OutcomeInternalError, err
	}

	if !committed {
		return OutcomeUnvoidWorklistFailed, nil
	}
	return OutcomeUnvoided, nil
}
