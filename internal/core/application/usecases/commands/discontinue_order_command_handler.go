package commands

import (
	"context"

	"radiology/internal/core/domain/model/order"
	"radiology/internal/core/domain/model/study"
	"radiology/internal/core/ports"
	"radiology/internal/pkg/auth"
)

// DiscontinueOrderCommandHandler discontinues an order after the worklist
// confirmed the discontinue notification.
type DiscontinueOrderCommandHandler struct {
	uowFactory UoWFactory
	gateway    ports.WorklistGateway
}

// NewDiscontinueOrderCommandHandler creates a handler for order discontinuation.
func NewDiscontinueOrderCommandHandler(
	uowFactory UoWFactory,
	gateway ports.WorklistGateway,
) DiscontinueOrderCommandHandler {
	return DiscontinueOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the discontinue command through the gate-then-commit sequence.
func (h *DiscontinueOrderCommandHandler) Handle(
	ctx context.Context,
	cmd DiscontinueOrderCommand,
) (Outcome, error) {
	if _, ok := auth.FromContext(ctx); !ok {
		return OutcomeNotAuthenticated, nil
	}

	if err := cmd.Validate(); err != nil {
		return OutcomeInternalError, err
	}

	committed, err := gateThenCommit(
		ctx, h.uowFactory.Create(), h.gateway,
		cmd.OrderID(), study.ActionDiscontinue,
		func(o *order.Order) error {
			return o.Discontinue(cmd.Reason(), cmd.Date())
		},
	)
	if err != nil {
		return OutcomeInternalError, err
	}

	if !committed {
		return OutcomeDiscontinueWorklistFailed, nil
	}
	return OutcomeDiscontinued, nil
}
