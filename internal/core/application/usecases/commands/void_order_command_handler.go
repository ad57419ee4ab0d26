package commands

import (
	"context"

	"radiology/internal/core/domain/model/order"
	"radiology/internal/core/domain/model/study"
	"radiology/internal/core/ports"
	"radiology/internal/pkg/auth"
)

// VoidOrderCommandHandler voids an order after the worklist confirmed the
// void notification. On any status other than void_ok the order is left
// untouched and the outcome reports the refusal.
type VoidOrderCommandHandler struct {
	uowFactory UoWFactory
	gateway    ports.WorklistGateway
}

// NewVoidOrderCommandHandler creates a handler for order void operations.
func NewVoidOrderCommandHandler(uowFactory UoWFactory, gateway ports.WorklistGateway) VoidOrderCommandHandler {
	return VoidOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the void command through the gate-then-commit sequence.
func (h *VoidOrderCommandHandler) Handle(ctx context.Context, cmd VoidOrderCommand) (Outcome, error) {
	if _, ok := auth.FromContext(ctx); !ok {
		return OutcomeNotAuthenticated, nil
	}

	if err := cmd.Validate(); err != nil {
		return OutcomeInternalError, err
	}

	committed, err := gateThenCommit(
		ctx, h.uowFactory.Create(), h.gateway,
		cmd.OrderID(), study.ActionVoid,
		func(o *order.Order) error {
			return o.Void(cmd.Reason())
		},
	)
	if err != nil {
		return OutcomeInternalError, err
	}

	if !committed {
		return OutcomeVoidWorklistFailed, nil
	}
	return OutcomeVoided, nil
}
