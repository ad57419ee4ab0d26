package commands

import (
	"context"

	"radiology/internal/core/domain/model/order"
	"radiology/internal/core/domain/model/study"
	"radiology/internal/core/ports"
	"radiology/internal/pkg/auth"
)

// UndiscontinueOrderCommandHandler resumes a discontinued order after the
// worklist confirmed the undiscontinue notification.
//
// The handler does not require the order to actually be discontinued: the
// voided and discontinued flags are independent, and resuming an order that
// is not discontinued simply clears an already-clear flag.
type UndiscontinueOrderCommandHandler struct {
	uowFactory UoWFactory
	gateway    ports.WorklistGateway
}

// NewUndiscontinueOrderCommandHandler creates a handler for order resumption.
func NewUndiscontinueOrderCommandHandler(
	uowFactory UoWFactory,
	gateway ports.WorklistGateway,
) UndiscontinueOrderCommandHandler {
	return UndiscontinueOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the undiscontinue command through the gate-then-commit sequence.
func (h *UndiscontinueOrderCommandHandler) Handle(
	ctx context.Context,
	cmd UndiscontinueOrderCommand,
) (Outcome, error) {
	if _, ok := auth.FromContext(ctx); !ok {
		return OutcomeNotAuthenticated, nil
	}

	if err := cmd.Validate(); err != nil {
		return OutcomeInternalError, err
	}

	committed, err := gateThenCommit(
		ctx, h.uowFactory.Create(), h.gateway,
		cmd.OrderID(), study.ActionUndiscontinue,
		func(o *order.Order) error {
			o.Undiscontinue()
			return nil
		},
	)
	if err != nil {
		return OutcomeInternalError, err
	}

	if !committed {
		return OutcomeUndiscontinueWorklistFailed, nil
	}
	return OutcomeUndiscontinued, nil
}
