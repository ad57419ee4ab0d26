package commands

import (
	"context"

	"radiology/internal/core/domain/model/order"
	"radiology/internal/core/domain/model/study"
	"radiology/internal/core/domain/services"
	"radiology/internal/core/ports"
	"radiology/internal/pkg/auth"
)

// SaveOrderCommandHandler handles order creation and update.
//
// Save is the optimistic half of the lifecycle: the local write is committed
// first and is irreversible by the time the worklist is notified. A rejected
// notification therefore never rolls anything back; it only downgrades the
// outcome to OutcomeSavedWorklistFailed so the caller sees the discrepancy.
//
// The study instance UID is derived from the study's storage identifier on
// first save and never changes on later saves of the same order.
type SaveOrderCommandHandler struct {
	uowFactory   UoWFactory
	gateway      ports.WorklistGateway
	uidGenerator services.StudyUIDGenerator
}

// NewSaveOrderCommandHandler creates a handler for order save operations.
func NewSaveOrderCommandHandler(
	uowFactory UoWFactory,
	gateway ports.WorklistGateway,
	uidGenerator services.StudyUIDGenerator,
) SaveOrderCommandHandler {
	return SaveOrderCommandHandler{
		uowFactory:   uowFactory,
		gateway:      gateway,
		uidGenerator: uidGenerator,
	}
}

// Handle processes the save command.
//
// Sequence: persist the order (assigning its identifier when new), bind and
// persist the study, assign the study instance UID, commit, then notify the
// worklist and re-fetch the study to read the synchronization status. An
// error from a store or the gateway aborts the remaining steps; steps already
// committed are not undone.
func (h *SaveOrderCommandHandler) Handle(ctx context.Context, cmd SaveOrderCommand) (Outcome, error) {
	if _, ok := auth.FromContext(ctx); !ok {
		return OutcomeNotAuthenticated, nil
	}

	if err := cmd.Validate(); err != nil {
		return OutcomeInternalError, err
	}

	uow := h.uowFactory.Create()

	o, s, outcome, err := h.prepare(ctx, uow, cmd)
	if err != nil {
		return OutcomeInternalError, err
	}
	if outcome != OutcomeUnknown {
		return outcome, nil
	}

	if err = h.persist(ctx, uow, cmd, o, s); err != nil {
		return OutcomeInternalError, err
	}

	// The local commit is final from here on. A gateway failure below is
	// reported to the caller while the saved order stands.
	if err = h.gateway.Notify(ctx, s, study.ActionSave); err != nil {
		return OutcomeInternalError, err
	}

	refreshed, err := uow.StudyRepository().GetByOrderID(ctx, o.ID())
	if err != nil {
		return OutcomeInternalError, err
	}

	if refreshed.MwlStatus().FailedFor(study.ActionSave) {
		return OutcomeSavedWorklistFailed, nil
	}
	return OutcomeSaved, nil
}

// prepare loads or constructs the order/study pair the command targets.
// A non-OutcomeUnknown outcome short-circuits the handler without side effects.
func (h *SaveOrderCommandHandler) prepare(
	ctx context.Context,
	uow UoW,
	cmd SaveOrderCommand,
) (*order.Order, *study.Study, Outcome, error) {
	if cmd.IsNew() {
		o, err := order.NewOrder(cmd.PatientID(), cmd.OrdererID())
		if err != nil {
			return nil, nil, OutcomeUnknown, err
		}
		s, err := study.NewStudy(cmd.Modality(), cmd.Priority())
		if err != nil {
			return nil, nil, OutcomeUnknown, err
		}
		return o, s, OutcomeUnknown, nil
	}

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, nil, OutcomeUnknown, err
	}

	s, err := uow.StudyRepository().GetByOrderID(ctx, o.ID())
	if err != nil {
		return nil, nil, OutcomeUnknown, err
	}

	if s.IsPerformed() {
		return nil, nil, OutcomeStudyPerformed, nil
	}
	if err = s.Amend(cmd.Modality(), cmd.Priority()); err != nil {
		return nil, nil, OutcomeUnknown, err
	}

	return o, s, OutcomeUnknown, nil
}

// persist writes the order and study in one transaction, assigning storage
// identifiers and the study instance UID on first save.
func (h *SaveOrderCommandHandler) persist(
	ctx context.Context,
	uow UoW,
	cmd SaveOrderCommand,
	o *order.Order,
	s *study.Study,
) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	studyRepo := uow.StudyRepository()

	if cmd.IsNew() {
		if err := orderRepo.Add(ctx, o); err != nil {
			return err
		}
		if err := s.BindToOrder(o.ID()); err != nil {
			return err
		}
		if err := studyRepo.Add(ctx, s); err != nil {
			return err
		}
	} else {
		if err := orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if s.StudyInstanceUID() == "" {
		uid, err := h.uidGenerator.Generate(s.ID())
		if err != nil {
			return err
		}
		if err = s.AssignStudyInstanceUID(uid); err != nil {
			return err
		}
	}

	if err := studyRepo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
