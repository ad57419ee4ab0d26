package commands

import (
	"context"

	"radiology/internal/core/domain/model/kernel"
	"radiology/internal/core/domain/model/order"
	"radiology/internal/core/domain/model/study"
	"radiology/internal/core/ports"
)

// gateThenCommit runs the pessimistic half of the lifecycle shared by the
// void, unvoid, discontinue and undiscontinue handlers.
//
// Sequence: fetch the order and its study, notify the worklist of the
// requested action before any local mutation, re-fetch the study and inspect
// the synchronization status it now carries. Only when the status equals the
// action's "ok" value is the mutation applied and persisted; otherwise the
// order is left untouched.
//
// Returns (true, nil) when the mutation was committed, (false, nil) when the
// worklist refused and nothing changed, and (false, err) when a store or
// gateway call failed.
func gateThenCommit(
	ctx context.Context,
	uow UoW,
	gateway ports.WorklistGateway,
	orderID kernel.RecordID,
	action study.WorklistAction,
	mutate func(*order.Order) error,
) (bool, error) {
	o, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return false, err
	}

	s, err := uow.StudyRepository().GetByOrderID(ctx, o.ID())
	if err != nil {
		return false, err
	}

	if err = gateway.Notify(ctx, s, action); err != nil {
		return false, err
	}

	// The gateway persisted the outcome; re-fetch rather than trusting the
	// in-memory study. This read-after-write is the only ordering guarantee
	// the commit decision rests on.
	refreshed, err := uow.StudyRepository().GetByOrderID(ctx, o.ID())
	if err != nil {
		return false, err
	}

	if refreshed.MwlStatus().FailedFor(action) {
		return false, nil
	}

	if err = mutate(o); err != nil {
		return false, err
	}

	if err = uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
