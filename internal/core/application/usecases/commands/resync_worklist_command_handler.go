package commands

import (
	"context"
	"errors"

	"radiology/internal/core/domain/model/study"
	"radiology/internal/core/ports"
)

// ResyncWorklistCommandHandler re-announces studies stuck in a failed
// save-path synchronization status (save_err or update_err). It narrows the
// commit-then-sync discrepancy window left by optimistic saves: the local
// record already stands, so the only recovery is to retry the notification.
//
// The handler never mutates orders. Notification failures for individual
// studies are collected so one unreachable study does not starve the rest.
type ResyncWorklistCommandHandler struct {
	uowFactory StudyUoWFactory
	gateway    ports.WorklistGateway
}

// NewResyncWorklistCommandHandler creates a handler for worklist resync runs.
func NewResyncWorklistCommandHandler(
	uowFactory StudyUoWFactory,
	gateway ports.WorklistGateway,
) ResyncWorklistCommandHandler {
	return ResyncWorklistCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle re-notifies the worklist for every study in a failed sync status.
// Returns the number of studies announced and the joined notification errors,
// if any.
func (h *ResyncWorklistCommandHandler) Handle(ctx context.Context, cmd ResyncWorklistCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()

	studies, err := uow.StudyRepository().GetAllInFailedSyncStatus(ctx)
	if err != nil {
		return 0, err
	}

	var notifyErrs []error
	announced := 0
	for _, s := range studies {
		if err = h.gateway.Notify(ctx, s, study.ActionSave); err != nil {
			notifyErrs = append(notifyErrs, err)
			continue
		}
		announced++
	}

	return announced, errors.Join(notifyErrs...)
}
