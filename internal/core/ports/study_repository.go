package ports

import (
	"context"

	"radiology/internal/core/domain/model/kernel"
	"radiology/internal/core/domain/model/study"
)

// StudyRepository defines the persistence contract for study aggregates.
// Studies are keyed by their own storage identifier but usually looked up
// through the order they are bound to.
type StudyRepository interface {
	// Add persists a new study aggregate and assigns its storage identifier.
	// The identifier is written back onto the aggregate via AssignID.
	Add(ctx context.Context, aggregate *study.Study) error

	// Update persists changes to an existing study aggregate.
	Update(ctx context.Context, aggregate *study.Study) error

	// GetByOrderID retrieves the study bound to the given order.
	// Returns errs.ObjectNotFoundError when no study is bound to it.
	GetByOrderID(ctx context.Context, orderID kernel.RecordID) (*study.Study, error)

	// UpdateWorklistStatus persists only the worklist synchronization status
	// of a study. The worklist gateway uses this to record a notification
	// outcome; lifecycle handlers observe it by re-fetching the study.
	UpdateWorklistStatus(ctx context.Context, studyID kernel.RecordID, status study.MwlStatus) error

	// GetAllInFailedSyncStatus retrieves studies whose last save-path
	// notification failed (save_err or update_err). Used by the resync job.
	GetAllInFailedSyncStatus(ctx context.Context) ([]*study.Study, error)
}
