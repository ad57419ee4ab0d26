package ports

import (
	"context"

	"radiology/internal/core/domain/model/study"
)

// WorklistGateway notifies the external modality worklist of an order
// lifecycle event. A notification is synchronous and single-attempt: the
// gateway performs exactly one remote call per Notify invocation and writes
// the resulting synchronization status onto the study's persisted record
// before returning.
//
// Callers must not trust the in-memory study after Notify returns; they read
// the outcome by re-fetching the study from the StudyRepository. A returned
// error signals a failure to reach or record the outcome (transport error,
// storage error) and is distinct from an "err" synchronization status, which
// Notify reports as a normal, nil-error result.
type WorklistGateway interface {
	Notify(ctx context.Context, s *study.Study, action study.WorklistAction) error
}
