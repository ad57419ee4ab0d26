package studyrepo

import (
	"context"
	"errors"

	"radiology/internal/core/domain/model/kernel"
	"radiology/internal/core/domain/model/study"
	"radiology/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStudyRepository implements StudyRepository using GORM.
type GormStudyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStudyRepository creates a new GORM study repository.
func NewGormStudyRepository(db *gorm.DB, tracker aggregateTracker) *GormStudyRepository {
	return &GormStudyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new study to the database and writes the assigned storage
// identifier back onto the aggregate. The identifier is the numeric
// component of the study instance UID, so it must exist before the UID is
// derived.
func (r *GormStudyRepository) Add(ctx context.Context, aggregate *study.Study) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if !aggregate.ID().IsAssigned() {
		id, err := kernel.NewRecordID(dto.ID)
		if err != nil {
			return err
		}
		if err = aggregate.AssignID(id); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.UUID(), aggregate)
	return nil
}

// Update saves an existing study to the database.
func (r *GormStudyRepository) Update(ctx context.Context, aggregate *study.Study) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&StudyDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.UUID(), aggregate)
	return nil
}

// GetByOrderID retrieves the study bound to the given order.
func (r *GormStudyRepository) GetByOrderID(ctx context.Context, orderID kernel.RecordID) (*study.Study, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto StudyDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("study by order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateWorklistStatus persists only the worklist synchronization status of a
// study. The worklist gateway records notification outcomes through this
// method so that handlers can observe them with a follow-up read.
func (r *GormStudyRepository) UpdateWorklistStatus(
	ctx context.Context,
	studyID kernel.RecordID,
	status study.MwlStatus,
) error {
	if err := studyID.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&StudyDTO{}).
		Where("id = ?", studyID.Int64()).
		Update("mwl_status", int(status))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("study", studyID.String())
	}

	return nil
}

// GetAllInFailedSyncStatus retrieves studies whose last save-path
// notification was rejected by the worklist.
func (r *GormStudyRepository) GetAllInFailedSyncStatus(ctx context.Context) ([]*study.Study, error) {
	var dtos []StudyDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "mwl_status IN ?", []int{int(study.MwlSaveErr), int(study.MwlUpdateErr)}).
		Error
	if err != nil {
		return nil, err
	}

	studies := make([]*study.Study, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		studies = append(studies, s)
	}

	return studies, nil
}
