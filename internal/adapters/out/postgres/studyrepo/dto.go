// Package studyrepo provides data transfer objects and mapping functions for
// study persistence. A study row carries the DICOM-facing attributes of its
// order, including the worklist synchronization status the lifecycle
// handlers gate on.
package studyrepo

import (
	"radiology/internal/core/domain/model/kernel"
	"radiology/internal/core/domain/model/study"
)

// StudyDTO represents the database structure for persisting study aggregates.
// The mwl_status column is indexed because the resync job scans for rows in
// the failed statuses.
type StudyDTO struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement"`
	UUID                string `gorm:"type:uuid;uniqueIndex"`
	OrderID             int64  `gorm:"index"`
	StudyInstanceUID    string
	MwlStatus           int `gorm:"index"`
	Modality            int
	Priority            int
	ScheduledStepStatus int
	PerformedStepStatus int
}

// TableName specifies the database table name for study entities.
func (StudyDTO) TableName() string {
	return "studies"
}

// fromDomain converts a study domain aggregate to its database
// representation. A zero ID leaves identifier assignment to the database.
func fromDomain(aggregate *study.Study) StudyDTO {
	return StudyDTO{
		ID:                  aggregate.ID().Int64(),
		UUID:                aggregate.UUID().String(),
		OrderID:             aggregate.OrderID().Int64(),
		StudyInstanceUID:    aggregate.StudyInstanceUID(),
		MwlStatus:           int(aggregate.MwlStatus()),
		Modality:            int(aggregate.Modality()),
		Priority:            int(aggregate.Priority()),
		ScheduledStepStatus: int(aggregate.ScheduledStatus()),
		PerformedStepStatus: int(aggregate.PerformedStatus()),
	}
}

// toDomain converts a database row to a study domain aggregate using
// RestoreStudy.
func toDomain(dto StudyDTO) (*study.Study, error) {
	id, err := kernel.NewRecordID(dto.ID)
	if err != nil {
		return nil, err
	}

	recordUUID, err := kernel.UUIDFromString(dto.UUID)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.NewRecordID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	return study.RestoreStudy(
		id, recordUUID, orderID,
		dto.StudyInstanceUID,
		study.MwlStatus(dto.MwlStatus),
		study.Modality(dto.Modality),
		study.Priority(dto.Priority),
		study.ScheduledStepStatus(dto.ScheduledStepStatus),
		study.PerformedStepStatus(dto.PerformedStepStatus),
	)
}
