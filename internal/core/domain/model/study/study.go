package study

import (
	"errors"

	"radiology/internal/core/domain/model/kernel"
	"radiology/internal/pkg/errs"
)

var (
	// ErrStudyIsNotConstructed is returned when a Study instance was not created through
	// the NewStudy or RestoreStudy factory methods.
	ErrStudyIsNotConstructed = errors.New("Study must be created via NewStudy or RestoreStudy")

	// ErrStudyIDAlreadyAssigned is returned when the store attempts to assign a storage
	// identifier to a study that already has one. Identifiers are immutable once set.
	ErrStudyIDAlreadyAssigned = errors.New("study id is already assigned and cannot change")

	// ErrStudyAlreadyBound is returned when binding a study to an order it is not
	// already bound to. The study/order relationship is 1:1 and permanent.
	ErrStudyAlreadyBound = errors.New("study is already bound to a different order")

	// ErrStudyInstanceUIDAlreadyAssigned is returned when assigning a study instance
	// UID to a study that already carries one. The UID is assigned exactly once, at
	// first successful save, and never reassigned.
	ErrStudyInstanceUIDAlreadyAssigned = errors.New("study instance uid is already assigned and cannot change")

	// ErrStudyPerformed is returned when mutating a study whose performed procedure
	// step is already in progress or completed.
	ErrStudyPerformed = errors.New("study has been performed and can no longer be edited")
)

// Study represents a radiology study bound 1:1 to an order. The study
// references the order through the order's storage identifier; it does not own
// the order's lifecycle.
//
// Study follows these invariants:
//   - The storage identifier is assigned by the store exactly once
//   - The study instance UID is assigned exactly once, at first successful
//     save, and is never reassigned
//   - The worklist synchronization status is mutated only through
//     RecordWorklistOutcome (called by the gateway) and restored from storage
//   - A study whose performed step is in progress or completed is locked
//     against further form edits
type Study struct {
	// id is the storage identifier, zero until the store assigns one
	id kernel.RecordID

	// uuid is the globally unique record identifier, minted at creation
	uuid kernel.UUID

	// orderID references the order this study belongs to, zero until bound
	orderID kernel.RecordID

	// studyInstanceUID is the DICOM study instance UID, empty until the first
	// successful save assigns prefix + storage id
	studyInstanceUID string

	// mwlStatus is the outcome of the last worklist notification
	mwlStatus MwlStatus

	modality        Modality
	priority        Priority
	scheduledStatus ScheduledStepStatus
	performedStatus PerformedStepStatus

	// isConstructed ensures the study was created via a factory method
	isConstructed bool
}

// NewStudy creates a new Study for the given modality and priority.
// The study starts unbound, unsynchronized (MwlDefault) and without a study
// instance UID; binding and UID assignment happen during the save flow.
func NewStudy(modality Modality, priority Priority) (*Study, error) {
	s := &Study{
		uuid:          kernel.NewUUID(),
		mwlStatus:     MwlDefault,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setModality(modality),
		s.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStudy reconstructs a Study from its persisted state.
// Used by the persistence layer when rehydrating aggregates.
func RestoreStudy(
	id kernel.RecordID,
	recordUUID kernel.UUID,
	orderID kernel.RecordID,
	studyInstanceUID string,
	mwlStatus MwlStatus,
	modality Modality,
	priority Priority,
	scheduledStatus ScheduledStepStatus,
	performedStatus PerformedStepStatus,
) (*Study, error) {
	s := &Study{
		studyInstanceUID: studyInstanceUID,
		mwlStatus:        mwlStatus,
		scheduledStatus:  scheduledStatus,
		performedStatus:  performedStatus,
		isConstructed:    true,
	}

	if err := errors.Join(
		id.Validate(),
		recordUUID.Validate(),
		orderID.Validate(),
		mwlStatus.Validate(),
		s.setModality(modality),
		s.setPriority(priority),
		scheduledStatus.Validate(),
		performedStatus.Validate(),
	); err != nil {
		return nil, err
	}

	s.id = id
	s.uuid = recordUUID
	s.orderID = orderID
	return s, nil
}

// Validate ensures the Study instance was properly constructed through a
// factory method.
func (s *Study) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStudyIsNotConstructed
	}
	return nil
}

// IsEqual compares two studies by their record UUIDs.
func (s *Study) IsEqual(other *Study) bool {
	return other != nil && s.uuid.IsEqual(other.uuid)
}

// ID returns the storage identifier. The zero RecordID means the study has
// not been saved yet.
func (s *Study) ID() kernel.RecordID {
	return s.id
}

// UUID returns the globally unique record identifier.
func (s *Study) UUID() kernel.UUID {
	return s.uuid
}

// OrderID returns the identifier of the bound order, zero until bound.
func (s *Study) OrderID() kernel.RecordID {
	return s.orderID
}

// StudyInstanceUID returns the DICOM study instance UID, empty until the
// first successful save assigns one.
func (s *Study) StudyInstanceUID() string {
	return s.studyInstanceUID
}

// MwlStatus returns the outcome of the last worklist notification.
func (s *Study) MwlStatus() MwlStatus {
	return s.mwlStatus
}

// Modality returns the imaging modality the study is scheduled for.
func (s *Study) Modality() Modality {
	return s.modality
}

// Priority returns the requested procedure priority.
func (s *Study) Priority() Priority {
	return s.priority
}

// ScheduledStatus returns the DICOM scheduled procedure step status.
func (s *Study) ScheduledStatus() ScheduledStepStatus {
	return s.scheduledStatus
}

// PerformedStatus returns the DICOM performed procedure step status.
func (s *Study) PerformedStatus() PerformedStepStatus {
	return s.performedStatus
}

// IsPerformed reports whether the performed procedure step has started or
// finished. Performed studies are locked against form edits.
func (s *Study) IsPerformed() bool {
	return s.performedStatus == PerformedStepInProgress || s.performedStatus == PerformedStepCompleted
}

// AssignID records the storage identifier the store assigned on first save.
// Returns ErrStudyIDAlreadyAssigned when the study already has one.
func (s *Study) AssignID(id kernel.RecordID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if s.id.IsAssigned() {
		return ErrStudyIDAlreadyAssigned
	}

	s.id = id
	return nil
}

// BindToOrder ties the study to the given order identifier.
// Rebinding to the same order is a no-op; binding to a different order
// returns ErrStudyAlreadyBound, the relationship is permanent.
func (s *Study) BindToOrder(orderID kernel.RecordID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if s.orderID.IsAssigned() && !s.orderID.IsEqual(orderID) {
		return ErrStudyAlreadyBound
	}

	s.orderID = orderID
	return nil
}

// AssignStudyInstanceUID records the DICOM study instance UID assigned at
// first successful save. Assigning the same UID again is a no-op; any other
// reassignment returns ErrStudyInstanceUIDAlreadyAssigned.
func (s *Study) AssignStudyInstanceUID(uid string) error {
	if uid == "" {
		return errs.NewValueIsRequiredError("study instance uid")
	}
	if s.studyInstanceUID != "" {
		if s.studyInstanceUID == uid {
			return nil
		}
		return ErrStudyInstanceUIDAlreadyAssigned
	}

	s.studyInstanceUID = uid
	return nil
}

// RecordWorklistOutcome stores the outcome of a worklist notification.
// Only the worklist gateway calls this; lifecycle handlers read the status
// back by re-fetching the study.
func (s *Study) RecordWorklistOutcome(status MwlStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	s.mwlStatus = status
	return nil
}

// Amend updates the requested modality and priority of a study that has not
// been performed yet. Returns ErrStudyPerformed otherwise.
func (s *Study) Amend(modality Modality, priority Priority) error {
	if s.IsPerformed() {
		return ErrStudyPerformed
	}

	return errors.Join(
		s.setModality(modality),
		s.setPriority(priority),
	)
}

// Reschedule updates the procedure step statuses reported by the modality.
// Returns ErrStudyPerformed when the study is already performed.
func (s *Study) Reschedule(scheduled ScheduledStepStatus, performed PerformedStepStatus) error {
	if s.IsPerformed() {
		return ErrStudyPerformed
	}

	if err := errors.Join(scheduled.Validate(), performed.Validate()); err != nil {
		return err
	}

	s.scheduledStatus = scheduled
	s.performedStatus = performed
	return nil
}

func (s *Study) setModality(modality Modality) error {
	if err := modality.Validate(); err != nil {
		return err
	}
	s.modality = modality
	return nil
}

func (s *Study) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	s.priority = priority
	return nil
}
