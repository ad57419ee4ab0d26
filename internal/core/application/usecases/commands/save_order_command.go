package commands

import (
	"errors"

	"radiology/internal/core/domain/model/kernel"
	"radiology/internal/core/domain/model/study"
	"radiology/internal/pkg/guard"
)

var (
	ErrSaveOrderCommandIsNotConstructed = errors.New(
		"SaveOrderCommand must be created via NewSaveOrderCommand constructor",
	)
)

// SaveOrderCommand represents a request to create or update a radiology order
// together with its study. A zero OrderID requests creation; an assigned
// OrderID requests an update of the existing order.
//
// Example:
//
//	patientID, _ := kernel.NewRecordID(12)
//	ordererID, _ := kernel.NewRecordID(3)
//	cmd, err := NewSaveOrderCommand(
//	    kernel.RecordID{}, patientID, ordererID,
//	    study.ModalityCT, study.PriorityRoutine,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type SaveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.RecordID
	patientID kernel.RecordID
	ordererID kernel.RecordID
	modality  study.Modality
	priority  study.Priority

	guard guard.ConstructorGuard
}

// NewSaveOrderCommand creates a command to save a radiology order.
// orderID may be the zero RecordID for a new order. Patient and orderer
// references, modality and priority are always required.
func NewSaveOrderCommand(
	orderID, patientID, ordererID kernel.RecordID,
	modality study.Modality,
	priority study.Priority,
) (SaveOrderCommand, error) {
	cmd := SaveOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPatientID(patientID),
		cmd.setOrdererID(ordererID),
		cmd.setModality(modality),
		cmd.setPriority(priority),
	); err != nil {
		return SaveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSaveOrderCommandIsNotConstructed if validation fails.
func (c SaveOrderCommand) Validate() error {
	return c.guard.Validate(ErrSaveOrderCommandIsNotConstructed)
}

// OrderID returns the targeted order identifier; zero requests creation.
func (c SaveOrderCommand) OrderID() kernel.RecordID {
	return c.orderID
}

// IsNew reports whether the command creates a new order.
func (c SaveOrderCommand) IsNew() bool {
	return !c.orderID.IsAssigned()
}

// PatientID returns the referenced patient identifier.
func (c SaveOrderCommand) PatientID() kernel.RecordID {
	return c.patientID
}

// OrdererID returns the identifier of the ordering clinician.
func (c SaveOrderCommand) OrdererID() kernel.RecordID {
	return c.ordererID
}

// Modality returns the requested imaging modality.
func (c SaveOrderCommand) Modality() study.Modality {
	return c.modality
}

// Priority returns the requested procedure priority.
func (c SaveOrderCommand) Priority() study.Priority {
	return c.priority
}

func (c *SaveOrderCommand) setPatientID(patientID kernel.RecordID) error {
	if err := patientID.Validate(); err != nil {
		return err
	}
	c.patientID = patientID
	return nil
}

func (c *SaveOrderCommand) setOrdererID(ordererID kernel.RecordID) error {
	if err := ordererID.Validate(); err != nil {
		return err
	}
	c.ordererID = ordererID
	return nil
}

func (c *SaveOrderCommand) setModality(modality study.Modality) error {
	if err := modality.Validate(); err != nil {
		return err
	}
	c.modality = modality
	return nil
}

func (c *SaveOrderCommand) setPriority(priority study.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}
