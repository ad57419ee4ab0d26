package queries

import (
	"errors"
	"time"

	"radiology/internal/core/domain/model/kernel"
	"radiology/internal/pkg/guard"
)

var (
	ErrGetOrderFormQueryIsNotConstructed = errors.New(
		"GetOrderFormQuery must be created via NewGetOrderFormQuery constructor",
	)
)

// GetOrderFormQuery retrieves the order form read model: either the persisted
// order/study pair being edited, or a blank form with prefilled references
// for a new order.
//
// Example:
//
//	// edit an existing order
//	orderID, _ := kernel.NewRecordID(7)
//	query, err := NewGetOrderFormQuery(orderID, kernel.RecordID{})
//
//	// blank form for a given patient
//	patientID, _ := kernel.NewRecordID(12)
//	query, err = NewGetOrderFormQuery(kernel.RecordID{}, patientID)
type GetOrderFormQuery struct {
	orderID   kernel.RecordID
	patientID kernel.RecordID

	guard guard.ConstructorGuard
}

// NewGetOrderFormQuery creates a query for the order form. A zero orderID
// requests a blank form; patientID optionally presets the patient reference
// on a blank form and is ignored when an order is loaded.
func NewGetOrderFormQuery(orderID, patientID kernel.RecordID) GetOrderFormQuery {
	return GetOrderFormQuery{
		orderID:   orderID,
		patientID: patientID,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderFormQueryIsNotConstructed if validation fails.
func (q GetOrderFormQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderFormQueryIsNotConstructed)
}

// OrderID returns the targeted order identifier; zero requests a blank form.
func (q GetOrderFormQuery) OrderID() kernel.RecordID {
	return q.orderID
}

// PatientID returns the optional patient preset for a blank form.
func (q GetOrderFormQuery) PatientID() kernel.RecordID {
	return q.patientID
}

// IsNew reports whether the query asks for a blank form.
func (q GetOrderFormQuery) IsNew() bool {
	return !q.orderID.IsAssigned()
}

// GetOrderFormQueryResponse is the order form read model. For a blank form
// only the prefill fields are populated.
type GetOrderFormQueryResponse struct {
	OrderID            int64
	PatientID          int64
	OrdererID          int64
	State              string
	Voided             bool
	VoidReason         string
	Discontinued       bool
	DiscontinuedReason string
	DiscontinuedDate   *time.Time
	Modality           string
	Priority           string
	StudyInstanceUID   string
	MwlStatus          string
	Performed          bool
}
