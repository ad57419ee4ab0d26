package order

import (
	"errors"
	"time"

	"radiology/internal/core/domain/model/kernel"
	"radiology/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderIDAlreadyAssigned is returned when the store attempts to assign a storage
	// identifier to an order that already has one. Identifiers are immutable once set.
	ErrOrderIDAlreadyAssigned = errors.New("order id is already assigned and cannot change")

	// ErrVoidReasonIsRequired is returned when voiding an order without a reason.
	ErrVoidReasonIsRequired = errs.NewValueIsRequiredError("void reason")

	// ErrDiscontinueReasonIsRequired is returned when discontinuing an order without a reason.
	ErrDiscontinueReasonIsRequired = errs.NewValueIsRequiredError("discontinue reason")
)

// Order represents a clinical instruction record for a radiology procedure.
// It is the aggregate root that manages the order lifecycle from creation
// through voiding and discontinuation.
//
// Order follows these invariants:
//   - Must reference an existing patient and an orderer
//   - The storage identifier is assigned by the store exactly once, on first
//     save, and never changes afterwards
//   - Voided and discontinued are independent flags; neither excludes the other
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the storage identifier, zero until the store assigns one
	id kernel.RecordID

	// uuid is the globally unique record identifier, minted at creation
	uuid kernel.UUID

	// patientID references the patient the procedure was ordered for
	patientID kernel.RecordID

	// ordererID references the clinician who placed the order
	ordererID kernel.RecordID

	// voided marks the order as entered in error
	voided     bool
	voidReason string

	// discontinued marks the order as stopped after being placed
	discontinued       bool
	discontinuedReason string
	discontinuedDate   *time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order for the given patient and orderer.
// The order starts active, carries a freshly minted record UUID and has no
// storage identifier until the store assigns one on first save.
//
// Example:
//
//	patientID, _ := kernel.NewRecordID(12)
//	ordererID, _ := kernel.NewRecordID(3)
//	o, err := order.NewOrder(patientID, ordererID)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(patientID, ordererID kernel.RecordID) (*Order, error) {
	o := &Order{
		uuid:          kernel.NewUUID(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setPatientID(patientID),
		o.setOrdererID(ordererID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from its persisted state.
// Used by the persistence layer when rehydrating aggregates; all fields come
// from storage, including the already-assigned identifier and lifecycle flags.
func RestoreOrder(
	id kernel.RecordID,
	recordUUID kernel.UUID,
	patientID, ordererID kernel.RecordID,
	voided bool, voidReason string,
	discontinued bool, discontinuedReason string, discontinuedDate *time.Time,
) (*Order, error) {
	o := &Order{
		voided:             voided,
		voidReason:         voidReason,
		discontinued:       discontinued,
		discontinuedReason: discontinuedReason,
		discontinuedDate:   discontinuedDate,
		isConstructed:      true,
	}

	if err := errors.Join(
		id.Validate(),
		recordUUID.Validate(),
		o.setPatientID(patientID),
		o.setOrdererID(ordererID),
	); err != nil {
		return nil, err
	}

	o.id = id
	o.uuid = recordUUID
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their record UUIDs, which identify an order
// even before the store has assigned a storage identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.uuid.IsEqual(other.uuid)
}

// ID returns the storage identifier. The zero RecordID means the order has
// not been saved yet.
func (o *Order) ID() kernel.RecordID {
	return o.id
}

// UUID returns the globally unique record identifier.
func (o *Order) UUID() kernel.UUID {
	return o.uuid
}

// PatientID returns the referenced patient identifier.
func (o *Order) PatientID() kernel.RecordID {
	return o.patientID
}

// OrdererID returns the identifier of the clinician who placed the order.
func (o *Order) OrdererID() kernel.RecordID {
	return o.ordererID
}

// Voided reports whether the order has been voided.
func (o *Order) Voided() bool {
	return o.voided
}

// VoidReason returns the reason recorded when the order was voided,
// or the empty string for an order that is not voided.
func (o *Order) VoidReason() string {
	return o.voidReason
}

// Discontinued reports whether the order has been discontinued.
func (o *Order) Discontinued() bool {
	return o.discontinued
}

// DiscontinuedReason returns the reason recorded when the order was
// discontinued, or the empty string for an order that is not discontinued.
func (o *Order) DiscontinuedReason() string {
	return o.discontinuedReason
}

// DiscontinuedDate returns the date the discontinuation takes effect,
// or nil for an order that is not discontinued.
func (o *Order) DiscontinuedDate() *time.Time {
	return o.discontinuedDate
}

// State derives the display state from the lifecycle flags.
func (o *Order) State() State {
	return DeriveState(o.voided, o.discontinued)
}

// AssignID records the storage identifier the store assigned on first save.
// Returns ErrOrderIDAlreadyAssigned when called on an order that already has
// an identifier; identifiers never change once set.
func (o *Order) AssignID(id kernel.RecordID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if o.id.IsAssigned() {
		return ErrOrderIDAlreadyAssigned
	}

	o.id = id
	return nil
}

// Void marks the order as entered in error, recording the reason.
// A reason is required. Voiding an already voided order updates the reason.
func (o *Order) Void(reason string) error {
	if reason == "" {
		return ErrVoidReasonIsRequired
	}

	o.voided = true
	o.voidReason = reason
	return nil
}

// Unvoid clears the voided flag and the recorded reason.
func (o *Order) Unvoid() {
	o.voided = false
	o.voidReason = ""
}

// Discontinue marks the order as stopped, recording the reason and the date
// the discontinuation takes effect. A reason is required.
func (o *Order) Discontinue(reason string, date time.Time) error {
	if reason == "" {
		return ErrDiscontinueReasonIsRequired
	}

	o.discontinued = true
	o.discontinuedReason = reason
	o.discontinuedDate = &date
	return nil
}

// Undiscontinue clears the discontinued flag, the recorded reason and the date.
func (o *Order) Undiscontinue() {
	o.discontinued = false
	o.discontinuedReason = ""
	o.discontinuedDate = nil
}

func (o *Order) setPatientID(patientID kernel.RecordID) error {
	if err := patientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("patient id", err)
	}
	o.patientID = patientID
	return nil
}

func (o *Order) setOrdererID(ordererID kernel.RecordID) error {
	if err := ordererID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderer id", err)
	}
	o.ordererID = ordererID
	return nil
}
