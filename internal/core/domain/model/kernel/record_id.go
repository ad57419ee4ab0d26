package kernel

import (
	"fmt"
	"strconv"

	"radiology/internal/pkg/errs"
)

// ErrRecordIDIsNotAssigned indicates that a RecordID was read before the store
// assigned one. The zero value of RecordID is invalid.
var ErrRecordIDIsNotAssigned = errs.NewValueIsRequiredError(
	"RecordID must be created via NewRecordID or assigned by the store",
)

// RecordID is a value object wrapping the integer identifier the store assigns
// to a persisted record. Identifiers are assigned exactly once, on first save,
// and are never reused; the zero value represents a record that has not been
// persisted yet.
//
// RecordID is immutable and safe for concurrent use.
//
// Example usage:
//
//	patientID, err := kernel.NewRecordID(42)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(patientID.String()) // "42"
type RecordID struct {
	value int64
}

// NewRecordID creates a RecordID from a positive integer.
// Returns an error for zero or negative values, which the store never assigns.
func NewRecordID(value int64) (RecordID, error) {
	if value <= 0 {
		return RecordID{}, errs.NewValueIsInvalidErrorWithCause(
			"record id",
			fmt.Errorf("%d is not greater than 0", value),
		)
	}
	return RecordID{value: value}, nil
}

// Validate checks that the RecordID has been assigned.
// Returns ErrRecordIDIsNotAssigned for the zero value.
func (id RecordID) Validate() error {
	if id.value <= 0 {
		return ErrRecordIDIsNotAssigned
	}
	return nil
}

// IsAssigned reports whether the store has assigned this identifier.
func (id RecordID) IsAssigned() bool {
	return id.value > 0
}

// Int64 returns the raw identifier value for persistence and transport.
func (id RecordID) Int64() int64 {
	return id.value
}

// IsEqual compares two record identifiers by value.
func (id RecordID) IsEqual(other RecordID) bool {
	return id.value == other.value
}

// String returns the decimal representation of the identifier.
// This is the form used as the numeric component of study instance UIDs.
func (id RecordID) String() string {
	return strconv.FormatInt(id.value, 10)
}
