package study

import (
	"fmt"

	"radiology/internal/pkg/errs"
)

// WorklistAction identifies which order lifecycle event a worklist
// notification announces. The gateway sends exactly one action per call and
// the resulting MwlStatus is interpreted relative to that action.
type WorklistAction int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown WorklistAction = iota

	// ActionSave announces that an order and its study were created or updated.
	ActionSave

	// ActionVoid announces that an order is about to be voided.
	ActionVoid

	// ActionUnvoid announces that a voided order is about to be restored.
	ActionUnvoid

	// ActionDiscontinue announces that an order is about to be discontinued.
	ActionDiscontinue

	// ActionUndiscontinue announces that a discontinued order is about to be resumed.
	ActionUndiscontinue
)

func getWorklistActionStrings() map[WorklistAction]string {
	return map[WorklistAction]string{
		ActionUnknown:       "unknown",
		ActionSave:          "save_order",
		ActionVoid:          "void_order",
		ActionUnvoid:        "unvoid_order",
		ActionDiscontinue:   "discontinue_order",
		ActionUndiscontinue: "undiscontinue_order",
	}
}

// Validate checks if the WorklistAction value is one of the five known actions.
func (a WorklistAction) Validate() error {
	if a <= ActionUnknown || a > ActionUndiscontinue {
		return errs.NewValueIsInvalidErrorWithCause(
			"worklist action",
			fmt.Errorf("%d is not a valid worklist action", a),
		)
	}
	return nil
}

// String returns the wire name of the action.
// Implements fmt.Stringer and is safe to call on any WorklistAction value.
func (a WorklistAction) String() string {
	if str, ok := getWorklistActionStrings()[a]; ok {
		return str
	}
	return "unknown"
}
