package study

import (
	"fmt"

	"radiology/internal/pkg/errs"
)

// MwlStatus records the outcome of the last modality worklist notification
// for a study. It is written by the worklist gateway as a side effect of a
// notification and read by the lifecycle handlers to decide commit vs. abort.
//
// The status is interpreted relative to the action that was announced:
//
//   - For ActionSave the local record is already committed when the status is
//     inspected, so only MwlSaveErr and MwlUpdateErr count as failures; any
//     other value leaves the optimistic save standing.
//   - For the four gated actions (void, unvoid, discontinue, undiscontinue)
//     the local mutation is only performed when the status equals the action's
//     exact "ok" value; anything else blocks the commit.
type MwlStatus int

const (
	// MwlDefault is the initial status of a study that has never been
	// announced to the worklist.
	MwlDefault MwlStatus = iota

	MwlSaveOK
	MwlSaveErr
	MwlUpdateOK
	MwlUpdateErr
	MwlVoidOK
	MwlVoidErr
	MwlUnvoidOK
	MwlUnvoidErr
	MwlDiscontinueOK
	MwlDiscontinueErr
	MwlUndiscontinueOK
	MwlUndiscontinueErr
)

func getMwlStatusStrings() map[MwlStatus]string {
	return map[MwlStatus]string{
		MwlDefault:          "default",
		MwlSaveOK:           "save_ok",
		MwlSaveErr:          "save_err",
		MwlUpdateOK:         "update_ok",
		MwlUpdateErr:        "update_err",
		MwlVoidOK:           "void_ok",
		MwlVoidErr:          "void_err",
		MwlUnvoidOK:         "unvoid_ok",
		MwlUnvoidErr:        "unvoid_err",
		MwlDiscontinueOK:    "discontinue_ok",
		MwlDiscontinueErr:   "discontinue_err",
		MwlUndiscontinueOK:  "undiscontinue_ok",
		MwlUndiscontinueErr: "undiscontinue_err",
	}
}

// Validate checks if the MwlStatus value belongs to the closed status set.
func (s MwlStatus) Validate() error {
	if _, ok := getMwlStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"mwl status",
			fmt.Errorf("%d is not a valid mwl status", s),
		)
	}
	return nil
}

// String returns the wire name of the status.
// Implements fmt.Stringer and is safe to call on any MwlStatus value.
func (s MwlStatus) String() string {
	if str, ok := getMwlStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// SucceededFor reports whether this status permits the local commit for the
// given action. This is the status-interpretation table the lifecycle
// handlers rely on; see the type documentation for the asymmetry between
// save and the gated actions.
func (s MwlStatus) SucceededFor(action WorklistAction) bool {
	switch action {
	case ActionSave:
		return s != MwlSaveErr && s != MwlUpdateErr
	case ActionVoid:
		return s == MwlVoidOK
	case ActionUnvoid:
		return s == MwlUnvoidOK
	case ActionDiscontinue:
		return s == MwlDiscontinueOK
	case ActionUndiscontinue:
		return s == MwlUndiscontinueOK
	default:
		return false
	}
}

// FailedFor is the negation of SucceededFor for a valid action.
func (s MwlStatus) FailedFor(action WorklistAction) bool {
	return !s.SucceededFor(action)
}

// OKFor returns the "ok" status variant announcing success of the given action.
// The gateway uses OKFor and ErrFor to record a notification outcome without
// switching on the action at every call site.
func (a WorklistAction) OKFor() MwlStatus {
	switch a {
	case ActionSave:
		return MwlSaveOK
	case ActionVoid:
		return MwlVoidOK
	case ActionUnvoid:
		return MwlUnvoidOK
	case ActionDiscontinue:
		return MwlDiscontinueOK
	case ActionUndiscontinue:
		return MwlUndiscontinueOK
	default:
		return MwlDefault
	}
}

// ErrFor returns the "err" status variant for the given action.
func (a WorklistAction) ErrFor() MwlStatus {
	switch a {
	case ActionSave:
		return MwlSaveErr
	case ActionVoid:
		return MwlVoidErr
	case ActionUnvoid:
		return MwlUnvoidErr
	case ActionDiscontinue:
		return MwlDiscontinueErr
	case ActionUndiscontinue:
		return MwlUndiscontinueErr
	default:
		return MwlDefault
	}
}
