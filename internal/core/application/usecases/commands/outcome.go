package commands

// Outcome is the user-facing result code of a lifecycle command. Every
// handler returns exactly one outcome; the web layer maps each code onto a
// navigation decision and a message key without further logic.
//
// An outcome with Success() == false means the request did not run to the end
// of its action sequence (missing authentication, locked study, or an
// internal error). A worklist-failed outcome is still a successful execution:
// the handler completed its sequence and the code carries the consistency
// result to the caller.
type Outcome int

const (
	// OutcomeUnknown represents an invalid or undefined outcome.
	OutcomeUnknown Outcome = iota

	// OutcomeNotAuthenticated is returned when no authenticated caller is
	// attached to the request. No side effects have occurred.
	OutcomeNotAuthenticated

	// OutcomeStudyPerformed is returned when the targeted study has already
	// been performed and is locked against edits. No side effects.
	OutcomeStudyPerformed

	// OutcomeInternalError is returned when a store or gateway call failed.
	// The accompanying error carries the cause. Steps already completed are
	// not rolled back.
	OutcomeInternalError

	// OutcomeSaved: order and study persisted, worklist synchronized.
	OutcomeSaved

	// OutcomeSavedWorklistFailed: order and study persisted, but the worklist
	// rejected the save or update. The local write stands.
	OutcomeSavedWorklistFailed

	OutcomeVoided
	OutcomeVoidWorklistFailed
	OutcomeUnvoided
	OutcomeUnvoidWorklistFailed
	OutcomeDiscontinued
	OutcomeDiscontinueWorklistFailed
	OutcomeUndiscontinued
	OutcomeUndiscontinueWorklistFailed
)

func getOutcomeStrings() map[Outcome]string {
	return map[Outcome]string{
		OutcomeUnknown:                     "unknown",
		OutcomeNotAuthenticated:            "not_authenticated",
		OutcomeStudyPerformed:              "study_performed",
		OutcomeInternalError:               "internal_error",
		OutcomeSaved:                       "saved_ok",
		OutcomeSavedWorklistFailed:         "saved_worklist_failed",
		OutcomeVoided:                      "void_ok",
		OutcomeVoidWorklistFailed:          "void_worklist_failed",
		OutcomeUnvoided:                    "unvoid_ok",
		OutcomeUnvoidWorklistFailed:        "unvoid_worklist_failed",
		OutcomeDiscontinued:                "discontinue_ok",
		OutcomeDiscontinueWorklistFailed:   "discontinue_worklist_failed",
		OutcomeUndiscontinued:              "undiscontinue_ok",
		OutcomeUndiscontinueWorklistFailed: "undiscontinue_worklist_failed",
	}
}

// String returns the outcome code used as the message key by the web layer.
// Implements fmt.Stringer and is safe to call on any Outcome value.
func (o Outcome) String() string {
	if str, ok := getOutcomeStrings()[o]; ok {
		return str
	}
	return "unknown"
}

// Success reports whether the command executed its action sequence to the
// end. Worklist-failed outcomes count as success: the decision was made and
// recorded, it just did not go the caller's way.
func (o Outcome) Success() bool {
	switch o {
	case OutcomeUnknown, OutcomeNotAuthenticated, OutcomeStudyPerformed, OutcomeInternalError:
		return false
	default:
		return true
	}
}

// Redirects reports whether the web layer should navigate away from the form.
// Only the fully successful "_ok" outcomes redirect; everything else
// re-renders the form with the outcome code as the message key.
func (o Outcome) Redirects() bool {
	switch o {
	case OutcomeSaved, OutcomeVoided, OutcomeUnvoided, OutcomeDiscontinued, OutcomeUndiscontinued:
		return true
	default:
		return false
	}
}
