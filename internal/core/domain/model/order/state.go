package order

import (
	"fmt"

	"radiology/internal/pkg/errs"
)

// State is the display state derived from an order's lifecycle flags.
// It is a read model convenience, not stored: the voided and discontinued
// flags remain the source of truth and are set independently.
//
//	active ⇄ voided
//	active ⇄ discontinued
//
// When both flags are set, Voided takes precedence for display.
type State int

const (
	// Unknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	Unknown State = iota

	// Active is an order that is neither voided nor discontinued.
	Active

	// Voided is an order marked as entered in error.
	Voided

	// Discontinued is an order stopped after being placed.
	Discontinued
)

func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:      "Unknown",
		Active:       "Active",
		Voided:       "Voided",
		Discontinued: "Discontinued",
	}
}

// DeriveState maps the independent lifecycle flags onto a single display state.
func DeriveState(voided, discontinued bool) State {
	switch {
	case voided:
		return Voided
	case discontinued:
		return Discontinued
	default:
		return Active
	}
}

// Validate checks if the State value is valid.
// Valid states are: Active, Voided, Discontinued.
func (s State) Validate() error {
	if s != Active && s != Voided && s != Discontinued {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// String returns the human-readable name of the state.
// Implements fmt.Stringer and is safe to call on any State value.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
