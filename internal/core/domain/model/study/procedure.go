package study

import (
	"fmt"

	"radiology/internal/pkg/errs"
)

// Modality identifies the imaging equipment type a study is scheduled for.
type Modality int

const (
	ModalityUnknown Modality = iota
	ModalityCR               // computed radiography
	ModalityCT               // computed tomography
	ModalityMR               // magnetic resonance
	ModalityNM               // nuclear medicine
	ModalityUS               // ultrasound
	ModalityXA               // x-ray angiography
)

func getModalityStrings() map[Modality]string {
	return map[Modality]string{
		ModalityCR: "CR",
		ModalityCT: "CT",
		ModalityMR: "MR",
		ModalityNM: "NM",
		ModalityUS: "US",
		ModalityXA: "XA",
	}
}

// FullName returns the human-readable modality name for choice lists.
func (m Modality) FullName() string {
	names := map[Modality]string{
		ModalityCR: "Computed Radiography",
		ModalityCT: "Computed Tomography",
		ModalityMR: "Magnetic Resonance",
		ModalityNM: "Nuclear Medicine",
		ModalityUS: "Ultrasound",
		ModalityXA: "X-Ray Angiography",
	}
	if name, ok := names[m]; ok {
		return name
	}
	return "Unknown"
}

// Validate checks if the Modality value is one of the supported modalities.
func (m Modality) Validate() error {
	if _, ok := getModalityStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("modality", fmt.Errorf("%d is not a valid modality", m))
	}
	return nil
}

// String returns the DICOM modality code.
func (m Modality) String() string {
	if str, ok := getModalityStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// ModalityFromString parses a DICOM modality code.
func ModalityFromString(s string) (Modality, error) {
	for m, str := range getModalityStrings() {
		if str == s {
			return m, nil
		}
	}
	return ModalityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"modality", fmt.Errorf("%q is not a valid modality", s))
}

// Priority is the requested procedure priority announced to the worklist.
type Priority int

const (
	PriorityUnknown Priority = iota
	PriorityStat
	PriorityHigh
	PriorityRoutine
	PriorityMedium
	PriorityLow
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityStat:    "STAT",
		PriorityHigh:    "HIGH",
		PriorityRoutine: "ROUTINE",
		PriorityMedium:  "MEDIUM",
		PriorityLow:     "LOW",
	}
}

// Validate checks if the Priority value is one of the supported priorities.
func (p Priority) Validate() error {
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the wire name of the priority.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// PriorityFromString parses a priority wire name.
func PriorityFromString(s string) (Priority, error) {
	for p, str := range getPriorityStrings() {
		if str == s {
			return p, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"priority", fmt.Errorf("%q is not a valid priority", s))
}

// ScheduledStepStatus is the DICOM scheduled procedure step status.
// ScheduledStepNone marks a study whose step has not been scheduled yet.
type ScheduledStepStatus int

const (
	ScheduledStepNone ScheduledStepStatus = iota
	ScheduledStepScheduled
	ScheduledStepArrived
	ScheduledStepReady
	ScheduledStepStarted
	ScheduledStepDeparted
)

func getScheduledStepStatusStrings() map[ScheduledStepStatus]string {
	return map[ScheduledStepStatus]string{
		ScheduledStepNone:      "",
		ScheduledStepScheduled: "SCHEDULED",
		ScheduledStepArrived:   "ARRIVED",
		ScheduledStepReady:     "READY",
		ScheduledStepStarted:   "STARTED",
		ScheduledStepDeparted:  "DEPARTED",
	}
}

// Validate checks if the ScheduledStepStatus value is known.
// ScheduledStepNone is valid: new studies have no scheduled step.
func (s ScheduledStepStatus) Validate() error {
	if _, ok := getScheduledStepStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"scheduled step status",
			fmt.Errorf("%d is not a valid scheduled step status", s),
		)
	}
	return nil
}

// String returns the DICOM status name, empty for ScheduledStepNone.
func (s ScheduledStepStatus) String() string {
	if str, ok := getScheduledStepStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// PerformedStepStatus is the DICOM performed procedure step status.
// PerformedStepNone marks a study that has not been performed.
type PerformedStepStatus int

const (
	PerformedStepNone PerformedStepStatus = iota
	PerformedStepInProgress
	PerformedStepDiscontinued
	PerformedStepCompleted
)

func getPerformedStepStatusStrings() map[PerformedStepStatus]string {
	return map[PerformedStepStatus]string{
		PerformedStepNone:         "",
		PerformedStepInProgress:   "IN_PROGRESS",
		PerformedStepDiscontinued: "DISCONTINUED",
		PerformedStepCompleted:    "COMPLETED",
	}
}

// Validate checks if the PerformedStepStatus value is known.
// PerformedStepNone is valid: new studies have not been performed.
func (s PerformedStepStatus) Validate() error {
	if _, ok := getPerformedStepStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"performed step status",
			fmt.Errorf("%d is not a valid performed step status", s),
		)
	}
	return nil
}

// String returns the DICOM status name, empty for PerformedStepNone.
func (s PerformedStepStatus) String() string {
	if str, ok := getPerformedStepStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
