package services

import (
	"strings"

	"radiology/internal/core/domain/model/kernel"
	"radiology/internal/pkg/errs"
)

// DefaultStudyUIDPrefix is the organization root used when no prefix is
// configured. The numeric component appended to it is the study's own storage
// identifier, which is assigned once and never reused, so the resulting UID
// is globally unique.
const DefaultStudyUIDPrefix = "1.2.826.0.1.3680043.8.2186."

// StudyUIDGenerator is a domain service that derives the DICOM study instance
// UID for a study: a process-wide constant prefix concatenated with the
// study's decimal storage identifier.
//
// Business rules:
//   - The prefix must be a dot-terminated OID fragment (digits and dots)
//   - The storage identifier must already be assigned
//   - The same study always yields the same UID
//
// Example usage:
//
//	gen, _ := services.NewStudyUIDGenerator(services.DefaultStudyUIDPrefix)
//	uid, err := gen.Generate(study.ID())
//	// uid == "1.2.826.0.1.3680043.8.2186.42" for study id 42
type StudyUIDGenerator struct {
	prefix string
}

// NewStudyUIDGenerator creates a generator for the given UID prefix.
// Returns an error when the prefix is empty, is not dot-terminated, or
// contains characters other than digits and dots.
func NewStudyUIDGenerator(prefix string) (StudyUIDGenerator, error) {
	if prefix == "" {
		return StudyUIDGenerator{}, errs.NewValueIsRequiredError("study uid prefix")
	}
	if !strings.HasSuffix(prefix, ".") {
		return StudyUIDGenerator{}, errs.NewValueIsInvalidError("study uid prefix must end with a dot")
	}
	for _, r := range prefix {
		if r != '.' && (r < '0' || r > '9') {
			return StudyUIDGenerator{}, errs.NewValueIsInvalidError("study uid prefix must contain only digits and dots")
		}
	}

	return StudyUIDGenerator{prefix: prefix}, nil
}

// Generate returns the study instance UID for the given storage identifier.
// The identifier must already be assigned by the store.
func (g StudyUIDGenerator) Generate(studyID kernel.RecordID) (string, error) {
	if err := studyID.Validate(); err != nil {
		return "", err
	}

	return g.prefix + studyID.String(), nil
}
