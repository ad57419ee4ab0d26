// Package services provides domain services that implement business logic
// spanning multiple domain entities in the radiology system.
//
// The package includes:
//   - StudyUIDGenerator: a domain service that derives the DICOM study
//     instance UID from a study's storage identifier
//
// Domain services coordinate between aggregates, implementing business logic
// that doesn't naturally belong to a single aggregate root.
package services
