// Package kernel provides core domain primitives shared across the radiology
// domain model. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - RecordID: a value object for store-assigned integer identifiers
//   - UUID: a value object for the globally unique record identifier every
//     clinical record carries alongside its storage identifier
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
