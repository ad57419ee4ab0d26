// Package order contains the Order aggregate, the clinical instruction record
// at the center of the radiology workflow. An order is created once, receives
// its storage identifier from the store on first save, and afterwards
// transitions among active, voided and discontinued states. Orders are never
// physically deleted.
//
// Voided and discontinued are independent flags, mirroring the clinical record
// model: voiding marks an order as entered in error, discontinuing marks it as
// stopped after the fact. The aggregate does not force the two into a single
// exclusive state.
package order
