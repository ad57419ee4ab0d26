package ports

import (
	"context"

	"radiology/internal/core/domain/model/kernel"
	"radiology/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never physically deleted; lifecycle transitions (void, unvoid,
// discontinue, undiscontinue) are persisted through Update.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its storage identifier.
	// The identifier is written back onto the aggregate via AssignID.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its storage identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.RecordID) (*order.Order, error)
}
