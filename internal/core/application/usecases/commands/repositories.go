// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, remote synchronization
// where the action requires it, transaction management, and persistence.
//
// The five order lifecycle commands fall into two consistency families:
//
//   - SaveOrder commits locally first and only reports a worklist failure
//     afterwards (commit-then-sync): a record of clinical intent must not be
//     lost because the scheduling system rejected the update.
//   - VoidOrder, UnvoidOrder, DiscontinueOrder and UndiscontinueOrder ask the
//     worklist first and mutate locally only on the matching "ok" status
//     (gate-then-commit): legal record state must not change unless the
//     external system confirmed it can reflect the change.
package commands

import (
	"context"

	"radiology/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StudyRepoFactory provides access to the study repository within a transaction.
	StudyRepoFactory interface {
		StudyRepository() ports.StudyRepository
	}

	// StudyUoW manages transactions for study-only operations.
	// Used by the worklist resync flow, which never touches orders.
	StudyUoW interface {
		TxManager
		StudyRepoFactory
	}

	// StudyUoWFactory creates new study unit of work instances.
	StudyUoWFactory interface {
		Create() StudyUoW
	}

	// UoW manages transactions across the order and study aggregates.
	// All five lifecycle commands read or write both.
	UoW interface {
		TxManager
		OrderRepoFactory
		StudyRepoFactory
	}

	// UoWFactory creates new unit of work instances for lifecycle commands.
	UoWFactory interface {
		Create() UoW
	}
)
