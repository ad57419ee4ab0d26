package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// Repositories obtained before Begin operate directly on the database; after
// Begin they are bound to the open transaction. Lifecycle handlers rely on
// both modes: the gate-then-commit actions read outside a transaction and
// only open one for the local mutation they are about to commit.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction if one is active.
	OrderRepository() OrderRepository

	// StudyRepository returns a StudyRepository bound to the current
	// transaction if one is active.
	StudyRepository() StudyRepository
}
