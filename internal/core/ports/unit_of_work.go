package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Changes made through its
// repositories become visible to others only after Commit.
type UnitOfWork interface {
	// Begin starts the transaction.
	Begin(ctx context.Context) error

	// Commit applies staged changes. Returns an error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback discards staged changes. It is safe to call after Commit.
	Rollback(ctx context.Context) error

	// CargoRepository returns a repository bound to the current transaction.
	CargoRepository() CargoRepository

	// HandlingEventRepository returns a repository bound to the current transaction.
	HandlingEventRepository() HandlingEventRepository

	// HandlingHistoryProvider returns a history provider bound to the current transaction.
	HandlingHistoryProvider() HandlingHistoryProvider
}
