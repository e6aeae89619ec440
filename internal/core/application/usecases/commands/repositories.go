// Package commands contains business operations that modify system state.
// Every command follows the same pattern: validation, transaction management,
// persistence, and publication of cargo events once the transaction is committed.
package commands

import (
	"context"

	"booking/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it uses.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CargoRepoFactory provides access to the cargo repository within a transaction.
	CargoRepoFactory interface {
		CargoRepository() ports.CargoRepository
	}

	// HandlingEventRepoFactory provides access to the handling event repository within a transaction.
	HandlingEventRepoFactory interface {
		HandlingEventRepository() ports.HandlingEventRepository
	}

	// HandlingHistoryProviderFactory provides access to handling histories within a transaction.
	HandlingHistoryProviderFactory interface {
		HandlingHistoryProvider() ports.HandlingHistoryProvider
	}

	// CargoUoW manages transactions for operations that only touch cargo aggregates.
	CargoUoW interface {
		TxManager
		CargoRepoFactory
	}

	// CargoUoWFactory creates new cargo unit of work instances.
	CargoUoWFactory interface {
		Create() CargoUoW
	}

	// HandlingUoW manages transactions for recording handling events.
	HandlingUoW interface {
		TxManager
		CargoRepoFactory
		HandlingEventRepoFactory
	}

	// HandlingUoWFactory creates new handling unit of work instances.
	HandlingUoWFactory interface {
		Create() HandlingUoW
	}

	// DeliveryUoW manages transactions that re-derive delivery progress from the
	// handling history.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   history, err := uow.HandlingHistoryProvider().LookupHandlingHistoryOfCargo(ctx, id)
	//   c, err := uow.CargoRepository().Get(ctx, id)
	//   // ... derive and update
	//
	//   err = uow.Commit(ctx)
	DeliveryUoW interface {
		TxManager
		CargoRepoFactory
		HandlingHistoryProviderFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
