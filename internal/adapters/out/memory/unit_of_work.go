// Package memory provides an in-process implementation of the Unit of Work pattern.
//
// A Store holds the committed tables. Each UnitOfWork stages changes on a private copy
// of the tables taken at Begin and swaps it into the store on Commit. Only one unit of
// work may be active per store at a time, which serializes changes to aggregates.
//
// Usage:
//
//	store := memory.NewStore()
//	factory := memory.NewUnitOfWorkFactory(store)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.CargoRepository().Add(ctx, c); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package memory

import (
	"context"
	"errors"
	"sync"

	"booking/internal/adapters/out/memory/cargorepo"
	"booking/internal/adapters/out/memory/handlingrepo"
	"booking/internal/core/domain/model/cargo"
	"booking/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit when Begin was not called.
var ErrNoActiveTransaction = errors.New("no active transaction")

// Store keeps the committed state shared by all units of work.
type Store struct {
	mu     sync.RWMutex
	writer chan struct{}
	cargos cargorepo.Table
	events handlingrepo.Table
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		writer: make(chan struct{}, 1),
		cargos: cargorepo.Table{},
		events: handlingrepo.Table{},
	}
}

// GetAll returns every committed cargo ordered by tracking id.
func (s *Store) GetAll(ctx context.Context) ([]*cargo.Cargo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cargorepo.NewRepository(s.cargos).GetAll(ctx)
}

func (s *Store) snapshot() (cargorepo.Table, handlingrepo.Table) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cargos.Clone(), s.events.Clone()
}

func (s *Store) replace(cargos cargorepo.Table, events handlingrepo.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cargos = cargos
	s.events = events
}

// UnitOfWorkFactory creates units of work bound to one store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a new, not yet begun unit of work.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages changes to the store between Begin and Commit.
type UnitOfWork struct {
	store *Store
	tx    *transaction
}

type transaction struct {
	cargos cargorepo.Table
	events handlingrepo.Table
}

// Begin waits until no other unit of work is active on the store and takes a private
// copy of its tables. Calling Begin on an active unit of work does nothing. Returns the
// context error if ctx is done before the store becomes available.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	select {
	case uow.store.writer <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	cargos, events := uow.store.snapshot()
	uow.tx = &transaction{cargos: cargos, events: events}
	return nil
}

// Commit makes the staged changes visible and releases the store.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}

	uow.store.replace(uow.tx.cargos, uow.tx.events)
	uow.release()
	return nil
}

// Rollback discards the staged changes and releases the store. It does nothing when
// no transaction is active, so it can be deferred right after Begin.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	uow.release()
	return nil
}

// CargoRepository returns a cargo repository bound to the active transaction.
// Without one it works on a snapshot of the committed state and its writes are discarded.
func (uow *UnitOfWork) CargoRepository() ports.CargoRepository {
	cargos, _ := uow.tables()
	return cargorepo.NewRepository(cargos)
}

// HandlingEventRepository returns a handling event repository bound to the active transaction.
func (uow *UnitOfWork) HandlingEventRepository() ports.HandlingEventRepository {
	_, events := uow.tables()
	return handlingrepo.NewRepository(events)
}

// HandlingHistoryProvider returns a history provider bound to the active transaction.
func (uow *UnitOfWork) HandlingHistoryProvider() ports.HandlingHistoryProvider {
	_, events := uow.tables()
	return handlingrepo.NewRepository(events)
}

func (uow *UnitOfWork) tables() (cargorepo.Table, handlingrepo.Table) {
	if uow.tx != nil {
		return uow.tx.cargos, uow.tx.events
	}
	return uow.store.snapshot()
}

func (uow *UnitOfWork) release() {
	uow.tx = nil
	<-uow.store.writer
}
