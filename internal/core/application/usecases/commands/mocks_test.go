package commands_test

import (
	"context"
	"testing"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/cargo"
	"booking/internal/core/domain/model/handling"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/location"
	"booking/internal/core/domain/model/voyage"
	"booking/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCargoRepository struct{ mock.Mock }

func (m *MockCargoRepository) Add(ctx context.Context, c *cargo.Cargo) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCargoRepository) Update(ctx context.Context, c *cargo.Cargo) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCargoRepository) Get(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error) {
	args := m.Called(ctx, trackingID)
	c, _ := args.Get(0).(*cargo.Cargo)
	return c, args.Error(1)
}

func (m *MockCargoRepository) GetAll(ctx context.Context) ([]*cargo.Cargo, error) {
	args := m.Called(ctx)
	cargos, _ := args.Get(0).([]*cargo.Cargo)
	return cargos, args.Error(1)
}

type MockHandlingEventRepository struct{ mock.Mock }

func (m *MockHandlingEventRepository) Add(ctx context.Context, e handling.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

type MockHandlingHistoryProvider struct{ mock.Mock }

func (m *MockHandlingHistoryProvider) LookupHandlingHistoryOfCargo(
	ctx context.Context,
	trackingID kernel.TrackingID,
) (*handling.History, error) {
	args := m.Called(ctx, trackingID)
	h, _ := args.Get(0).(*handling.History)
	return h, args.Error(1)
}

// MockUoW implements every unit of work flavor used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CargoRepository() ports.CargoRepository {
	args := m.Called()
	return args.Get(0).(ports.CargoRepository)
}

func (m *MockUoW) HandlingEventRepository() ports.HandlingEventRepository {
	args := m.Called()
	return args.Get(0).(ports.HandlingEventRepository)
}

func (m *MockUoW) HandlingHistoryProvider() ports.HandlingHistoryProvider {
	args := m.Called()
	return args.Get(0).(ports.HandlingHistoryProvider)
}

type MockCargoUoWFactory struct{ mock.Mock }

func (m *MockCargoUoWFactory) Create() commands.CargoUoW {
	args := m.Called()
	return args.Get(0).(commands.CargoUoW)
}

type MockHandlingUoWFactory struct{ mock.Mock }

func (m *MockHandlingUoWFactory) Create() commands.HandlingUoW {
	args := m.Called()
	return args.Get(0).(commands.HandlingUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(event cargo.DomainEvent) {
	m.Called(event)
}

var deadline = time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

func trackingID(t *testing.T) kernel.TrackingID {
	t.Helper()
	id, err := kernel.NewTrackingID("ABC123")
	require.NoError(t, err)
	return id
}

func bookedCargo(t *testing.T) *cargo.Cargo {
	t.Helper()
	spec, err := cargo.NewRouteSpecification(location.Hongkong, location.Helsinki, deadline)
	require.NoError(t, err)
	c, err := cargo.NewCargo(trackingID(t), spec)
	require.NoError(t, err)
	return c
}

func testVoyage(t *testing.T) *voyage.Voyage {
	t.Helper()
	m, err := voyage.NewCarrierMovement(location.Hongkong, location.Helsinki,
		deadline.Add(-10*24*time.Hour), deadline.Add(-2*24*time.Hour))
	require.NoError(t, err)
	s, err := voyage.NewSchedule([]voyage.CarrierMovement{m})
	require.NoError(t, err)
	v, err := voyage.NewVoyage("V100", s)
	require.NoError(t, err)
	return v
}

func routingItinerary(t *testing.T, v *voyage.Voyage) *cargo.Itinerary {
	t.Helper()
	leg, err := cargo.NewLeg(v, location.Hongkong, deadline.Add(-10*24*time.Hour),
		location.Helsinki, deadline.Add(-2*24*time.Hour))
	require.NoError(t, err)
	i, err := cargo.NewItinerary([]cargo.Leg{leg})
	require.NoError(t, err)
	return i
}
