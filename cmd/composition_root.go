package cmd

import (
	"log/slog"

	"booking/internal/adapters/out/memory"
	"booking/internal/adapters/out/notification"
	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/model/cargo"
	"booking/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	store      *memory.Store
	uowFactory *memory.UnitOfWorkFactory
	publisher  cargo.EventPublisher
}

func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	store := memory.NewStore()
	return CompositionRoot{
		config:     config,
		logger:     logger,
		store:      store,
		uowFactory: memory.NewUnitOfWorkFactory(store),
		publisher:  notification.NewLogPublisher(logger),
	}
}

func (c *CompositionRoot) CreateBookCargoCommandHandler() commands.BookCargoCommandHandler {
	var f commands.CargoUoWFactory = FuncCargoUoWFactory(func() commands.CargoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBookCargoCommandHandler(f)
}

func (c *CompositionRoot) CreateSpecifyNewRouteCommandHandler() commands.SpecifyNewRouteCommandHandler {
	var f commands.CargoUoWFactory = FuncCargoUoWFactory(func() commands.CargoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSpecifyNewRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCargoToRouteCommandHandler() commands.AssignCargoToRouteCommandHandler {
	var f commands.CargoUoWFactory = FuncCargoUoWFactory(func() commands.CargoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCargoToRouteCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateRegisterHandlingEventCommandHandler() commands.RegisterHandlingEventCommandHandler {
	var f commands.HandlingUoWFactory = FuncHandlingUoWFactory(func() commands.HandlingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterHandlingEventCommandHandler(f)
}

func (c *CompositionRoot) CreateDeriveDeliveryProgressCommandHandler() commands.DeriveDeliveryProgressCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeriveDeliveryProgressCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetAllCargosQueryHandler() queries.GetAllCargosQueryHandler {
	return queries.NewGetAllCargosQueryHandler(c.store)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewDeliveryProgressJob(
			c.CreateGetAllCargosQueryHandler(),
			c.CreateDeriveDeliveryProgressCommandHandler(),
			c.config.DeliveryProgressSchedule,
			c.logger,
		),
	)
}

type FuncCargoUoWFactory func() commands.CargoUoW

func (f FuncCargoUoWFactory) Create() commands.CargoUoW {
	return f()
}

type FuncHandlingUoWFactory func() commands.HandlingUoW

func (f FuncHandlingUoWFactory) Create() commands.HandlingUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
