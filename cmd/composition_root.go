package cmd

import (
	"log/slog"

	"lastmile/internal/adapters/out/mapbox"
	"lastmile/internal/adapters/out/postgres"
	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/application/usecases/queries"
	"lastmile/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	geocoder   ports.Geocoder
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		geocoder:   mapbox.NewGeocoder(configs.MapboxAccessToken),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateIngestOrderCommandHandler() commands.IngestOrderCommandHandler {
	var f commands.IngestUoWFactory = FuncIngestUoWFactory(func() commands.IngestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewIngestOrderCommandHandler(f, c.CreateAssignCourierCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.AssignUoWFactory = FuncAssignUoWFactory(func() commands.AssignUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateGetDeliveryRatesQueryHandler() queries.GetDeliveryRatesQueryHandler {
	var f queries.RatesUoWFactory = FuncRatesUoWFactory(func() queries.RatesUoW {
		return c.uowFactory.Create()
	})
	return queries.NewGetDeliveryRatesQueryHandler(f, c.geocoder, c.logger)
}

func (c *CompositionRoot) CreateGetUnassignedOrdersQueryHandler() queries.GetUnassignedOrdersQueryHandler {
	return queries.NewGetUnassignedOrdersQueryHandler(c.gormDB)
}

type FuncIngestUoWFactory func() commands.IngestUoW

func (f FuncIngestUoWFactory) Create() commands.IngestUoW {
	return f()
}

type FuncAssignUoWFactory func() commands.AssignUoW

func (f FuncAssignUoWFactory) Create() commands.AssignUoW {
	return f()
}

type FuncRatesUoWFactory func() queries.RatesUoW

func (f FuncRatesUoWFactory) Create() queries.RatesUoW {
	return f()
}
