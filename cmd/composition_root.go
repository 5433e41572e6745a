package cmd

import (
	"log/slog"

	"negoce/internal/adapters/out/postgres"
	"negoce/internal/core/application/usecases/commands"
	"negoce/internal/core/application/usecases/queries"
	"negoce/internal/core/domain/services"
	"negoce/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires the application graph: the unit of work factory, the
// pricing tariff and the outbound adapters feeding every handler.
type CompositionRoot struct {
	gormDB     *gorm.DB
	appID      string
	uowFactory postgres.GormUnitOfWorkFactory
	tariff     services.Tariff
	publisher  ports.EventPublisher
	statsCache ports.StatsCache
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	tariff services.Tariff,
	publisher ports.EventPublisher,
	statsCache ports.StatsCache,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		appID:      config.AppID,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, config.AppID),
		tariff:     tariff,
		publisher:  publisher,
		statsCache: statsCache,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	var f commands.ClientUoWFactory = FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateClientCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateClientCommandHandler() commands.UpdateClientCommandHandler {
	var f commands.ClientUoWFactory = FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateClientCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.tariff)
}

func (c *CompositionRoot) CreateChangeOrderStepCommandHandler() commands.ChangeOrderStepCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStepCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCloseStaleOrdersCommandHandler() commands.CloseStaleOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCloseStaleOrdersCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreateCotationCommandHandler() commands.CreateCotationCommandHandler {
	var f commands.CotationUoWFactory = FuncCotationUoWFactory(func() commands.CotationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCotationCommandHandler(f, c.tariff)
}

func (c *CompositionRoot) CreateDeleteCotationCommandHandler() commands.DeleteCotationCommandHandler {
	var f commands.CotationUoWFactory = FuncCotationUoWFactory(func() commands.CotationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCotationCommandHandler(f)
}

func (c *CompositionRoot) CreateConvertCotationCommandHandler() commands.ConvertCotationCommandHandler {
	var f commands.ConversionUoWFactory = FuncConversionUoWFactory(func() commands.ConversionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConvertCotationCommandHandler(f, c.tariff)
}

func (c *CompositionRoot) CreateRecordTransactionCommandHandler() commands.RecordTransactionCommandHandler {
	var f commands.FinanceUoWFactory = FuncFinanceUoWFactory(func() commands.FinanceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordTransactionCommandHandler(f, c.statsCache, c.logger)
}

func (c *CompositionRoot) CreateGetClientsQueryHandler() queries.GetClientsQueryHandler {
	return queries.NewGetClientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTrackingQueryHandler() queries.GetOrderTrackingQueryHandler {
	return queries.NewGetOrderTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCotationsQueryHandler() queries.GetCotationsQueryHandler {
	return queries.NewGetCotationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFinanceSummaryQueryHandler() queries.GetFinanceSummaryQueryHandler {
	return queries.NewGetFinanceSummaryQueryHandler(c.gormDB, c.appID)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB, c.statsCache, c.appID, c.logger)
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCotationUoWFactory func() commands.CotationUoW

func (f FuncCotationUoWFactory) Create() commands.CotationUoW {
	return f()
}

type FuncConversionUoWFactory func() commands.ConversionUoW

func (f FuncConversionUoWFactory) Create() commands.ConversionUoW {
	return f()
}

type FuncFinanceUoWFactory func() commands.FinanceUoW

func (f FuncFinanceUoWFactory) Create() commands.FinanceUoW {
	return f()
}
