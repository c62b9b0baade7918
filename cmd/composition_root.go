package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	httpin "campusrun/internal/adapters/in/http"
	"campusrun/internal/adapters/out/postgres"
	"campusrun/internal/core/application/usecases/commands"
	"campusrun/internal/core/application/usecases/queries"
	"campusrun/internal/core/ports"
)

// CompositionRoot wires infrastructure into use case handlers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(gormDB *gorm.DB, publisher ports.OrderEventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		logger:     logger,
	}
}

// CreateServerHandlers builds the full handler set for the HTTP server.
func (c *CompositionRoot) CreateServerHandlers() httpin.ServerHandlers {
	return httpin.ServerHandlers{
		CreateOrder:   c.CreateCreateOrderCommandHandler(),
		CancelOrder:   c.CreateCancelOrderCommandHandler(),
		RestoreOrder:  c.CreateRestoreOrderCommandHandler(),
		CompleteOrder: c.CreateCompleteOrderCommandHandler(),
		DeleteOrder:   c.CreateDeleteOrderCommandHandler(),
		ReviewOrder:   c.CreateReviewOrderCommandHandler(),

		AddAddress:    c.CreateAddAddressCommandHandler(),
		UpdateAddress: c.CreateUpdateAddressCommandHandler(),
		DeleteAddress: c.CreateDeleteAddressCommandHandler(),

		LikeDeliverer: c.CreateLikeDelivererCommandHandler(),

		ListOrders:          c.CreateListOrdersQueryHandler(),
		GetOrder:            c.CreateGetOrderQueryHandler(),
		GetOrderStatistics:  c.CreateGetOrderStatisticsQueryHandler(),
		ListAddresses:       c.CreateListAddressesQueryHandler(),
		GetDefaultAddresses: c.CreateGetDefaultAddressesQueryHandler(),
		ListDeliverers:      c.CreateListDeliverersQueryHandler(),
		GetDeliverer:        c.CreateGetDelivererQueryHandler(),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) delivererUoWFactory() commands.DelivererUoWFactory {
	return FuncDelivererUoWFactory(func() commands.DelivererUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) addressUoWFactory() commands.AddressUoWFactory {
	return FuncAddressUoWFactory(func() commands.AddressUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateRestoreOrderCommandHandler() commands.RestoreOrderCommandHandler {
	return commands.NewRestoreOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReviewOrderCommandHandler() commands.ReviewOrderCommandHandler {
	return commands.NewReviewOrderCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateAddAddressCommandHandler() commands.AddAddressCommandHandler {
	return commands.NewAddAddressCommandHandler(c.addressUoWFactory())
}

func (c *CompositionRoot) CreateUpdateAddressCommandHandler() commands.UpdateAddressCommandHandler {
	return commands.NewUpdateAddressCommandHandler(c.addressUoWFactory())
}

func (c *CompositionRoot) CreateDeleteAddressCommandHandler() commands.DeleteAddressCommandHandler {
	return commands.NewDeleteAddressCommandHandler(c.addressUoWFactory())
}

func (c *CompositionRoot) CreateLikeDelivererCommandHandler() commands.LikeDelivererCommandHandler {
	return commands.NewLikeDelivererCommandHandler(c.delivererUoWFactory())
}

func (c *CompositionRoot) CreateRecalculateRatingsCommandHandler() commands.RecalculateRatingsCommandHandler {
	return commands.NewRecalculateRatingsCommandHandler(c.delivererUoWFactory())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatisticsQueryHandler() queries.GetOrderStatisticsQueryHandler {
	return queries.NewGetOrderStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAddressesQueryHandler() queries.ListAddressesQueryHandler {
	return queries.NewListAddressesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDefaultAddressesQueryHandler() queries.GetDefaultAddressesQueryHandler {
	return queries.NewGetDefaultAddressesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDeliverersQueryHandler() queries.ListDeliverersQueryHandler {
	return queries.NewListDeliverersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDelivererQueryHandler() queries.GetDelivererQueryHandler {
	return queries.NewGetDelivererQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDelivererUoWFactory func() commands.DelivererUoW

func (f FuncDelivererUoWFactory) Create() commands.DelivererUoW {
	return f()
}

type FuncAddressUoWFactory func() commands.AddressUoW

func (f FuncAddressUoWFactory) Create() commands.AddressUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
