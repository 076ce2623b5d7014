package cmd

import (
	"commerce/internal/adapters/out/postgres"
	"commerce/internal/adapters/out/postgres/catalogrepo"
	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/services"
	"commerce/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, domain services and use case handlers.
// Handlers are created per request through the Create* factory methods so
// each command runs on its own unit of work.
type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    ports.CatalogRepository
	sessions   ports.SessionStore
	publisher  ports.OrderEventPublisher
	calculator services.OrderCalculator
	shipping   services.ShippingCalculator
	channel    kernel.Channel
}

// NewCompositionRoot builds the object graph from the outer infrastructure.
// The session store and event publisher are constructed by the caller since
// they own connections with their own lifecycles.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	sessions ports.SessionStore,
	publisher ports.OrderEventPublisher,
) (CompositionRoot, error) {
	catalog := catalogrepo.NewGormCatalogRepository(gormDB)

	taxes, err := services.NewTaxCalculator(catalog)
	if err != nil {
		return CompositionRoot{}, err
	}

	shippingCalc, err := services.NewShippingCalculator(catalog)
	if err != nil {
		return CompositionRoot{}, err
	}

	calculator, err := services.NewOrderCalculator(
		catalog,
		services.NewDefaultTaxZoneStrategy(),
		taxes,
		catalog,
		shippingCalc,
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	channel, err := kernel.NewChannel(
		configs.ChannelCode,
		configs.ChannelCurrencyCode,
		configs.ChannelPricesIncludeTax,
		configs.ChannelDefaultTaxZone,
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalog,
		sessions:   sessions,
		publisher:  publisher,
		calculator: calculator,
		shipping:   shippingCalc,
		channel:    channel,
	}, nil
}

// Channel returns the sales channel this instance serves.
func (c *CompositionRoot) Channel() kernel.Channel {
	return c.channel
}

// SessionStore returns the shared session store.
func (c *CompositionRoot) SessionStore() ports.SessionStore {
	return c.sessions
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// orderRepository returns a repository outside any transaction, for queries.
func (c *CompositionRoot) orderRepository() ports.OrderRepository {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) CreateAddItemToOrderCommandHandler() commands.AddItemToOrderCommandHandler {
	return commands.NewAddItemToOrderCommandHandler(c.orderUoWFactory(), c.catalog, c.sessions, c.calculator)
}

func (c *CompositionRoot) CreateAdjustItemQuantityCommandHandler() commands.AdjustItemQuantityCommandHandler {
	return commands.NewAdjustItemQuantityCommandHandler(c.orderUoWFactory(), c.sessions, c.calculator)
}

func (c *CompositionRoot) CreateRemoveItemFromOrderCommandHandler() commands.RemoveItemFromOrderCommandHandler {
	return commands.NewRemoveItemFromOrderCommandHandler(c.orderUoWFactory(), c.sessions, c.calculator)
}

func (c *CompositionRoot) CreateSetShippingMethodCommandHandler() commands.SetShippingMethodCommandHandler {
	return commands.NewSetShippingMethodCommandHandler(c.orderUoWFactory(), c.sessions, c.calculator, c.shipping)
}

func (c *CompositionRoot) CreateSetCustomerForOrderCommandHandler() commands.SetCustomerForOrderCommandHandler {
	return commands.NewSetCustomerForOrderCommandHandler(c.orderUoWFactory(), c.sessions, c.calculator)
}

func (c *CompositionRoot) CreateTransitionOrderToStateCommandHandler() commands.TransitionOrderToStateCommandHandler {
	return commands.NewTransitionOrderToStateCommandHandler(c.orderUoWFactory(), c.sessions, c.publisher)
}

func (c *CompositionRoot) CreateAddPaymentToOrderCommandHandler() commands.AddPaymentToOrderCommandHandler {
	return commands.NewAddPaymentToOrderCommandHandler(c.orderUoWFactory(), c.sessions, c.publisher)
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	return commands.NewCancelStaleOrdersCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateActiveOrderQueryHandler() queries.ActiveOrderQueryHandler {
	return queries.NewActiveOrderQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateOrderByCodeQueryHandler() queries.OrderByCodeQueryHandler {
	return queries.NewOrderByCodeQueryHandler(c.orderRepository(), c.configs.AnonymousAccessWindow)
}

func (c *CompositionRoot) CreateNextOrderStatesQueryHandler() queries.NextOrderStatesQueryHandler {
	return queries.NewNextOrderStatesQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateEligibleShippingMethodsQueryHandler() queries.EligibleShippingMethodsQueryHandler {
	return queries.NewEligibleShippingMethodsQueryHandler(c.orderRepository(), c.shipping)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
