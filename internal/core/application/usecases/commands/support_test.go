package commands_test

import (
	"context"
	"testing"
	"time"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/catalog"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/promotion"
	"commerce/internal/core/domain/model/shipping"
	"commerce/internal/core/domain/model/tax"
	"commerce/internal/core/domain/services"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCode(ctx context.Context, code string) (*order.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActiveForCustomer(ctx context.Context, userID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStateOlderThan(
	ctx context.Context,
	state order.State,
	cutoff time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, state, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct {
	mock.Mock
}

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct {
	mock.Mock
}

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Get(ctx context.Context, sessionID string) (*kernel.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kernel.Session), args.Error(1)
}

func (m *MockSessionStore) SetActiveOrder(ctx context.Context, sessionID string, orderID kernel.UUID) error {
	args := m.Called(ctx, sessionID, orderID)
	return args.Error(0)
}

func (m *MockSessionStore) UnsetActiveOrder(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockOrderEventPublisher struct {
	mock.Mock
}

func (m *MockOrderEventPublisher) PublishOrderStateChanged(ctx context.Context, event ports.OrderStateChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// fakeCatalog is an in-memory catalog used to feed the real price pipeline in
// handler tests. A fixed 20% standard rate applies across a single zone.
type fakeCatalog struct {
	variants   map[kernel.UUID]catalog.Variant
	zone       tax.Zone
	rate       tax.TaxRate
	methods    []shipping.ShippingMethod
	promotions []*promotion.Promotion
}

func newFakeCatalog(t *testing.T) *fakeCatalog {
	t.Helper()
	zone, err := tax.NewZone(kernel.NewUUID(), "europe", []string{"DE", "FR"})
	require.NoError(t, err)
	rate, err := tax.NewTaxRate("standard", zone.ID(), 20)
	require.NoError(t, err)
	return &fakeCatalog{
		variants: map[kernel.UUID]catalog.Variant{},
		zone:     zone,
		rate:     rate,
	}
}

func (f *fakeCatalog) addVariant(t *testing.T, price kernel.Money) catalog.Variant {
	t.Helper()
	variant, err := catalog.NewVariant(kernel.NewUUID(), "SKU-1", "Test Variant", price, "standard")
	require.NoError(t, err)
	f.variants[variant.ID()] = variant
	return variant
}

func (f *fakeCatalog) GetVariant(_ context.Context, id kernel.UUID) (catalog.Variant, error) {
	variant, ok := f.variants[id]
	if !ok {
		return catalog.Variant{}, errs.NewObjectNotFoundError("variant", id)
	}
	return variant, nil
}

func (f *fakeCatalog) FindAllZones(_ context.Context) ([]tax.Zone, error) {
	return []tax.Zone{f.zone}, nil
}

func (f *fakeCatalog) FindTaxRate(_ context.Context, _ tax.Category, _ kernel.UUID) (tax.TaxRate, error) {
	return f.rate, nil
}

func (f *fakeCatalog) FindAllShippingMethods(_ context.Context) ([]shipping.ShippingMethod, error) {
	return f.methods, nil
}

func (f *fakeCatalog) FindActivePromotions(_ context.Context) ([]*promotion.Promotion, error) {
	return f.promotions, nil
}

func newTestCalculator(t *testing.T, cat *fakeCatalog) services.OrderCalculator {
	t.Helper()
	taxes, err := services.NewTaxCalculator(cat)
	require.NoError(t, err)
	shippingCalc, err := services.NewShippingCalculator(cat)
	require.NoError(t, err)
	calculator, err := services.NewOrderCalculator(cat, services.NewDefaultTaxZoneStrategy(), taxes, cat, shippingCalc)
	require.NoError(t, err)
	return calculator
}

func newTestRequestContext(t *testing.T, session *kernel.Session, userID *kernel.UUID) kernel.RequestContext {
	t.Helper()
	channel, err := kernel.NewChannel("default", "USD", false, "europe")
	require.NoError(t, err)
	return kernel.NewRequestContext(session, channel, userID)
}

func newActiveOrder(t *testing.T, unitPrice kernel.Money, quantity int) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "USD", time.Now())
	require.NoError(t, err)
	line, err := order.NewOrderLine(kernel.NewUUID(), kernel.NewUUID(), unitPrice, "standard", quantity)
	require.NoError(t, err)
	require.NoError(t, o.AddLine(line))
	o.RecalculateTotals()
	return o
}
