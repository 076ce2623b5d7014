package queries_test

import (
	"context"
	"testing"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"

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

func newTestRequestContext(t *testing.T, session *kernel.Session, userID *kernel.UUID) kernel.RequestContext {
	t.Helper()
	channel, err := kernel.NewChannel("default", "USD", false, "europe")
	require.NoError(t, err)
	return kernel.NewRequestContext(session, channel, userID)
}

func newOrderWithLine(t *testing.T, unitPrice kernel.Money) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "USD", time.Now())
	require.NoError(t, err)
	line, err := order.NewOrderLine(kernel.NewUUID(), kernel.NewUUID(), unitPrice, "standard", 1)
	require.NoError(t, err)
	require.NoError(t, o.AddLine(line))
	o.RecalculateTotals()
	return o
}
