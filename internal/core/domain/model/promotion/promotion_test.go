package promotion_test

import (
	"testing"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/promotion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderWithLine(t *testing.T, unitPrice kernel.Money, quantity int) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "USD", time.Now())
	require.NoError(t, err)
	line, err := order.NewOrderLine(kernel.NewUUID(), kernel.NewUUID(), unitPrice, "standard", quantity)
	require.NoError(t, err)
	require.NoError(t, o.AddLine(line))
	o.RecalculateTotals()
	return o
}

func TestNewPromotion(t *testing.T) {
	t.Run("requires at least one action", func(t *testing.T) {
		_, err := promotion.NewPromotion(kernel.NewUUID(), "NOOP", nil, nil, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "promotion actions")
	})

	t.Run("requires a code", func(t *testing.T) {
		_, err := promotion.NewPromotion(kernel.NewUUID(), "", nil,
			[]promotion.ItemAction{promotion.ItemPercentageDiscount{Percentage: 10}}, nil)

		require.Error(t, err)
	})
}

func TestPromotion_Test(t *testing.T) {
	t.Run("all conditions must match", func(t *testing.T) {
		p, err := promotion.NewPromotion(kernel.NewUUID(), "BIGSPENDER",
			[]promotion.Condition{
				promotion.MinimumSubtotalCondition{Minimum: 5000},
				promotion.CustomerRequiredCondition{},
			},
			[]promotion.ItemAction{promotion.ItemPercentageDiscount{Percentage: 10}}, nil)
		require.NoError(t, err)

		o := newOrderWithLine(t, 10000, 1)
		assert.False(t, p.Test(o), "no customer attached yet")

		customer, err := order.NewCustomer(kernel.NewUUID(), "buyer@example.com", nil)
		require.NoError(t, err)
		o.SetCustomer(customer)
		assert.True(t, p.Test(o))
	})

	t.Run("no conditions always matches", func(t *testing.T) {
		p, err := promotion.NewPromotion(kernel.NewUUID(), "SITEWIDE", nil,
			[]promotion.ItemAction{promotion.ItemPercentageDiscount{Percentage: 10}}, nil)
		require.NoError(t, err)

		assert.True(t, p.Test(newOrderWithLine(t, 100, 1)))
	})

	t.Run("subtotal below threshold fails", func(t *testing.T) {
		p, err := promotion.NewPromotion(kernel.NewUUID(), "BIGSPENDER",
			[]promotion.Condition{promotion.MinimumSubtotalCondition{Minimum: 5000}},
			[]promotion.ItemAction{promotion.ItemPercentageDiscount{Percentage: 10}}, nil)
		require.NoError(t, err)

		assert.False(t, p.Test(newOrderWithLine(t, 100, 1)))
	})
}

func TestPromotion_ApplyToItem(t *testing.T) {
	p, err := promotion.NewPromotion(kernel.NewUUID(), "TENOFF", nil,
		[]promotion.ItemAction{promotion.ItemPercentageDiscount{Percentage: 10}}, nil)
	require.NoError(t, err)

	t.Run("discounts the item's current final price", func(t *testing.T) {
		o := newOrderWithLine(t, 1000, 1)
		line := o.Lines()[0]
		item := line.Items()[0]
		item.AddAdjustment(order.Adjustment{Type: order.AdjustmentTax, Description: "tax 20%", Amount: 200})

		adj := p.ApplyToItem(item, line)

		require.NotNil(t, adj)
		assert.Equal(t, order.AdjustmentPromotion, adj.Type)
		assert.Equal(t, "TENOFF", adj.Description)
		assert.Equal(t, kernel.Money(-120), adj.Amount)
	})

	t.Run("order-only promotion yields no item adjustment", func(t *testing.T) {
		orderOnly, err := promotion.NewPromotion(kernel.NewUUID(), "FIVEOFF", nil, nil,
			[]promotion.OrderAction{promotion.OrderFixedDiscount{Amount: 500}})
		require.NoError(t, err)

		o := newOrderWithLine(t, 1000, 1)
		assert.Nil(t, orderOnly.ApplyToItem(o.Lines()[0].Items()[0], o.Lines()[0]))
	})
}

func TestPromotion_ApplyToOrder(t *testing.T) {
	t.Run("percentage of subtotal", func(t *testing.T) {
		p, err := promotion.NewPromotion(kernel.NewUUID(), "ORDER10", nil, nil,
			[]promotion.OrderAction{promotion.OrderPercentageDiscount{Percentage: 10}})
		require.NoError(t, err)

		adj := p.ApplyToOrder(newOrderWithLine(t, 1200, 1))

		require.NotNil(t, adj)
		assert.Equal(t, kernel.Money(-120), adj.Amount)
	})

	t.Run("fixed discount capped at subtotal", func(t *testing.T) {
		p, err := promotion.NewPromotion(kernel.NewUUID(), "BIGOFF", nil, nil,
			[]promotion.OrderAction{promotion.OrderFixedDiscount{Amount: 99999}})
		require.NoError(t, err)

		adj := p.ApplyToOrder(newOrderWithLine(t, 1000, 1))

		require.NotNil(t, adj)
		assert.Equal(t, kernel.Money(-1000), adj.Amount)
	})

	t.Run("zero amount yields nil", func(t *testing.T) {
		p, err := promotion.NewPromotion(kernel.NewUUID(), "ORDER10", nil, nil,
			[]promotion.OrderAction{promotion.OrderPercentageDiscount{Percentage: 10}})
		require.NoError(t, err)

		o, err := order.NewOrder(kernel.NewUUID(), "USD", time.Now())
		require.NoError(t, err)

		assert.Nil(t, p.ApplyToOrder(o))
	})
}

func TestFromConfig(t *testing.T) {
	t.Run("assembles conditions and actions by code", func(t *testing.T) {
		p, err := promotion.FromConfig(kernel.NewUUID(), "SPRING",
			[]promotion.ConditionConfig{
				{Code: promotion.ConditionMinimumSubtotal, Args: map[string]float64{"minimum": 2000}},
			},
			[]promotion.ActionConfig{
				{Code: promotion.ActionItemPercentageDiscount, Args: map[string]float64{"percentage": 15}},
			})

		require.NoError(t, err)
		assert.Equal(t, "SPRING", p.Code())
		assert.False(t, p.Test(newOrderWithLine(t, 1000, 1)))
		assert.True(t, p.Test(newOrderWithLine(t, 1000, 2)))
	})

	t.Run("unknown condition code fails", func(t *testing.T) {
		_, err := promotion.FromConfig(kernel.NewUUID(), "BROKEN",
			[]promotion.ConditionConfig{{Code: "full_moon"}},
			[]promotion.ActionConfig{{Code: promotion.ActionOrderFixedDiscount, Args: map[string]float64{"amount": 100}}})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "full_moon")
	})

	t.Run("unknown action code fails", func(t *testing.T) {
		_, err := promotion.FromConfig(kernel.NewUUID(), "BROKEN", nil,
			[]promotion.ActionConfig{{Code: "teleport_discount"}})

		require.Error(t, err)
	})
}
