package commands_test

import (
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/promotion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetCustomerForOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		userID := kernel.NewUUID()

		cmd, err := commands.NewSetCustomerForOrderCommand("buyer@example.com", &userID)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, "buyer@example.com", cmd.EmailAddress())
		assert.Equal(t, &userID, cmd.UserID())
	})

	t.Run("should reject empty email", func(t *testing.T) {
		_, err := commands.NewSetCustomerForOrderCommand("  ", nil)

		assert.Error(t, err)
	})

	t.Run("should reject malformed email", func(t *testing.T) {
		_, err := commands.NewSetCustomerForOrderCommand("not-an-email", nil)

		assert.Error(t, err)
	})

	t.Run("should fail validation for zero value command", func(t *testing.T) {
		var cmd commands.SetCustomerForOrderCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrSetCustomerForOrderCommandIsNotConstructed)
	})
}

func TestSetCustomerForOrderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cat := newFakeCatalog(t)

	// A promotion gated on having a customer starts matching once one is attached.
	promo, err := promotion.NewPromotion(
		kernel.NewUUID(),
		"MEMBERS10",
		[]promotion.Condition{promotion.CustomerRequiredCondition{}},
		[]promotion.ItemAction{promotion.ItemPercentageDiscount{Percentage: 10}},
		nil,
	)
	require.NoError(t, err)
	cat.promotions = []*promotion.Promotion{promo}

	existing := newActiveOrder(t, 1000, 1)
	orderID := existing.ID()
	session := kernel.RestoreSession("sess-1", &orderID)
	rctx := newTestRequestContext(t, session, nil)

	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderRepository").Return(mockRepo).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockRepo.On("Get", ctx, orderID).Return(existing, nil).Once()
	mockRepo.On("Update", ctx, existing).Return(nil).Once()

	handler := commands.NewSetCustomerForOrderCommandHandler(mockFactory, new(MockSessionStore), newTestCalculator(t, cat))
	cmd, err := commands.NewSetCustomerForOrderCommand("buyer@example.com", nil)
	require.NoError(t, err)

	// Act
	err = handler.Handle(ctx, rctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, existing.Customer())
	assert.Equal(t, "buyer@example.com", existing.Customer().EmailAddress())
	// 1000 net, 20% tax, 10% member discount on 1200, retaxed: 880 + 176
	assert.Equal(t, kernel.Money(1056), existing.SubTotal())
	mockRepo.AssertExpectations(t)
}
