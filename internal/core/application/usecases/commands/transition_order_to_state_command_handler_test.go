package commands_test

import (
	"errors"
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderToStateCommand(t *testing.T) {
	t.Run("should reject unknown state", func(t *testing.T) {
		_, err := commands.NewTransitionOrderToStateCommand(order.State(42))

		assert.Error(t, err)
	})

	t.Run("should fail validation for zero value command", func(t *testing.T) {
		var cmd commands.TransitionOrderToStateCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrTransitionOrderToStateCommandIsNotConstructed)
	})
}

func TestTransitionOrderToStateCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	existing := newActiveOrder(t, 1000, 1)
	orderID := existing.ID()
	session := kernel.RestoreSession("sess-1", &orderID)
	rctx := newTestRequestContext(t, session, nil)

	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)
	mockPublisher := new(MockOrderEventPublisher)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderRepository").Return(mockRepo).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockRepo.On("Get", ctx, orderID).Return(existing, nil).Once()
	mockRepo.On("Update", ctx, existing).Return(nil).Once()
	mockPublisher.On("PublishOrderStateChanged", ctx, mock.Anything).Return(nil).Once()

	handler := commands.NewTransitionOrderToStateCommandHandler(mockFactory, new(MockSessionStore), mockPublisher)
	cmd, err := commands.NewTransitionOrderToStateCommand(order.ArrangingPayment)
	require.NoError(t, err)

	// Act
	err = handler.Handle(ctx, rctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.ArrangingPayment, existing.State())
	mockPublisher.AssertExpectations(t)
}

func TestTransitionOrderToStateCommandHandler_Handle_IllegalTransition(t *testing.T) {
	// Arrange
	ctx := t.Context()
	existing := newActiveOrder(t, 1000, 1)
	orderID := existing.ID()
	session := kernel.RestoreSession("sess-1", &orderID)
	rctx := newTestRequestContext(t, session, nil)

	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)
	mockPublisher := new(MockOrderEventPublisher)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderRepository").Return(mockRepo).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockRepo.On("Get", ctx, orderID).Return(existing, nil).Once()

	handler := commands.NewTransitionOrderToStateCommandHandler(mockFactory, new(MockSessionStore), mockPublisher)
	cmd, err := commands.NewTransitionOrderToStateCommand(order.PaymentSettled)
	require.NoError(t, err)

	// Act
	err = handler.Handle(ctx, rctx, cmd)

	// Assert
	assert.ErrorIs(t, err, errs.ErrIllegalOrderTransition)
	assert.Equal(t, order.AddingItems, existing.State())
	mockPublisher.AssertNotCalled(t, "PublishOrderStateChanged", mock.Anything, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransitionOrderToStateCommandHandler_Handle_UpdateFails_KeepsSessionBinding(t *testing.T) {
	// Arrange
	ctx := t.Context()
	existing := newActiveOrder(t, 1000, 1)
	orderID := existing.ID()
	session := kernel.RestoreSession("sess-1", &orderID)
	rctx := newTestRequestContext(t, session, nil)

	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)
	mockSessions := new(MockSessionStore)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderRepository").Return(mockRepo).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockRepo.On("Get", ctx, orderID).Return(existing, nil).Once()
	mockRepo.On("Update", ctx, existing).Return(errors.New("connection reset")).Once()

	handler := commands.NewTransitionOrderToStateCommandHandler(mockFactory, mockSessions, new(MockOrderEventPublisher))
	cmd, err := commands.NewTransitionOrderToStateCommand(order.Cancelled)
	require.NoError(t, err)

	// Act
	err = handler.Handle(ctx, rctx, cmd)

	// Assert
	require.Error(t, err)
	// The cancellation was rolled back, so the session must stay bound.
	require.NotNil(t, session.ActiveOrderID())
	assert.True(t, orderID.IsEqual(*session.ActiveOrderID()))
	mockSessions.AssertNotCalled(t, "UnsetActiveOrder", mock.Anything, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransitionOrderToStateCommandHandler_Handle_CancelReleasesSession(t *testing.T) {
	// Arrange
	ctx := t.Context()
	existing := newActiveOrder(t, 1000, 1)
	orderID := existing.ID()
	session := kernel.RestoreSession("sess-1", &orderID)
	rctx := newTestRequestContext(t, session, nil)

	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)
	mockPublisher := new(MockOrderEventPublisher)
	mockSessions := new(MockSessionStore)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderRepository").Return(mockRepo).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockRepo.On("Get", ctx, orderID).Return(existing, nil).Once()
	mockRepo.On("Update", ctx, existing).Return(nil).Once()
	mockSessions.On("UnsetActiveOrder", ctx, "sess-1").Return(nil).Once()
	mockPublisher.On("PublishOrderStateChanged", ctx, mock.Anything).Return(nil).Once()

	handler := commands.NewTransitionOrderToStateCommandHandler(mockFactory, mockSessions, mockPublisher)
	cmd, err := commands.NewTransitionOrderToStateCommand(order.Cancelled)
	require.NoError(t, err)

	// Act
	err = handler.Handle(ctx, rctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, existing.State())
	assert.Nil(t, session.ActiveOrderID())
	mockSessions.AssertExpectations(t)
}
