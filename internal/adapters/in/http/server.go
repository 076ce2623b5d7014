// Package http exposes the order API over echo. Every route resolves the
// caller's session through the request context middleware; the handlers
// translate between transport DTOs and the application's commands and
// queries and never touch the domain directly.
package http

import (
	"net/http"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for the order API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addItemHandler           commands.AddItemToOrderCommandHandler
	adjustQuantityHandler    commands.AdjustItemQuantityCommandHandler
	removeItemHandler        commands.RemoveItemFromOrderCommandHandler
	setShippingMethodHandler commands.SetShippingMethodCommandHandler
	setCustomerHandler       commands.SetCustomerForOrderCommandHandler
	transitionHandler        commands.TransitionOrderToStateCommandHandler
	addPaymentHandler        commands.AddPaymentToOrderCommandHandler

	// Query handlers
	activeOrderHandler       queries.ActiveOrderQueryHandler
	orderByCodeHandler       queries.OrderByCodeQueryHandler
	nextStatesHandler        queries.NextOrderStatesQueryHandler
	shippingMethodsHandler   queries.EligibleShippingMethodsQueryHandler
	listOrdersHandler        queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addItemHandler commands.AddItemToOrderCommandHandler,
	adjustQuantityHandler commands.AdjustItemQuantityCommandHandler,
	removeItemHandler commands.RemoveItemFromOrderCommandHandler,
	setShippingMethodHandler commands.SetShippingMethodCommandHandler,
	setCustomerHandler commands.SetCustomerForOrderCommandHandler,
	transitionHandler commands.TransitionOrderToStateCommandHandler,
	addPaymentHandler commands.AddPaymentToOrderCommandHandler,
	activeOrderHandler queries.ActiveOrderQueryHandler,
	orderByCodeHandler queries.OrderByCodeQueryHandler,
	nextStatesHandler queries.NextOrderStatesQueryHandler,
	shippingMethodsHandler queries.EligibleShippingMethodsQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		addItemHandler:           addItemHandler,
		adjustQuantityHandler:    adjustQuantityHandler,
		removeItemHandler:        removeItemHandler,
		setShippingMethodHandler: setShippingMethodHandler,
		setCustomerHandler:       setCustomerHandler,
		transitionHandler:        transitionHandler,
		addPaymentHandler:        addPaymentHandler,
		activeOrderHandler:       activeOrderHandler,
		orderByCodeHandler:       orderByCodeHandler,
		nextStatesHandler:        nextStatesHandler,
		shippingMethodsHandler:   shippingMethodsHandler,
		listOrdersHandler:        listOrdersHandler,
	}
}

// RegisterRoutes attaches the API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/order", s.GetActiveOrder)
	api.POST("/order/items", s.AddItem)
	api.PUT("/order/items/:lineId", s.AdjustItemQuantity)
	api.DELETE("/order/items/:lineId", s.RemoveItem)
	api.PUT("/order/shipping-method", s.SetShippingMethod)
	api.GET("/order/shipping-methods", s.GetEligibleShippingMethods)
	api.PUT("/order/customer", s.SetCustomer)
	api.GET("/order/next-states", s.GetNextStates)
	api.POST("/order/state", s.TransitionState)
	api.POST("/order/payment", s.AddPayment)
	api.GET("/orders/:code", s.GetOrderByCode)
	api.GET("/orders", s.ListOrders)
}

// GetActiveOrder handles GET /api/v1/order - returns the session's active order.
func (s *Server) GetActiveOrder(ctx echo.Context) error {
	o, err := s.activeOrderHandler.Handle(
		ctx.Request().Context(), requestContext(ctx), queries.NewActiveOrderQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderToResponse(o))
}

// AddItem handles POST /api/v1/order/items - adds a variant to the active
// order, creating the order if the session has none.
func (s *Server) AddItem(ctx echo.Context) error {
	var req AddItemRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	variantID, err := kernel.UUIDFromString(req.VariantID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAddItemToOrderCommand(variantID, req.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	rctx := requestContext(ctx)
	if err := s.addItemHandler.Handle(ctx.Request().Context(), rctx, cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithActiveOrder(ctx, rctx)
}

// AdjustItemQuantity handles PUT /api/v1/order/items/{lineId}.
func (s *Server) AdjustItemQuantity(ctx echo.Context) error {
	lineID, err := kernel.UUIDFromString(ctx.Param("lineId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req AdjustItemRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewAdjustItemQuantityCommand(lineID, req.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	rctx := requestContext(ctx)
	if err := s.adjustQuantityHandler.Handle(ctx.Request().Context(), rctx, cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithActiveOrder(ctx, rctx)
}

// RemoveItem handles DELETE /api/v1/order/items/{lineId}.
func (s *Server) RemoveItem(ctx echo.Context) error {
	lineID, err := kernel.UUIDFromString(ctx.Param("lineId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRemoveItemFromOrderCommand(lineID)
	if err != nil {
		return writeError(ctx, err)
	}

	rctx := requestContext(ctx)
	if err := s.removeItemHandler.Handle(ctx.Request().Context(), rctx, cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithActiveOrder(ctx, rctx)
}

// SetShippingMethod handles PUT /api/v1/order/shipping-method.
func (s *Server) SetShippingMethod(ctx echo.Context) error {
	var req SetShippingMethodRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	methodID, err := kernel.UUIDFromString(req.MethodID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetShippingMethodCommand(methodID)
	if err != nil {
		return writeError(ctx, err)
	}

	rctx := requestContext(ctx)
	if err := s.setShippingMethodHandler.Handle(ctx.Request().Context(), rctx, cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithActiveOrder(ctx, rctx)
}

// GetEligibleShippingMethods handles GET /api/v1/order/shipping-methods.
func (s *Server) GetEligibleShippingMethods(ctx echo.Context) error {
	quotes, err := s.shippingMethodsHandler.Handle(
		ctx.Request().Context(), requestContext(ctx), queries.NewEligibleShippingMethodsQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, quotesToResponse(quotes))
}

// SetCustomer handles PUT /api/v1/order/customer.
func (s *Server) SetCustomer(ctx echo.Context) error {
	var req SetCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	var userID *kernel.UUID
	if req.UserID != nil {
		parsed, err := kernel.UUIDFromString(*req.UserID)
		if err != nil {
			return writeError(ctx, err)
		}
		userID = &parsed
	}

	cmd, err := commands.NewSetCustomerForOrderCommand(req.EmailAddress, userID)
	if err != nil {
		return writeError(ctx, err)
	}

	rctx := requestContext(ctx)
	if err := s.setCustomerHandler.Handle(ctx.Request().Context(), rctx, cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithActiveOrder(ctx, rctx)
}

// GetNextStates handles GET /api/v1/order/next-states.
func (s *Server) GetNextStates(ctx echo.Context) error {
	states, err := s.nextStatesHandler.Handle(
		ctx.Request().Context(), requestContext(ctx), queries.NewNextOrderStatesQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, states)
}

// TransitionState handles POST /api/v1/order/state.
func (s *Server) TransitionState(ctx echo.Context) error {
	var req TransitionRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	target, err := order.StateFromString(req.State)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderToStateCommand(target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.transitionHandler.Handle(ctx.Request().Context(), requestContext(ctx), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddPayment handles POST /api/v1/order/payment.
func (s *Server) AddPayment(ctx echo.Context) error {
	var req AddPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewAddPaymentToOrderCommand(req.Method, kernel.Money(req.Amount))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.addPaymentHandler.Handle(ctx.Request().Context(), requestContext(ctx), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderByCode handles GET /api/v1/orders/{code}. Unknown codes and codes
// the caller may not see produce the same response.
func (s *Server) GetOrderByCode(ctx echo.Context) error {
	query, err := queries.NewOrderByCodeQuery(ctx.Param("code"))
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.orderByCodeHandler.Handle(ctx.Request().Context(), requestContext(ctx), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(o))
}

// ListOrders handles GET /api/v1/orders with an optional state filter.
func (s *Server) ListOrders(ctx echo.Context) error {
	query := queries.NewListAllOrdersQuery()
	if rawState := ctx.QueryParam("state"); rawState != "" {
		state, err := order.StateFromString(rawState)
		if err != nil {
			return writeError(ctx, err)
		}
		query, err = queries.NewListOrdersQuery(state)
		if err != nil {
			return writeError(ctx, err)
		}
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// respondWithActiveOrder re-reads the active order after a successful command
// so mutations answer with the repriced order.
func (s *Server) respondWithActiveOrder(ctx echo.Context, rctx kernel.RequestContext) error {
	o, err := s.activeOrderHandler.Handle(
		ctx.Request().Context(), rctx, queries.NewActiveOrderQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderToResponse(o))
}
