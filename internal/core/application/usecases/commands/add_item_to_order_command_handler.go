package commands

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/services"
	"commerce/internal/core/ports"
)

// AddItemToOrderCommandHandler adds variants to the session's active order.
// Resolves the active order (creating one on demand), looks the variant up in
// the catalog, mutates the line graph and re-runs the price adjustment
// pipeline before persisting, all within a single transaction.
type AddItemToOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.CatalogRepository
	sessions   ports.SessionStore
	calculator services.OrderCalculator
}

// NewAddItemToOrderCommandHandler creates a handler for adding items to orders.
func NewAddItemToOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.CatalogRepository,
	sessions ports.SessionStore,
	calculator services.OrderCalculator,
) AddItemToOrderCommandHandler {
	return AddItemToOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		sessions:   sessions,
		calculator: calculator,
	}
}

// Handle processes the add-item command for the request's session.
// Returns ErrOrderNotModifiable when the active order already left the
// AddingItems state.
func (h AddItemToOrderCommandHandler) Handle(
	ctx context.Context,
	rctx kernel.RequestContext,
	command AddItemToOrderCommand,
) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	activeOrder, err := resolveActiveOrder(ctx, ordersRepo, h.sessions, rctx, true)
	if err != nil {
		return err
	}

	if activeOrder.State() != order.AddingItems {
		return ErrOrderNotModifiable
	}

	if line := activeOrder.LineByVariant(command.VariantID()); line != nil {
		if err := line.SetQuantity(line.Quantity() + command.Quantity()); err != nil {
			return err
		}
	} else {
		variant, err := h.catalog.GetVariant(ctx, command.VariantID())
		if err != nil {
			return err
		}

		newLine, err := order.NewOrderLine(
			kernel.NewUUID(),
			variant.ID(),
			variant.Price(),
			variant.TaxCategory(),
			command.Quantity(),
		)
		if err != nil {
			return err
		}
		if err := activeOrder.AddLine(newLine); err != nil {
			return err
		}
	}

	if err := h.calculator.ApplyPriceAdjustments(ctx, activeOrder, rctx); err != nil {
		return err
	}

	if err := ordersRepo.Update(ctx, activeOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
