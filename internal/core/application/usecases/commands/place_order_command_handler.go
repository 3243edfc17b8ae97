package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for placing an order.
// Resolves item prices against the catalog, reserves a courier and persists
// the new order in one transaction, then notifies the customer of the
// handoff verification code.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, catalog, customers, notifier, logger)
//	cmd, _ := NewPlaceOrderCommand(orderID, customerID, lines, delivery, payment, nil)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Courier is reserved, order is pending and the code is on its way
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	catalog    ports.FoodCatalog
	customers  ports.CustomerDirectory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory for cross-aggregate persistence, the food catalog
// for price resolution, the customer directory and a notifier for the
// verification code message.
func NewPlaceOrderCommandHandler(
	uowFactory UoWFactory,
	catalog ports.FoodCatalog,
	customers ports.CustomerDirectory,
	notifier ports.Notifier,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		customers:  customers,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the order placement command.
//
// The courier reservation and the order insert share one transaction: if
// the order cannot be persisted, the rollback returns the courier to the
// pool, so no courier is ever left reserved for a failed placement. The
// notification is sent only after the transaction commits; a notification
// failure is logged but does not fail the placement.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	payment, err := order.NewPayment(cmd.Payment().TransactionID, cmd.Payment().Status)
	if err != nil {
		return err
	}

	// Unconfirmed payment must be rejected before any other work: reserving
	// a courier first would hold a row lock for a placement that can never
	// succeed. NewOrder enforces the same gate as a backstop.
	if !payment.IsConfirmed() {
		return order.ErrPaymentNotConfirmed
	}

	items, err := h.resolveItems(ctx, cmd.Lines())
	if err != nil {
		return err
	}

	deliveryInfo, err := order.NewDeliveryInfo(cmd.Delivery().Name, cmd.Delivery().Phone, cmd.Delivery().Address)
	if err != nil {
		return err
	}

	contact, err := h.customers.GetContact(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	code, err := order.GenerateVerificationCode(order.DefaultCodeWidth)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reserved, err := uow.CourierRepository().ReserveFirstAvailable(ctx)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		items,
		deliveryInfo,
		payment,
		cmd.Location(),
		code,
		reserved.ID(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyCustomer(ctx, contact, aggregate)

	return nil
}

// resolveItems converts requested order lines into priced order items.
// Prices come from the catalog only; client-supplied prices never reach
// the aggregate.
func (h *PlaceOrderCommandHandler) resolveItems(ctx context.Context, lines []OrderLine) ([]order.Item, error) {
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		catalogItem, err := h.catalog.GetItem(ctx, line.FoodID)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(catalogItem.ID, line.Quantity, catalogItem.Price)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

func (h *PlaceOrderCommandHandler) notifyCustomer(
	ctx context.Context,
	contact ports.CustomerContact,
	aggregate *order.Order,
) {
	subject := "Your order is confirmed"
	body := fmt.Sprintf(
		"Hi %s, your order has been placed. Share code %s with the courier on delivery.",
		contact.Name, aggregate.Code().String(),
	)

	if err := h.notifier.Send(ctx, contact.Email, subject, body); err != nil {
		h.logger.WarnContext(ctx, "verification code notification failed",
			"order_id", aggregate.ID().String(),
			"error", err)
	}
}
