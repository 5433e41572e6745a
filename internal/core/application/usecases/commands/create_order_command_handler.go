package commands

import (
	"context"
	"time"

	"negoce/internal/core/domain/model/order"
	"negoce/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Reserves the next business reference, denormalizes the client name, and
// prices the lines at the tariff in force, all within one transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	tariff     services.Tariff
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, tariff services.Tariff) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		tariff:     tariff,
	}
}

// Handle processes the order creation command.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderingClient, err := uow.ClientRepository().Get(ctx, cmd.ClientID())
	if err != nil {
		return err
	}

	number, err := uow.OrderNumberSequence().Next(ctx)
	if err != nil {
		return err
	}

	total := h.tariff.GrandTotal(cmd.Lines(), cmd.Mode())
	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		number,
		orderingClient.ID(),
		orderingClient.Name(),
		cmd.Mode(),
		cmd.Lines(),
		total,
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
