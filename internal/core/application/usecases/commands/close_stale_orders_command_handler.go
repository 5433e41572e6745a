package commands

import (
	"context"
	"log/slog"
	"time"

	"negoce/internal/core/domain/model/order"
	"negoce/internal/core/ports"
)

// CloseStaleOrdersCommandHandler force-closes orders stuck past their
// delivery window. The closes are persisted in one transaction; the
// step-changed events go out after commit.
type CloseStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCloseStaleOrdersCommandHandler creates a handler for the sweep.
func NewCloseStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CloseStaleOrdersCommandHandler {
	return CloseStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "close-stale-orders"),
	}
}

// Handle processes the sweep command. Closing an order means recording a
// Delivered override so the state survives regardless of what stage an
// earlier admin override had pinned.
func (h CloseStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CloseStaleOrdersCommand) error {
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

	orderRepo := uow.OrderRepository()
	candidates, err := orderRepo.GetAllUndelivered(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	var closed []*order.Order
	for _, candidate := range candidates {
		if !candidate.ShouldAutoClose(now) {
			continue
		}
		if err = candidate.OverrideStep(order.StepDelivered); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, candidate); err != nil {
			return err
		}
		closed = append(closed, candidate)
	}

	if len(closed) == 0 {
		return uow.Commit(ctx)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, closedOrder := range closed {
		event := ports.OrderStepChanged{
			OrderID:     closedOrder.ID().String(),
			OrderNumber: closedOrder.Number(),
			Step:        order.StepDelivered.String(),
			Percent:     100,
			ChangedAt:   now,
			Source:      ports.StepChangeSourceSweep,
		}
		if err = h.publisher.PublishOrderStepChanged(ctx, event); err != nil {
			h.logger.Warn("step change event not published",
				"order", closedOrder.Number(), "error", err)
		}
	}

	h.logger.Info("stale orders closed", "count", len(closed))
	return nil
}
