package commands

import (
	"context"
	"log/slog"
	"time"

	"negoce/internal/core/ports"
)

// ChangeOrderStepCommandHandler handles admin step overrides. The change is
// persisted first; the step-changed event is published after commit, and a
// publish failure never rolls the change back.
type ChangeOrderStepCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewChangeOrderStepCommandHandler creates a handler for step overrides.
func NewChangeOrderStepCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ChangeOrderStepCommandHandler {
	return ChangeOrderStepCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "change-order-step"),
	}
}

// Handle processes the step change command.
func (h ChangeOrderStepCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStepCommand) error {
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
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if step := cmd.Step(); step != nil {
		if err = existing.OverrideStep(*step); err != nil {
			return err
		}
	} else {
		existing.ClearStepOverride()
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	now := time.Now()
	progress := existing.Progress(now)
	event := ports.OrderStepChanged{
		OrderID:     existing.ID().String(),
		OrderNumber: existing.Number(),
		Step:        progress.Step.String(),
		Percent:     progress.Percent,
		ChangedAt:   now,
		Source:      ports.StepChangeSourceAdmin,
	}
	if err = h.publisher.PublishOrderStepChanged(ctx, event); err != nil {
		h.logger.Warn("step change event not published",
			"order", existing.Number(), "error", err)
	}

	return nil
}
