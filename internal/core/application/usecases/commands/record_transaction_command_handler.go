package commands

import (
	"context"
	"log/slog"
	"time"

	"negoce/internal/core/domain/model/finance"
	"negoce/internal/core/ports"
)

// RecordTransactionCommandHandler appends entries to the cash ledger and
// drops the cached dashboard statistics, since revenue figures just changed.
type RecordTransactionCommandHandler struct {
	uowFactory FinanceUoWFactory
	statsCache ports.StatsCache
	logger     *slog.Logger
}

// NewRecordTransactionCommandHandler creates a handler for ledger entries.
func NewRecordTransactionCommandHandler(
	uowFactory FinanceUoWFactory,
	statsCache ports.StatsCache,
	logger *slog.Logger,
) RecordTransactionCommandHandler {
	return RecordTransactionCommandHandler{
		uowFactory: uowFactory,
		statsCache: statsCache,
		logger:     logger.With("component", "record-transaction"),
	}
}

// Handle processes the ledger entry command.
func (h RecordTransactionCommandHandler) Handle(ctx context.Context, cmd RecordTransactionCommand) error {
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

	entry, err := finance.NewTransaction(
		cmd.TransactionID(), cmd.Kind(), cmd.Label(), cmd.Amount(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.TransactionRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.statsCache.Invalidate(ctx, ports.DashboardStatsCacheKey); err != nil {
		h.logger.Warn("stats cache not invalidated", "error", err)
	}

	return nil
}
