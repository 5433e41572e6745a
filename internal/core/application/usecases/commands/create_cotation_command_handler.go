package commands

import (
	"context"
	"time"

	"negoce/internal/core/domain/model/cotation"
	"negoce/internal/core/domain/services"
)

// CreateCotationCommandHandler handles the business logic for quotation
// creation. The stored grand total is computed at the tariff in force.
type CreateCotationCommandHandler struct {
	uowFactory CotationUoWFactory
	tariff     services.Tariff
}

// NewCreateCotationCommandHandler creates a handler for quotation creation.
func NewCreateCotationCommandHandler(uowFactory CotationUoWFactory, tariff services.Tariff) CreateCotationCommandHandler {
	return CreateCotationCommandHandler{
		uowFactory: uowFactory,
		tariff:     tariff,
	}
}

// Handle processes the quotation creation command.
func (h CreateCotationCommandHandler) Handle(ctx context.Context, cmd CreateCotationCommand) error {
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

	quotedClient, err := uow.ClientRepository().Get(ctx, cmd.ClientID())
	if err != nil {
		return err
	}

	total := h.tariff.GrandTotal(cmd.Lines(), cmd.Mode())
	newCotation, err := cotation.NewCotation(
		cmd.CotationID(),
		quotedClient.ID(),
		quotedClient.Name(),
		cmd.Mode(),
		cmd.Lines(),
		total,
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.CotationRepository().Add(ctx, newCotation); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
