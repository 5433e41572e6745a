package commands

import (
	"context"
)

// DeleteCotationCommandHandler handles quotation removal.
type DeleteCotationCommandHandler struct {
	uowFactory CotationUoWFactory
}

// NewDeleteCotationCommandHandler creates a handler for cotation deletion.
func NewDeleteCotationCommandHandler(uowFactory CotationUoWFactory) DeleteCotationCommandHandler {
	return DeleteCotationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cotation deletion command.
func (h DeleteCotationCommandHandler) Handle(ctx context.Context, cmd DeleteCotationCommand) error {
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

	cotationRepo := uow.CotationRepository()
	existing, err := cotationRepo.Get(ctx, cmd.CotationID())
	if err != nil {
		return err
	}

	if err = cotationRepo.Delete(ctx, existing.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
