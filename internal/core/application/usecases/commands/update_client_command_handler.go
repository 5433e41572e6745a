package commands

import (
	"context"
)

// UpdateClientCommandHandler handles the business logic for client updates.
type UpdateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewUpdateClientCommandHandler creates a handler for client updates.
func NewUpdateClientCommandHandler(uowFactory ClientUoWFactory) UpdateClientCommandHandler {
	return UpdateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the client update command. Loads the aggregate, applies
// the rename and contact changes, and persists within one transaction.
func (h UpdateClientCommandHandler) Handle(ctx context.Context, cmd UpdateClientCommand) error {
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

	clientRepo := uow.ClientRepository()
	existing, err := clientRepo.Get(ctx, cmd.ClientID())
	if err != nil {
		return err
	}

	if err = existing.Rename(cmd.Name()); err != nil {
		return err
	}
	existing.UpdateContact(cmd.Phone(), cmd.Email(), cmd.Address())

	if err = clientRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
