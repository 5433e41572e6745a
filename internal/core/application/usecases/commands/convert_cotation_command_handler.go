package commands

import (
	"context"
	"time"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/order"
	"negoce/internal/core/domain/model/product"
	"negoce/internal/core/domain/services"
)

// ConvertCotationCommandHandler turns an accepted quotation into an order.
// The order insert, the per-line price snapshots, and the cotation removal
// commit together or not at all.
type ConvertCotationCommandHandler struct {
	uowFactory ConversionUoWFactory
	tariff     services.Tariff
}

// NewConvertCotationCommandHandler creates a handler for cotation conversion.
func NewConvertCotationCommandHandler(uowFactory ConversionUoWFactory, tariff services.Tariff) ConvertCotationCommandHandler {
	return ConvertCotationCommandHandler{
		uowFactory: uowFactory,
		tariff:     tariff,
	}
}

// Handle processes the conversion command. The resulting order starts its
// own tracking clock: createdAt is the conversion instant, not the
// cotation's.
func (h ConvertCotationCommandHandler) Handle(ctx context.Context, cmd ConvertCotationCommand) error {
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
	source, err := cotationRepo.Get(ctx, cmd.CotationID())
	if err != nil {
		return err
	}

	number, err := uow.OrderNumberSequence().Next(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	total := h.tariff.GrandTotal(source.Lines(), source.Mode())
	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		number,
		source.ClientID(),
		source.ClientName(),
		source.Mode(),
		source.Lines(),
		total,
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	snapshotRepo := uow.EvaluatedProductRepository()
	for _, line := range source.Lines() {
		snapshot, snapErr := product.NewEvaluatedProduct(
			kernel.NewUUID(),
			line.Designation,
			line.ImageURL,
			h.tariff.LineTotal(line, source.Mode()),
			line.Quantity,
			now,
		)
		if snapErr != nil {
			return snapErr
		}
		if err = snapshotRepo.Add(ctx, snapshot); err != nil {
			return err
		}
	}

	if err = cotationRepo.Delete(ctx, source.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
