package commands_test

import (
	"errors"
	"testing"
	"time"

	"negoce/internal/core/application/usecases/commands"
	"negoce/internal/core/domain/model/cotation"
	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/order"
	"negoce/internal/core/domain/model/product"
	"negoce/internal/core/domain/model/shipping"
	"negoce/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cotationFixture(t *testing.T, id kernel.UUID) *cotation.Cotation {
	t.Helper()
	c, err := cotation.NewCotation(
		id, kernel.NewUUID(), "M. Ilunga", shipping.Air,
		[]product.Line{airLine(), {
			Designation:       "Casque audio",
			DisplayedPrice:    40,
			CommissionPercent: 25,
			WeightKg:          1,
			Quantity:          1,
		}},
		619, time.Now())
	require.NoError(t, err)
	return c
}

func TestConvertCotationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cotationID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewConvertCotationCommand(cotationID, orderID)
	require.NoError(t, err)

	source := cotationFixture(t, cotationID)
	cotationRepo := new(MockCotationRepository)
	orderRepo := new(MockOrderRepository)
	snapshotRepo := new(MockEvaluatedProductRepository)
	sequence := new(MockOrderNumberSequence)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CotationRepository").Return(cotationRepo).Once(),
		cotationRepo.On("Get", mock.Anything, cotationID).Return(source, nil).Once(),
		uow.On("OrderNumberSequence").Return(sequence).Once(),
		sequence.On("Next", mock.Anything).Return("ALKN043", nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("EvaluatedProductRepository").Return(snapshotRepo).Once(),
		snapshotRepo.On("Add", mock.Anything, mock.AnythingOfType("*product.EvaluatedProduct")).Return(nil).Twice(),
		cotationRepo.On("Delete", mock.Anything, cotationID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConversionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConvertCotationCommandHandler(factory, services.DefaultTariff())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	added := orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
	assert.Equal(t, orderID, added.ID())
	assert.Equal(t, "ALKN043", added.Number())
	assert.Equal(t, source.ClientName(), added.ClientName())
	assert.Equal(t, source.Lines(), added.Lines())
	// charger line: (100*1.25 + 5*29)*2 = 540; headset line: (40*1.25 + 29)*1 = 79
	assert.InDelta(t, 540.0+79.0, added.Total(), 1e-9)
	cotationRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	snapshotRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestConvertCotationCommandHandler_Handle_CotationNotFound(t *testing.T) {
	ctx := t.Context()
	cotationID := kernel.NewUUID()
	cmd, err := commands.NewConvertCotationCommand(cotationID, kernel.NewUUID())
	require.NoError(t, err)

	cotationRepo := new(MockCotationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CotationRepository").Return(cotationRepo).Once(),
		cotationRepo.On("Get", mock.Anything, cotationID).Return(nil, errors.New("cotation not found")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConversionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConvertCotationCommandHandler(factory, services.DefaultTariff())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestConvertCotationCommandHandler_Handle_DeleteError_RollsBack(t *testing.T) {
	ctx := t.Context()
	cotationID := kernel.NewUUID()
	cmd, err := commands.NewConvertCotationCommand(cotationID, kernel.NewUUID())
	require.NoError(t, err)

	source := cotationFixture(t, cotationID)
	cotationRepo := new(MockCotationRepository)
	orderRepo := new(MockOrderRepository)
	snapshotRepo := new(MockEvaluatedProductRepository)
	sequence := new(MockOrderNumberSequence)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CotationRepository").Return(cotationRepo).Once(),
		cotationRepo.On("Get", mock.Anything, cotationID).Return(source, nil).Once(),
		uow.On("OrderNumberSequence").Return(sequence).Once(),
		sequence.On("Next", mock.Anything).Return("ALKN043", nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("EvaluatedProductRepository").Return(snapshotRepo).Once(),
		snapshotRepo.On("Add", mock.Anything, mock.AnythingOfType("*product.EvaluatedProduct")).Return(nil).Twice(),
		cotationRepo.On("Delete", mock.Anything, cotationID).Return(errors.New("delete error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConversionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConvertCotationCommandHandler(factory, services.DefaultTariff())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}
