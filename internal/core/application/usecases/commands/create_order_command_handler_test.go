package commands_test

import (
	"errors"
	"testing"
	"time"

	"negoce/internal/core/application/usecases/commands"
	"negoce/internal/core/domain/model/client"
	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/order"
	"negoce/internal/core/domain/model/product"
	"negoce/internal/core/domain/model/shipping"
	"negoce/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func clientFixture(t *testing.T, id kernel.UUID) *client.Client {
	t.Helper()
	c, err := client.NewClient(id, "Mme Kabongo", "", "", "", time.Now())
	require.NoError(t, err)
	return c
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), clientID, shipping.Air, []product.Line{airLine()})
	require.NoError(t, err)

	clientRepo := new(MockClientRepository)
	orderRepo := new(MockOrderRepository)
	sequence := new(MockOrderNumberSequence)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Get", mock.Anything, clientID).Return(clientFixture(t, clientID), nil).Once(),
		uow.On("OrderNumberSequence").Return(sequence).Once(),
		sequence.On("Next", mock.Anything).Return("ALKN042", nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.DefaultTariff())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	added := orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
	assert.Equal(t, "ALKN042", added.Number())
	assert.Equal(t, "Mme Kabongo", added.ClientName())
	assert.Equal(t, 540.0, added.Total())
	orderRepo.AssertExpectations(t)
	clientRepo.AssertExpectations(t)
	sequence.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory, services.DefaultTariff())
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_UnknownClient(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), clientID, shipping.Air, []product.Line{airLine()})
	require.NoError(t, err)

	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Get", mock.Anything, clientID).Return(nil, errors.New("client not found")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.DefaultTariff())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), clientID, shipping.Air, []product.Line{airLine()})
	require.NoError(t, err)

	clientRepo := new(MockClientRepository)
	orderRepo := new(MockOrderRepository)
	sequence := new(MockOrderNumberSequence)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Get", mock.Anything, clientID).Return(clientFixture(t, clientID), nil).Once(),
		uow.On("OrderNumberSequence").Return(sequence).Once(),
		sequence.On("Next", mock.Anything).Return("ALKN042", nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.DefaultTariff())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}
