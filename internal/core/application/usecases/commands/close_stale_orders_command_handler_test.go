package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"negoce/internal/core/application/usecases/commands"
	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/order"
	"negoce/internal/core/domain/model/shipping"
	"negoce/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func stuckOrderFixture(t *testing.T, createdAt time.Time) *order.Order {
	t.Helper()
	override := order.StepWarehouse
	o, err := order.RestoreOrder(
		kernel.NewUUID(), "ALKN010", kernel.NewUUID(), "Mme Kabongo",
		shipping.Air, nil, 0, createdAt, &override)
	require.NoError(t, err)
	return o
}

func TestCloseStaleOrdersCommandHandler_Handle_ClosesStuckOrders(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCloseStaleOrdersCommand()

	// created long enough ago that the delivery window plus grace is past
	stuck := stuckOrderFixture(t, time.Now().Add(-30*24*time.Hour))
	fresh := stuckOrderFixture(t, time.Now().Add(-24*time.Hour))

	orderRepo := new(MockOrderRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllUndelivered", mock.Anything).Return([]*order.Order{stuck, fresh}, nil).Once(),
		orderRepo.On("Update", mock.Anything, stuck).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishOrderStepChanged", mock.Anything, mock.AnythingOfType("ports.OrderStepChanged")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCloseStaleOrdersCommandHandler(factory, publisher, discardLogger())
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, stuck.StepOverride())
	assert.Equal(t, order.StepDelivered, *stuck.StepOverride())
	assert.Equal(t, order.StepWarehouse, *fresh.StepOverride())

	event := publisher.Calls[0].Arguments.Get(1).(ports.OrderStepChanged)
	assert.Equal(t, "ALKN010", event.OrderNumber)
	assert.Equal(t, order.StepDelivered.String(), event.Step)
	assert.Equal(t, 100, event.Percent)
	assert.Equal(t, ports.StepChangeSourceSweep, event.Source)

	orderRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCloseStaleOrdersCommandHandler_Handle_NothingToClose(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCloseStaleOrdersCommand()

	orderRepo := new(MockOrderRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllUndelivered", mock.Anything).Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCloseStaleOrdersCommandHandler(factory, publisher, discardLogger())
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	publisher.AssertNotCalled(t, "PublishOrderStepChanged", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCloseStaleOrdersCommandHandler_Handle_PublishFailureIsNotFatal(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCloseStaleOrdersCommand()

	stuck := stuckOrderFixture(t, time.Now().Add(-30*24*time.Hour))

	orderRepo := new(MockOrderRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllUndelivered", mock.Anything).Return([]*order.Order{stuck}, nil).Once(),
		orderRepo.On("Update", mock.Anything, stuck).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishOrderStepChanged", mock.Anything, mock.AnythingOfType("ports.OrderStepChanged")).Return(errors.New("broker unavailable")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCloseStaleOrdersCommandHandler(factory, publisher, discardLogger())
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
}
