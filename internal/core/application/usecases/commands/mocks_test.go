package commands_test

import (
	"context"

	"negoce/internal/core/application/usecases/commands"
	"negoce/internal/core/domain/model/client"
	"negoce/internal/core/domain/model/cotation"
	"negoce/internal/core/domain/model/finance"
	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/order"
	"negoce/internal/core/domain/model/product"
	"negoce/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllUndelivered(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCotationRepository struct{ mock.Mock }

func (m *MockCotationRepository) Add(ctx context.Context, c *cotation.Cotation) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCotationRepository) Update(ctx context.Context, c *cotation.Cotation) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCotationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCotationRepository) Get(ctx context.Context, id kernel.UUID) (*cotation.Cotation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cotation.Cotation), args.Error(1)
}

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockClientRepository) Update(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockClientRepository) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

type MockTransactionRepository struct{ mock.Mock }

func (m *MockTransactionRepository) Add(ctx context.Context, t *finance.Transaction) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

type MockEvaluatedProductRepository struct{ mock.Mock }

func (m *MockEvaluatedProductRepository) Add(ctx context.Context, p *product.EvaluatedProduct) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockOrderNumberSequence struct{ mock.Mock }

func (m *MockOrderNumberSequence) Next(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderStepChanged(ctx context.Context, event ports.OrderStepChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockStatsCache struct{ mock.Mock }

func (m *MockStatsCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
func (m *MockStatsCache) Set(ctx context.Context, key string, payload []byte) error {
	args := m.Called(ctx, key, payload)
	return args.Error(0)
}
func (m *MockStatsCache) Invalidate(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockUoW backs every unit of work interface in the package; each test
// wires only the repositories its handler touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) CotationRepository() ports.CotationRepository {
	args := m.Called()
	return args.Get(0).(ports.CotationRepository)
}
func (m *MockUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}
func (m *MockUoW) TransactionRepository() ports.TransactionRepository {
	args := m.Called()
	return args.Get(0).(ports.TransactionRepository)
}
func (m *MockUoW) EvaluatedProductRepository() ports.EvaluatedProductRepository {
	args := m.Called()
	return args.Get(0).(ports.EvaluatedProductRepository)
}
func (m *MockUoW) OrderNumberSequence() ports.OrderNumberSequence {
	args := m.Called()
	return args.Get(0).(ports.OrderNumberSequence)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockClientUoWFactory struct{ mock.Mock }

func (m *MockClientUoWFactory) Create() commands.ClientUoW {
	args := m.Called()
	return args.Get(0).(commands.ClientUoW)
}

type MockCotationUoWFactory struct{ mock.Mock }

func (m *MockCotationUoWFactory) Create() commands.CotationUoW {
	args := m.Called()
	return args.Get(0).(commands.CotationUoW)
}

type MockConversionUoWFactory struct{ mock.Mock }

func (m *MockConversionUoWFactory) Create() commands.ConversionUoW {
	args := m.Called()
	return args.Get(0).(commands.ConversionUoW)
}

type MockFinanceUoWFactory struct{ mock.Mock }

func (m *MockFinanceUoWFactory) Create() commands.FinanceUoW {
	args := m.Called()
	return args.Get(0).(commands.FinanceUoW)
}
