package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "negoce/internal/adapters/out/postgres"
	"negoce/internal/adapters/out/postgres/clientrepo"
	"negoce/internal/adapters/out/postgres/cotationrepo"
	"negoce/internal/adapters/out/postgres/financerepo"
	"negoce/internal/adapters/out/postgres/orderrepo"
	"negoce/internal/adapters/out/postgres/productrepo"
	"negoce/internal/core/domain/model/client"
	"negoce/internal/core/domain/model/cotation"
	"negoce/internal/core/domain/model/finance"
	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/order"
	"negoce/internal/core/domain/model/product"
	"negoce/internal/core/domain/model/shipping"
	"negoce/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based unit of work
// against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&cotationrepo.CotationDTO{},
		&clientrepo.ClientDTO{},
		&financerepo.TransactionDTO{},
		&productrepo.EvaluatedProductDTO{},
	)
	suite.Require().NoError(err)

	err = db.Exec("CREATE TABLE order_counters (name TEXT PRIMARY KEY, value BIGINT NOT NULL)").Error
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, "negoce-test")
}

// SetupTest resets the schema and the reference counter before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, cotations, clients, transactions, evaluated_products, order_counters").Error
	suite.Require().NoError(err)

	err = suite.db.Exec("INSERT INTO order_counters (name, value) VALUES ('ALKN', 0)").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.CotationRepository())
	suite.NotNil(uow2.ClientRepository())
	suite.NotNil(uow2.TransactionRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.Number(), retrievedOrder.Number())
	suite.Equal(testOrder.ClientName(), retrievedOrder.ClientName())
	suite.InDelta(testOrder.Total(), retrievedOrder.Total(), 1e-9)
}

// TestUnitOfWork_ConversionWorkflow walks the cotation-to-order conversion
// inside one transaction: reserve a reference, create the order, snapshot the
// evaluated products and drop the source cotation atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConversionWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testClient := createTestClient(suite.T())
	testCotation := createTestCotation(suite.T(), testClient.ID(), testClient.Name())

	err := uow.ClientRepository().Add(ctx, testClient)
	suite.Require().NoError(err)
	err = uow.CotationRepository().Add(ctx, testCotation)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	number, err := uow.OrderNumberSequence().Next(ctx)
	suite.Require().NoError(err)
	suite.Equal("ALKN001", number)

	converted, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		testCotation.ClientID(),
		testCotation.ClientName(),
		testCotation.Mode(),
		testCotation.Lines(),
		testCotation.TotalGlobal(),
		time.Now().UTC(),
	)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, converted)
	suite.Require().NoError(err)

	for _, line := range testCotation.Lines() {
		snapshot, err := product.NewEvaluatedProduct(
			kernel.NewUUID(),
			line.Designation,
			line.ImageURL,
			540,
			line.Quantity,
			time.Now().UTC(),
		)
		suite.Require().NoError(err)

		err = uow.EvaluatedProductRepository().Add(ctx, snapshot)
		suite.Require().NoError(err)
	}

	err = uow.CotationRepository().Delete(ctx, testCotation.ID())
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, converted.ID())
	suite.Require().NoError(err)
	suite.Equal("ALKN001", retrievedOrder.Number())
	suite.Equal(testClient.ID(), retrievedOrder.ClientID())

	_, err = newUow.CotationRepository().Get(ctx, testCotation.ID())
	suite.Require().Error(err, "Cotation should be gone after conversion")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.T())
	testClient := createTestClient(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.ClientRepository().Add(ctx, testClient)
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	_, err = newUow.ClientRepository().Get(ctx, testClient.ID())
	suite.Require().Error(err, "Client should not exist after rollback")
}

// TestUnitOfWork_SequenceRollback verifies a rolled back transaction releases
// the reserved order number, so the next reservation reissues it.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SequenceRollback() {
	ctx := context.Background()

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	number, err := uow.OrderNumberSequence().Next(ctx)
	suite.Require().NoError(err)
	suite.Equal("ALKN001", number)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	err = newUow.Begin(ctx)
	suite.Require().NoError(err)

	number, err = newUow.OrderNumberSequence().Next(ctx)
	suite.Require().NoError(err)
	suite.Equal("ALKN001", number, "Rolled back reservation should not consume the number")

	err = newUow.Commit(ctx)
	suite.Require().NoError(err)

	thirdUow := suite.factory.Create()
	err = thirdUow.Begin(ctx)
	suite.Require().NoError(err)

	number, err = thirdUow.OrderNumberSequence().Next(ctx)
	suite.Require().NoError(err)
	suite.Equal("ALKN002", number)

	err = thirdUow.Commit(ctx)
	suite.Require().NoError(err)
}

// TestUnitOfWork_LedgerScoping verifies the transaction repository stamps
// rows with the configured app identifier.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_LedgerScoping() {
	ctx := context.Background()
	uow := suite.factory.Create()

	entry, err := finance.NewTransaction(
		kernel.NewUUID(),
		finance.Revenue,
		"Acompte commande ALKN001",
		1200,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.TransactionRepository().Add(ctx, entry)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	var appID string
	err = suite.db.Raw("SELECT app_id FROM transactions WHERE id = ?", entry.ID().Bytes()).Scan(&appID).Error
	suite.Require().NoError(err)
	suite.Equal("negoce-test", appID)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StepOverrideRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.T())
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = testOrder.OverrideStep(order.StepDelivered)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.StepOverride())
	suite.Equal(order.StepDelivered, *retrieved.StepOverride())

	testOrder.ClearStepOverride()
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Nil(retrieved.StepOverride(), "Cleared override should persist as NULL")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.T())

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

func createTestOrder(t *testing.T) *order.Order {
	t.Helper()

	lines := []product.Line{{
		Designation:       "Chargeurs solaires",
		DisplayedPrice:    100,
		CommissionPercent: 25,
		WeightKg:          5,
		Quantity:          2,
	}}

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		"ALKN"+kernel.NewUUID().String()[:6],
		kernel.NewUUID(),
		"Mme Kabongo",
		shipping.Air,
		lines,
		540,
		time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("create test order: %v", err)
	}
	return testOrder
}

func createTestClient(t *testing.T) *client.Client {
	t.Helper()

	testClient, err := client.NewClient(
		kernel.NewUUID(),
		"Mme Kabongo",
		"+243 999 000 111",
		"kabongo@example.cd",
		"Avenue du Commerce, Kinshasa",
		time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("create test client: %v", err)
	}
	return testClient
}

func createTestCotation(t *testing.T, clientID kernel.UUID, clientName string) *cotation.Cotation {
	t.Helper()

	lines := []product.Line{{
		Designation:       "Chargeurs solaires",
		DisplayedPrice:    100,
		CommissionPercent: 25,
		WeightKg:          5,
		Quantity:          2,
	}}

	testCotation, err := cotation.NewCotation(
		kernel.NewUUID(),
		clientID,
		clientName,
		shipping.Air,
		lines,
		540,
		time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("create test cotation: %v", err)
	}
	return testCotation
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
