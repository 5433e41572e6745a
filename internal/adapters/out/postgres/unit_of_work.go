// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work owns one database transaction, hands out
// repositories bound to it, and tracks the aggregates modified inside it.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, appID)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"negoce/internal/adapters/out/postgres/clientrepo"
	"negoce/internal/adapters/out/postgres/cotationrepo"
	"negoce/internal/adapters/out/postgres/financerepo"
	"negoce/internal/adapters/out/postgres/orderrepo"
	"negoce/internal/adapters/out/postgres/productrepo"
	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Useful for implementing patterns like the outbox later.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections. Each business operation gets a fresh unit of work with
// proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db    *gorm.DB
	appID string
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The app identifier scopes the ledger repository.
func NewGormUnitOfWorkFactory(db *gorm.DB, appID string) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, appID: appID}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		appID:             f.appID,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the
// repositories. Repositories obtained before Begin run on the main
// connection; after Begin they run inside the transaction.
type GormUnitOfWork struct {
	db                *gorm.DB
	appID             string
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin again on an active unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the current
// transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// CotationRepository returns a cotation repository bound to the current
// transaction.
func (uow *GormUnitOfWork) CotationRepository() ports.CotationRepository {
	return cotationrepo.NewGormCotationRepository(uow.conn(), uow)
}

// ClientRepository returns a client repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ClientRepository() ports.ClientRepository {
	return clientrepo.NewGormClientRepository(uow.conn(), uow)
}

// TransactionRepository returns a ledger repository bound to the current
// transaction and scoped to the configured app identifier.
func (uow *GormUnitOfWork) TransactionRepository() ports.TransactionRepository {
	return financerepo.NewGormTransactionRepository(uow.conn(), uow.appID, uow)
}

// EvaluatedProductRepository returns a snapshot repository bound to the
// current transaction.
func (uow *GormUnitOfWork) EvaluatedProductRepository() ports.EvaluatedProductRepository {
	return productrepo.NewGormEvaluatedProductRepository(uow.conn(), uow)
}

// OrderNumberSequence returns the reference sequence bound to the current
// transaction, so a rollback releases the reserved number.
func (uow *GormUnitOfWork) OrderNumberSequence() ports.OrderNumberSequence {
	return NewGormOrderNumberSequence(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by the repository implementations.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
