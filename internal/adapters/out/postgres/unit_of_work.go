// Package postgres provides the GORM-based Unit of Work over the tour tables.
//
// A unit of work hands out repositories bound either to the plain connection
// or, after Begin, to one transaction. The tour aggregate and its dependents
// live in separate tables; the application layer never relies on a single
// transaction spanning them, so the cascade and the primary-image reconcile
// each use their own unit of work.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.TourImageRepository().Add(ctx, image); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency: every UnitOfWork carries its own transaction state. Goroutines
// must not share one; the delete cascade creates one per dependent step.
package postgres

import (
	"context"

	"tours/internal/adapters/out/postgres/inquiryrepo"
	"tours/internal/adapters/out/postgres/itineraryrepo"
	"tours/internal/adapters/out/postgres/tourimagerepo"
	"tours/internal/adapters/out/postgres/tourlinerepo"
	"tours/internal/adapters/out/postgres/tourrepo"
	"tours/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances over one GORM connection.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := postgres.Open(cfg.DSN())
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh UnitOfWork with no transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates a database transaction across the repositories
// it hands out.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction. Calling Begin twice keeps the first one.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction. Returns gorm.ErrInvalidTransaction when
// none is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. After Commit it returns
// gorm.ErrInvalidTransaction, which deferred callers ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) TourRepository() ports.TourRepository {
	return tourrepo.NewGormTourRepository(uow.conn())
}

func (uow *GormUnitOfWork) TourImageRepository() ports.TourImageRepository {
	return tourimagerepo.NewGormTourImageRepository(uow.conn())
}

func (uow *GormUnitOfWork) TourLineRepository() ports.TourLineRepository {
	return tourlinerepo.NewGormTourLineRepository(uow.conn())
}

func (uow *GormUnitOfWork) ItineraryRepository() ports.ItineraryRepository {
	return itineraryrepo.NewGormItineraryRepository(uow.conn())
}

func (uow *GormUnitOfWork) InquiryRepository() ports.InquiryRepository {
	return inquiryrepo.NewGormInquiryRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
