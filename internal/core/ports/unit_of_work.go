package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// Concurrent goroutines must each use their own instance.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes one step of a command. Without Begin, repositories run
// directly against the store. Adapters without multi-document transactions
// treat Begin/Commit/Rollback as no-ops, so callers must not rely on them to
// make several writes atomic.
type UnitOfWork interface {
	// Begin starts a transaction where the store supports one.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback discards the current transaction. Deferred calls after a
	// successful Commit may return an error that callers ignore.
	Rollback(ctx context.Context) error

	TourRepository() TourRepository
	TourImageRepository() TourImageRepository
	TourLineRepository() TourLineRepository
	ItineraryRepository() ItineraryRepository
	InquiryRepository() InquiryRepository
}
