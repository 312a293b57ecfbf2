// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every command is validated in full before its first write. Multi-step
// commands (image add/remove, tour delete) commit each step on its own and
// never assume a transaction spans the steps.
package commands

import (
	"context"

	"tours/internal/core/ports"
)

// Unit of Work interfaces scope the persistence of one command step.
type (
	// TxManager handles database transaction lifecycle where the store has one.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TourRepoFactory provides access to the tour repository.
	TourRepoFactory interface {
		TourRepository() ports.TourRepository
	}

	// DependentRepoFactory provides access to the three collections owned by a tour.
	DependentRepoFactory interface {
		TourImageRepository() ports.TourImageRepository
		TourLineRepository() ports.TourLineRepository
		ItineraryRepository() ports.ItineraryRepository
	}

	// InquiryRepoFactory provides access to the inquiry repository.
	InquiryRepoFactory interface {
		InquiryRepository() ports.InquiryRepository
	}

	// TourUoW manages tour-only operations.
	TourUoW interface {
		TxManager
		TourRepoFactory
	}

	// TourUoWFactory creates new tour unit of work instances.
	TourUoWFactory interface {
		Create() TourUoW
	}

	// UoW spans the tour and its dependents.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   img := uow.TourImageRepository()
	//   // ... perform one step
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		TourRepoFactory
		DependentRepoFactory
	}

	// UoWFactory creates new unit of work instances. Concurrent steps must
	// each call Create.
	UoWFactory interface {
		Create() UoW
	}

	// InquiryUoW manages inquiry operations. The tour repository is used to
	// check the optional tour reference.
	InquiryUoW interface {
		TxManager
		TourRepoFactory
		InquiryRepoFactory
	}

	// InquiryUoWFactory creates new inquiry unit of work instances.
	InquiryUoWFactory interface {
		Create() InquiryUoW
	}
)
