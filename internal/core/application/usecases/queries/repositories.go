// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models assembled from repositories; independent reads
// are issued concurrently.
package queries

import (
	"tours/internal/core/ports"
)

type (
	// Reader exposes the repositories a query reads from. Reads run outside
	// any transaction.
	Reader interface {
		TourRepository() ports.TourRepository
		TourImageRepository() ports.TourImageRepository
		TourLineRepository() ports.TourLineRepository
		ItineraryRepository() ports.ItineraryRepository
		InquiryRepository() ports.InquiryRepository
	}

	// ReaderFactory creates a Reader per goroutine.
	ReaderFactory interface {
		Create() Reader
	}
)
