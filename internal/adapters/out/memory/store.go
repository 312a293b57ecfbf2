// Package memory is a process-local storage adapter. It keeps records, not
// domain objects, and restores a fresh aggregate on every read so callers
// never share state through it. Like the document store it stands in for, it
// guarantees atomicity per record only.
package memory

import (
	"context"
	"sync"
	"time"

	"tours/internal/core/domain/model/tour"
	"tours/internal/core/ports"
)

type tourRecord struct {
	id        string
	details   tour.Details
	imageURL  string
	version   int
	createdAt time.Time
	updatedAt time.Time
}

type imageRecord struct {
	id        string
	tourID    string
	imageURL  string
	createdAt time.Time
	updatedAt time.Time
}

type lineRecord struct {
	id          string
	tourID      string
	description string
	lineType    tour.LineType
	createdAt   time.Time
}

type itineraryRecord struct {
	id        string
	tourID    string
	dayNumber int
	activity  string
	createdAt time.Time
}

type inquiryRecord struct {
	id        string
	name      string
	email     string
	phone     string
	message   string
	tourID    string
	createdAt time.Time
}

// Store holds every collection behind one lock.
type Store struct {
	mu        sync.RWMutex
	tours     map[string]tourRecord
	images    map[string]imageRecord
	lines     map[string]lineRecord
	itinerary map[string]itineraryRecord
	inquiries map[string]inquiryRecord
}

func NewStore() *Store {
	return &Store{
		tours:     map[string]tourRecord{},
		images:    map[string]imageRecord{},
		lines:     map[string]lineRecord{},
		itinerary: map[string]itineraryRecord{},
		inquiries: map[string]inquiryRecord{},
	}
}

// UnitOfWorkFactory hands out units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork has no transactions; every repository call commits at once.
type UnitOfWork struct {
	store *Store
}

func (u *UnitOfWork) Begin(_ context.Context) error {
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	return nil
}

func (u *UnitOfWork) TourRepository() ports.TourRepository {
	return &TourRepository{store: u.store}
}

func (u *UnitOfWork) TourImageRepository() ports.TourImageRepository {
	return &TourImageRepository{store: u.store}
}

func (u *UnitOfWork) TourLineRepository() ports.TourLineRepository {
	return &TourLineRepository{store: u.store}
}

func (u *UnitOfWork) ItineraryRepository() ports.ItineraryRepository {
	return &ItineraryRepository{store: u.store}
}

func (u *UnitOfWork) InquiryRepository() ports.InquiryRepository {
	return &InquiryRepository{store: u.store}
}
