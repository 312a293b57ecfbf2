package mongodb

import (
	"context"

	"tours/internal/core/ports"

	"go.mongodb.org/mongo-driver/mongo"
)

type UnitOfWorkFactory struct {
	db *mongo.Database
}

func NewUnitOfWorkFactory(db *mongo.Database) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{db: db}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{db: f.db}
}

// UnitOfWork has no transaction; each repository call is applied at once.
type UnitOfWork struct {
	db *mongo.Database
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
	return &TourRepository{coll: u.db.Collection(toursCollection)}
}

func (u *UnitOfWork) TourImageRepository() ports.TourImageRepository {
	return &TourImageRepository{coll: u.db.Collection(imagesCollection)}
}

func (u *UnitOfWork) TourLineRepository() ports.TourLineRepository {
	return &TourLineRepository{coll: u.db.Collection(linesCollection)}
}

func (u *UnitOfWork) ItineraryRepository() ports.ItineraryRepository {
	return &ItineraryRepository{coll: u.db.Collection(itineraryCollection)}
}

func (u *UnitOfWork) InquiryRepository() ports.InquiryRepository {
	return &InquiryRepository{coll: u.db.Collection(inquiriesCollection)}
}
