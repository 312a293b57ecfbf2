package mongodb

import (
	"context"
	"time"

	"tours/internal/core/domain/model/inquiry"
	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/ports"
	"tours/internal/pkg/errs"
	"tours/internal/pkg/pagination"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ ports.InquiryRepository = &InquiryRepository{}

type inquiryDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Email       string    `bson:"email"`
	Phone       string    `bson:"phone,omitempty"`
	Message     string    `bson:"message"`
	TourID      *string   `bson:"tourId,omitempty"`
	CreatedAt   time.Time `bson:"createdAt"`
	CreatedAtNs int64     `bson:"createdAtNs"`
}

type InquiryRepository struct {
	coll *mongo.Collection
}

func (r *InquiryRepository) Add(ctx context.Context, aggregate *inquiry.Inquiry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	c := aggregate.Contact()
	doc := inquiryDocument{
		ID:          aggregate.ID().String(),
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Message:     c.Message,
		CreatedAt:   aggregate.CreatedAt(),
		CreatedAtNs: aggregate.CreatedAt().UnixNano(),
	}
	if tourID := aggregate.TourID(); tourID != nil {
		s := tourID.String()
		doc.TourID = &s
	}

	_, err := r.coll.InsertOne(ctx, doc)
	return err
}

func (r *InquiryRepository) List(ctx context.Context, page pagination.Page) ([]*inquiry.Inquiry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAtNs", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(page.Skip())).
		SetLimit(int64(page.Limit()))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var docs []inquiryDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	inquiries := make([]*inquiry.Inquiry, 0, len(docs))
	for _, doc := range docs {
		i, mapErr := doc.toDomain()
		if mapErr != nil {
			return nil, mapErr
		}
		inquiries = append(inquiries, i)
	}
	return inquiries, nil
}

func (r *InquiryRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *InquiryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return errs.NewObjectNotFoundError("inquiryId", id)
	}
	return nil
}

func (d inquiryDocument) toDomain() (*inquiry.Inquiry, error) {
	id, err := kernel.UUIDFromString(d.ID)
	if err != nil {
		return nil, err
	}

	var tourID *kernel.UUID
	if d.TourID != nil {
		parsed, parseErr := kernel.UUIDFromString(*d.TourID)
		if parseErr != nil {
			return nil, parseErr
		}
		tourID = &parsed
	}

	return inquiry.RestoreInquiry(id, inquiry.Contact{
		Name:    d.Name,
		Email:   d.Email,
		Phone:   d.Phone,
		Message: d.Message,
	}, tourID, time.Unix(0, d.CreatedAtNs).UTC())
}
