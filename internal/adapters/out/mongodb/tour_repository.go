package mongodb

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/core/ports"
	"tours/internal/pkg/errs"
	"tours/internal/pkg/pagination"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ ports.TourRepository = &TourRepository{}

type tourDocument struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Location     string    `bson:"location"`
	Price        float64   `bson:"price"`
	Duration     string    `bson:"duration"`
	Rating       float64   `bson:"rating"`
	ReviewsCount int       `bson:"reviewsCount"`
	IsHotDeal    bool      `bson:"isHotDeal"`
	Description  string    `bson:"description"`
	Tagline      string    `bson:"tagline"`
	ImageURL     string    `bson:"imageUrl"`
	Version      int       `bson:"version"`
	CreatedAt    time.Time `bson:"createdAt"`
	CreatedAtNs  int64     `bson:"createdAtNs"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

// tourSortFields maps the sortable field names to document keys.
var tourSortFields = map[string]string{
	"createdAt":    "createdAtNs",
	"price":        "price",
	"rating":       "rating",
	"name":         "name",
	"reviewsCount": "reviewsCount",
}

type TourRepository struct {
	coll *mongo.Collection
}

func (r *TourRepository) Add(ctx context.Context, aggregate *tour.Tour) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	d := aggregate.Details()
	_, err := r.coll.InsertOne(ctx, tourDocument{
		ID:           aggregate.ID().String(),
		Name:         d.Name,
		Location:     d.Location,
		Price:        d.Price,
		Duration:     d.Duration,
		Rating:       d.Rating,
		ReviewsCount: d.ReviewsCount,
		IsHotDeal:    d.IsHotDeal,
		Description:  d.Description,
		Tagline:      d.Tagline,
		ImageURL:     aggregate.ImageURL(),
		Version:      aggregate.Version(),
		CreatedAt:    aggregate.CreatedAt(),
		CreatedAtNs:  aggregate.CreatedAt().UnixNano(),
		UpdatedAt:    aggregate.UpdatedAt(),
	})
	return err
}

// Update sets the detail fields and updatedAt; imageUrl and version are left
// to UpdatePrimaryImage.
func (r *TourRepository) Update(ctx context.Context, aggregate *tour.Tour) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	d := aggregate.Details()
	result, err := r.coll.UpdateByID(ctx, aggregate.ID().String(), bson.M{
		"$set": bson.M{
			"name":         d.Name,
			"location":     d.Location,
			"price":        d.Price,
			"duration":     d.Duration,
			"rating":       d.Rating,
			"reviewsCount": d.ReviewsCount,
			"isHotDeal":    d.IsHotDeal,
			"description":  d.Description,
			"tagline":      d.Tagline,
			"updatedAt":    aggregate.UpdatedAt(),
		},
	})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return errs.NewObjectNotFoundError("tourId", aggregate.ID())
	}
	return nil
}

// UpdatePrimaryImage matches on the version the aggregate was read at.
func (r *TourRepository) UpdatePrimaryImage(ctx context.Context, aggregate *tour.Tour) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	filter := bson.M{"_id": aggregate.ID().String(), "version": aggregate.Version()}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{
		"$set": bson.M{
			"imageUrl":  aggregate.ImageURL(),
			"updatedAt": aggregate.UpdatedAt(),
		},
		"$inc": bson.M{"version": 1},
	})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		exists, existsErr := r.Exists(ctx, aggregate.ID())
		if existsErr != nil {
			return existsErr
		}
		if !exists {
			return errs.NewObjectNotFoundError("tourId", aggregate.ID())
		}
		return errs.NewVersionIsInvalidError("tour", aggregate.Version())
	}
	return nil
}

func (r *TourRepository) Get(ctx context.Context, id kernel.UUID) (*tour.Tour, error) {
	var doc tourDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewObjectNotFoundError("tourId", id)
		}
		return nil, err
	}
	return doc.toDomain()
}

func (r *TourRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": id.String()}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *TourRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return errs.NewObjectNotFoundError("tourId", id)
	}
	return nil
}

func (r *TourRepository) List(ctx context.Context, filter ports.TourFilter, page pagination.Page) ([]*tour.Tour, error) {
	field, ok := tourSortFields[page.SortBy()]
	if !ok {
		field = tourSortFields[pagination.DefaultSortBy]
	}
	dir := 1
	if page.SortOrder() == pagination.Descending {
		dir = -1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: field, Value: dir}, {Key: "_id", Value: dir}}).
		SetSkip(int64(page.Skip())).
		SetLimit(int64(page.Limit()))

	cursor, err := r.coll.Find(ctx, tourQuery(filter), opts)
	if err != nil {
		return nil, err
	}

	var docs []tourDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	tours := make([]*tour.Tour, 0, len(docs))
	for _, doc := range docs {
		t, mapErr := doc.toDomain()
		if mapErr != nil {
			return nil, mapErr
		}
		tours = append(tours, t)
	}
	return tours, nil
}

func (r *TourRepository) Count(ctx context.Context, filter ports.TourFilter) (int64, error) {
	return r.coll.CountDocuments(ctx, tourQuery(filter))
}

func (r *TourRepository) ListIDs(ctx context.Context) ([]kernel.UUID, error) {
	raw, err := r.coll.Distinct(ctx, "_id", bson.M{})
	if err != nil {
		return nil, err
	}
	return parseIDs(raw)
}

func tourQuery(filter ports.TourFilter) bson.M {
	query := bson.M{}
	if filter.HotOnly {
		query["isHotDeal"] = true
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"location": pattern},
			bson.M{"tagline": pattern},
		}
	}
	return query
}

func (d tourDocument) toDomain() (*tour.Tour, error) {
	id, err := kernel.UUIDFromString(d.ID)
	if err != nil {
		return nil, err
	}

	return tour.RestoreTour(id, tour.Details{
		Name:         d.Name,
		Location:     d.Location,
		Price:        d.Price,
		Duration:     d.Duration,
		Rating:       d.Rating,
		ReviewsCount: d.ReviewsCount,
		IsHotDeal:    d.IsHotDeal,
		Description:  d.Description,
		Tagline:      d.Tagline,
	}, d.ImageURL, d.Version, time.Unix(0, d.CreatedAtNs).UTC(), d.UpdatedAt.UTC())
}

// parseIDs converts the result of a Distinct over string keys.
func parseIDs(raw []any) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
