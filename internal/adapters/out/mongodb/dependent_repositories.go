package mongodb

import (
	"context"
	"errors"
	"time"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/core/ports"
	"tours/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	_ ports.TourImageRepository = &TourImageRepository{}
	_ ports.TourLineRepository  = &TourLineRepository{}
	_ ports.ItineraryRepository = &ItineraryRepository{}
)

// creationOrder sorts by creation time, then id.
var creationOrder = bson.D{{Key: "createdAtNs", Value: 1}, {Key: "_id", Value: 1}}

type imageDocument struct {
	ID          string    `bson:"_id"`
	TourID      string    `bson:"tourId"`
	ImageURL    string    `bson:"imageUrl"`
	CreatedAt   time.Time `bson:"createdAt"`
	CreatedAtNs int64     `bson:"createdAtNs"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

func (d imageDocument) toDomain() (*tour.Image, error) {
	id, tourID, err := parsePair(d.ID, d.TourID)
	if err != nil {
		return nil, err
	}
	return tour.RestoreImage(id, tourID, d.ImageURL, time.Unix(0, d.CreatedAtNs).UTC(), d.UpdatedAt.UTC())
}

type TourImageRepository struct {
	coll *mongo.Collection
}

func (r *TourImageRepository) Add(ctx context.Context, image *tour.Image) error {
	if err := image.Validate(); err != nil {
		return err
	}

	_, err := r.coll.InsertOne(ctx, imageDocument{
		ID:          image.ID().String(),
		TourID:      image.TourID().String(),
		ImageURL:    image.ImageURL(),
		CreatedAt:   image.CreatedAt(),
		CreatedAtNs: image.CreatedAt().UnixNano(),
		UpdatedAt:   image.UpdatedAt(),
	})
	return err
}

func (r *TourImageRepository) ListByTour(ctx context.Context, tourID kernel.UUID) ([]*tour.Image, error) {
	var docs []imageDocument
	if err := findAll(ctx, r.coll, bson.M{"tourId": tourID.String()}, creationOrder, &docs); err != nil {
		return nil, err
	}

	images := make([]*tour.Image, 0, len(docs))
	for _, doc := range docs {
		image, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		images = append(images, image)
	}
	return images, nil
}

func (r *TourImageRepository) DeleteScoped(ctx context.Context, tourID kernel.UUID, imageID kernel.UUID) (*tour.Image, error) {
	var doc imageDocument
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": imageID.String(), "tourId": tourID.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewObjectNotFoundError("imageId", imageID)
		}
		return nil, err
	}
	return doc.toDomain()
}

func (r *TourImageRepository) DeleteByTour(ctx context.Context, tourID kernel.UUID) (int64, error) {
	return deleteByTour(ctx, r.coll, tourID)
}

func (r *TourImageRepository) ListTourIDs(ctx context.Context) ([]kernel.UUID, error) {
	return distinctTourIDs(ctx, r.coll)
}

type lineDocument struct {
	ID          string    `bson:"_id"`
	TourID      string    `bson:"tourId"`
	Type        string    `bson:"type"`
	Description string    `bson:"description"`
	CreatedAt   time.Time `bson:"createdAt"`
	CreatedAtNs int64     `bson:"createdAtNs"`
}

func (d lineDocument) toDomain() (*tour.Line, error) {
	id, tourID, err := parsePair(d.ID, d.TourID)
	if err != nil {
		return nil, err
	}
	lineType, err := tour.ParseLineType(d.Type)
	if err != nil {
		return nil, err
	}
	return tour.RestoreLine(id, tourID, d.Description, lineType, time.Unix(0, d.CreatedAtNs).UTC())
}

type TourLineRepository struct {
	coll *mongo.Collection
}

func (r *TourLineRepository) Add(ctx context.Context, line *tour.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	_, err := r.coll.InsertOne(ctx, lineDocument{
		ID:          line.ID().String(),
		TourID:      line.TourID().String(),
		Type:        line.Type().String(),
		Description: line.Description(),
		CreatedAt:   line.CreatedAt(),
		CreatedAtNs: line.CreatedAt().UnixNano(),
	})
	return err
}

func (r *TourLineRepository) ListByTour(ctx context.Context, tourID kernel.UUID, lineType tour.LineType) ([]*tour.Line, error) {
	var docs []lineDocument
	filter := bson.M{"tourId": tourID.String(), "type": lineType.String()}
	if err := findAll(ctx, r.coll, filter, creationOrder, &docs); err != nil {
		return nil, err
	}

	lines := make([]*tour.Line, 0, len(docs))
	for _, doc := range docs {
		line, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (r *TourLineRepository) DeleteScoped(
	ctx context.Context,
	tourID kernel.UUID,
	lineType tour.LineType,
	lineID kernel.UUID,
) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{
		"_id":    lineID.String(),
		"tourId": tourID.String(),
		"type":   lineType.String(),
	})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return errs.NewObjectNotFoundError("lineId", lineID)
	}
	return nil
}

func (r *TourLineRepository) DeleteByTour(ctx context.Context, tourID kernel.UUID) (int64, error) {
	return deleteByTour(ctx, r.coll, tourID)
}

func (r *TourLineRepository) ListTourIDs(ctx context.Context) ([]kernel.UUID, error) {
	return distinctTourIDs(ctx, r.coll)
}

type itineraryDocument struct {
	ID          string    `bson:"_id"`
	TourID      string    `bson:"tourId"`
	DayNumber   int       `bson:"dayNumber"`
	Activity    string    `bson:"activity"`
	CreatedAt   time.Time `bson:"createdAt"`
	CreatedAtNs int64     `bson:"createdAtNs"`
}

func (d itineraryDocument) toDomain() (*tour.ItineraryItem, error) {
	id, tourID, err := parsePair(d.ID, d.TourID)
	if err != nil {
		return nil, err
	}
	return tour.RestoreItineraryItem(id, tourID, d.DayNumber, d.Activity, time.Unix(0, d.CreatedAtNs).UTC())
}

type ItineraryRepository struct {
	coll *mongo.Collection
}

func (r *ItineraryRepository) Add(ctx context.Context, item *tour.ItineraryItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	_, err := r.coll.InsertOne(ctx, itineraryDocument{
		ID:          item.ID().String(),
		TourID:      item.TourID().String(),
		DayNumber:   item.DayNumber(),
		Activity:    item.Activity(),
		CreatedAt:   item.CreatedAt(),
		CreatedAtNs: item.CreatedAt().UnixNano(),
	})
	return err
}

func (r *ItineraryRepository) ListByTour(ctx context.Context, tourID kernel.UUID) ([]*tour.ItineraryItem, error) {
	var docs []itineraryDocument
	order := bson.D{{Key: "dayNumber", Value: 1}, {Key: "createdAtNs", Value: 1}, {Key: "_id", Value: 1}}
	if err := findAll(ctx, r.coll, bson.M{"tourId": tourID.String()}, order, &docs); err != nil {
		return nil, err
	}

	items := make([]*tour.ItineraryItem, 0, len(docs))
	for _, doc := range docs {
		item, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *ItineraryRepository) DeleteScoped(ctx context.Context, tourID kernel.UUID, itemID kernel.UUID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": itemID.String(), "tourId": tourID.String()})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return errs.NewObjectNotFoundError("itemId", itemID)
	}
	return nil
}

func (r *ItineraryRepository) DeleteByTour(ctx context.Context, tourID kernel.UUID) (int64, error) {
	return deleteByTour(ctx, r.coll, tourID)
}

func (r *ItineraryRepository) ListTourIDs(ctx context.Context) ([]kernel.UUID, error) {
	return distinctTourIDs(ctx, r.coll)
}

func findAll(ctx context.Context, coll *mongo.Collection, filter bson.M, sort bson.D, out any) error {
	cursor, err := coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

func deleteByTour(ctx context.Context, coll *mongo.Collection, tourID kernel.UUID) (int64, error) {
	result, err := coll.DeleteMany(ctx, bson.M{"tourId": tourID.String()})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func distinctTourIDs(ctx context.Context, coll *mongo.Collection) ([]kernel.UUID, error) {
	raw, err := coll.Distinct(ctx, "tourId", bson.M{})
	if err != nil {
		return nil, err
	}
	return parseIDs(raw)
}

func parsePair(id, tourID string) (kernel.UUID, kernel.UUID, error) {
	parsedID, err := kernel.UUIDFromString(id)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	parsedTourID, err := kernel.UUIDFromString(tourID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return parsedID, parsedTourID, nil
}
