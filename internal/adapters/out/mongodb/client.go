// Package mongodb is the document-store adapter. Every write touches one
// document; the application layer never relies on a transaction spanning
// documents, so the unit of work here has no transaction of its own.
//
// BSON dates keep milliseconds only, so each document also stores its
// creation time in nanoseconds (createdAtNs) and every creation-order sort
// uses that field.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	toursCollection     = "tours"
	imagesCollection    = "tour_images"
	linesCollection     = "tour_inclusion_exclusions"
	itineraryCollection = "tour_itinerary_items"
	inquiriesCollection = "inquiries"

	connectTimeout = 10 * time.Second
)

// Connect opens a client for uri and pings the primary.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	serverAPIOptions := options.ServerAPI(options.ServerAPIVersion1)
	clientOptions := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(serverAPIOptions)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the secondary indexes the repositories query by.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		toursCollection: {
			{Keys: bson.D{{Key: "isHotDeal", Value: 1}, {Key: "createdAtNs", Value: -1}}},
		},
		imagesCollection: {
			{Keys: bson.D{{Key: "tourId", Value: 1}, {Key: "createdAtNs", Value: 1}}},
		},
		linesCollection: {
			{Keys: bson.D{{Key: "tourId", Value: 1}, {Key: "type", Value: 1}}},
		},
		itineraryCollection: {
			{Keys: bson.D{{Key: "tourId", Value: 1}, {Key: "dayNumber", Value: 1}}},
		},
		inquiriesCollection: {
			{Keys: bson.D{{Key: "createdAtNs", Value: -1}}},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}
