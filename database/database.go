package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ToursCollection      = "tours"
	TravellsCollection   = "travells"
	BookingsCollection   = "bookings"
	PricingCollection    = "pricingcards"
	HeroImagesCollection = "heroimages"
	SettingsCollection   = "settings"
	BillsCollection      = "bills"
	TourBillsCollection  = "tourbills"
)

const connectTimeout = 10 * time.Second

// Connect opens a client for uri and checks that the server answers.
func Connect(ctx context.Context, uri, database string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %w", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("db is not available: %w", err)
	}

	return client.Database(database), nil
}

func Disconnect(ctx context.Context, db *mongo.Database) error {
	return db.Client().Disconnect(ctx)
}

type uniqueIndex struct {
	collection string
	field      string
	sparse     bool
}

var uniqueIndexes = []uniqueIndex{
	{ToursCollection, "slug", false},
	{TravellsCollection, "slug", true},
	{BookingsCollection, "bookingId", false},
	{SettingsCollection, "type", false},
	{BillsCollection, "billNo", false},
	{TourBillsCollection, "billNo", false},
}

// EnsureIndexes creates the unique indexes the repositories rely on to
// detect duplicates.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, idx := range uniqueIndexes {
		opts := options.Index().SetUnique(true)
		if idx.sparse {
			opts.SetSparse(true)
		}
		_, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: idx.field, Value: 1}},
			Options: opts,
		})
		if err != nil {
			return fmt.Errorf("create %s.%s index: %w", idx.collection, idx.field, err)
		}
	}
	return nil
}
