package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"travel-cms/model"
)

type BookingRepository struct {
	store[model.Booking]
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{store[model.Booking]{
		coll:   db.Collection(BookingsCollection),
		entity: "booking",
		unique: "bookingId",
		key:    func(b model.Booking) string { return b.BookingId },
	}}
}

func (r *BookingRepository) List(ctx context.Context) ([]model.Booking, error) {
	return r.find(ctx, bson.M{}, bson.D{{Key: "createdAt", Value: -1}})
}

// Find accepts either the document id or the public booking reference.
func (r *BookingRepository) Find(ctx context.Context, key string) (model.Booking, error) {
	if oid, err := primitive.ObjectIDFromHex(key); err == nil {
		return r.findOne(ctx, bson.M{"$or": bson.A{
			bson.M{"_id": oid},
			bson.M{"bookingId": key},
		}})
	}
	return r.findOne(ctx, bson.M{"bookingId": key})
}

func (r *BookingRepository) Create(ctx context.Context, b model.Booking) error {
	return r.insert(ctx, b)
}

func (r *BookingRepository) Replace(ctx context.Context, b model.Booking) error {
	return r.replace(ctx, b.Id, b)
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
