package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"travel-cms/model"
)

type TourRepository struct {
	store[model.Tour]
}

func NewTourRepository(db *mongo.Database) *TourRepository {
	return &TourRepository{store[model.Tour]{
		coll:   db.Collection(ToursCollection),
		entity: "tour",
		unique: "slug",
		key:    func(t model.Tour) string { return t.Slug },
	}}
}

func (r *TourRepository) List(ctx context.Context, filter model.TourFilter) ([]model.Tour, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	return r.find(ctx, query, bson.D{{Key: "createdAt", Value: -1}})
}

// FindBySlugOrID looks the tour up by slug first, then by id.
func (r *TourRepository) FindBySlugOrID(ctx context.Context, key string) (model.Tour, error) {
	or := bson.A{bson.M{"slug": key}}
	if oid, err := primitive.ObjectIDFromHex(key); err == nil {
		or = append(or, bson.M{"_id": oid})
	}
	return r.findOne(ctx, bson.M{"$or": or})
}

func (r *TourRepository) Get(ctx context.Context, id string) (model.Tour, error) {
	return r.get(ctx, id)
}

func (r *TourRepository) Create(ctx context.Context, tour model.Tour) error {
	return r.insert(ctx, tour)
}

func (r *TourRepository) Replace(ctx context.Context, tour model.Tour) error {
	return r.replace(ctx, tour.Id, tour)
}

func (r *TourRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

func (r *TourRepository) SetDates(ctx context.Context, id primitive.ObjectID, dates []model.DateSlot) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"availableDates": dates}})
	if err != nil {
		return fmt.Errorf("update tour dates: %w", err)
	}
	if res.MatchedCount == 0 {
		return model.NotFound("tour")
	}
	return nil
}
