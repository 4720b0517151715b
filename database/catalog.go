package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"travel-cms/model"
)

// activeFilter maps the status query parameter. An empty status means
// active only unless allByDefault is set.
func activeFilter(status string, allByDefault bool) bson.M {
	switch status {
	case "all":
		return bson.M{}
	case "active":
		return bson.M{"isActive": true}
	case "inactive":
		return bson.M{"isActive": false}
	}
	if allByDefault {
		return bson.M{}
	}
	return bson.M{"isActive": true}
}

type TravellRepository struct {
	store[model.Travell]
}

func NewTravellRepository(db *mongo.Database) *TravellRepository {
	return &TravellRepository{store[model.Travell]{
		coll:   db.Collection(TravellsCollection),
		entity: "travell",
		unique: "slug",
		key:    func(t model.Travell) string { return t.Slug },
	}}
}

func (r *TravellRepository) List(ctx context.Context, status string) ([]model.Travell, error) {
	return r.find(ctx, activeFilter(status, true), bson.D{
		{Key: "displayOrder", Value: 1},
		{Key: "createdAt", Value: -1},
	})
}

func (r *TravellRepository) Get(ctx context.Context, id string) (model.Travell, error) {
	return r.get(ctx, id)
}

func (r *TravellRepository) Create(ctx context.Context, t model.Travell) error {
	return r.insert(ctx, t)
}

func (r *TravellRepository) Replace(ctx context.Context, t model.Travell) error {
	return r.replace(ctx, t.Id, t)
}

func (r *TravellRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

type PricingRepository struct {
	store[model.PricingCard]
}

func NewPricingRepository(db *mongo.Database) *PricingRepository {
	return &PricingRepository{store[model.PricingCard]{
		coll:   db.Collection(PricingCollection),
		entity: "pricing card",
	}}
}

func (r *PricingRepository) List(ctx context.Context, status string) ([]model.PricingCard, error) {
	return r.find(ctx, activeFilter(status, false), bson.D{
		{Key: "displayOrder", Value: 1},
		{Key: "createdAt", Value: 1},
	})
}

func (r *PricingRepository) Get(ctx context.Context, id string) (model.PricingCard, error) {
	return r.get(ctx, id)
}

func (r *PricingRepository) Create(ctx context.Context, p model.PricingCard) error {
	return r.insert(ctx, p)
}

func (r *PricingRepository) Replace(ctx context.Context, p model.PricingCard) error {
	return r.replace(ctx, p.Id, p)
}

func (r *PricingRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

type HeroImageRepository struct {
	store[model.HeroImage]
}

func NewHeroImageRepository(db *mongo.Database) *HeroImageRepository {
	return &HeroImageRepository{store[model.HeroImage]{
		coll:   db.Collection(HeroImagesCollection),
		entity: "hero image",
	}}
}

func (r *HeroImageRepository) List(ctx context.Context) ([]model.HeroImage, error) {
	return r.find(ctx, bson.M{"isActive": true}, bson.D{
		{Key: "displayOrder", Value: 1},
		{Key: "createdAt", Value: -1},
	})
}

func (r *HeroImageRepository) Get(ctx context.Context, id string) (model.HeroImage, error) {
	return r.get(ctx, id)
}

func (r *HeroImageRepository) Create(ctx context.Context, h model.HeroImage) error {
	return r.insert(ctx, h)
}

func (r *HeroImageRepository) Replace(ctx context.Context, h model.HeroImage) error {
	return r.replace(ctx, h.Id, h)
}

func (r *HeroImageRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
