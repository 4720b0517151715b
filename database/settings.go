package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"travel-cms/model"
)

type SettingsRepository struct {
	store[model.Settings]
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{store[model.Settings]{
		coll:   db.Collection(SettingsCollection),
		entity: "settings",
		unique: "type",
		key:    func(s model.Settings) string { return s.Type },
	}}
}

func (r *SettingsRepository) Get(ctx context.Context) (model.Settings, error) {
	return r.findOne(ctx, bson.M{"type": model.SiteSettingsType})
}

func (r *SettingsRepository) Create(ctx context.Context, s model.Settings) error {
	return r.insert(ctx, s)
}

func (r *SettingsRepository) Replace(ctx context.Context, s model.Settings) error {
	return r.replace(ctx, s.Id, s)
}

// Upsert applies fields with $set to the site settings document, creating
// it from onInsert when missing, and returns the result.
func (r *SettingsRepository) Upsert(ctx context.Context, fields, onInsert bson.M) (model.Settings, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	update := bson.M{"$set": fields}
	if len(onInsert) > 0 {
		update["$setOnInsert"] = onInsert
	}

	var s model.Settings
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"type": model.SiteSettingsType},
		update,
		opts,
	).Decode(&s)
	if err != nil {
		return s, fmt.Errorf("upsert settings: %w", err)
	}
	return s, nil
}
