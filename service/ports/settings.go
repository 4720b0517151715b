package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"travel-cms/model"
)

type SettingsRepo interface {
	Get(ctx context.Context) (model.Settings, error)
	Create(ctx context.Context, s model.Settings) error
	Replace(ctx context.Context, s model.Settings) error
	Upsert(ctx context.Context, fields, onInsert bson.M) (model.Settings, error)
}
