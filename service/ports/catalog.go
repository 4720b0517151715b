package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-cms/model"
)

type TourRepo interface {
	List(ctx context.Context, filter model.TourFilter) ([]model.Tour, error)
	FindBySlugOrID(ctx context.Context, key string) (model.Tour, error)
	Get(ctx context.Context, id string) (model.Tour, error)
	Create(ctx context.Context, tour model.Tour) error
	Replace(ctx context.Context, tour model.Tour) error
	Delete(ctx context.Context, id string) error
	SetDates(ctx context.Context, id primitive.ObjectID, dates []model.DateSlot) error
}

type TravellRepo interface {
	List(ctx context.Context, status string) ([]model.Travell, error)
	Get(ctx context.Context, id string) (model.Travell, error)
	Create(ctx context.Context, t model.Travell) error
	Replace(ctx context.Context, t model.Travell) error
	Delete(ctx context.Context, id string) error
}

type PricingRepo interface {
	List(ctx context.Context, status string) ([]model.PricingCard, error)
	Get(ctx context.Context, id string) (model.PricingCard, error)
	Create(ctx context.Context, p model.PricingCard) error
	Replace(ctx context.Context, p model.PricingCard) error
	Delete(ctx context.Context, id string) error
}

type HeroImageRepo interface {
	List(ctx context.Context) ([]model.HeroImage, error)
	Get(ctx context.Context, id string) (model.HeroImage, error)
	Create(ctx context.Context, h model.HeroImage) error
	Replace(ctx context.Context, h model.HeroImage) error
	Delete(ctx context.Context, id string) error
}

type BookingRepo interface {
	List(ctx context.Context) ([]model.Booking, error)
	Find(ctx context.Context, key string) (model.Booking, error)
	Create(ctx context.Context, b model.Booking) error
	Replace(ctx context.Context, b model.Booking) error
	Delete(ctx context.Context, id string) error
}
