package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Travell struct {
	Id           primitive.ObjectID `json:"_id" bson:"_id"`
	Name         string             `json:"name" bson:"name" validate:"notblank"`
	Slug         string             `json:"slug" bson:"slug"`
	Image        string             `json:"image" bson:"image" validate:"notblank"`
	Seats        int                `json:"seats" bson:"seats" validate:"gt=0"`
	PricePerKm   Amount             `json:"pricePerKm" bson:"pricePerKm" validate:"gte=0,amount"`
	Features     []string           `json:"features" bson:"features"`
	DisplayOrder int                `json:"displayOrder" bson:"displayOrder"`
	IsActive     *bool              `json:"isActive" bson:"isActive"`
	CreatedAt    Date               `json:"createdAt" bson:"createdAt"`
	UpdatedAt    Date               `json:"updatedAt" bson:"updatedAt"`
}
