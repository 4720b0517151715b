package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type PricingCard struct {
	Id           primitive.ObjectID `json:"_id" bson:"_id"`
	Title        string             `json:"title" bson:"title" validate:"notblank"`
	Subtitle     string             `json:"subtitle" bson:"subtitle" validate:"notblank"`
	Price        FlexString         `json:"price" bson:"price" validate:"notblank"`
	PriceUnit    string             `json:"priceUnit" bson:"priceUnit"`
	Features     []string           `json:"features" bson:"features"`
	IsPopular    bool               `json:"isPopular" bson:"isPopular"`
	DisplayOrder int                `json:"displayOrder" bson:"displayOrder"`
	IsActive     *bool              `json:"isActive" bson:"isActive"`
	BgGradient   string             `json:"bgGradient" bson:"bgGradient"`
	CreatedAt    Date               `json:"createdAt" bson:"createdAt"`
	UpdatedAt    Date               `json:"updatedAt" bson:"updatedAt"`
}
