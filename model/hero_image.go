package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type HeroImage struct {
	Id           primitive.ObjectID `json:"_id" bson:"_id"`
	Url          string             `json:"url" bson:"url" validate:"notblank"`
	PublicId     string             `json:"publicId" bson:"publicId"`
	DisplayOrder int                `json:"displayOrder" bson:"displayOrder"`
	IsActive     *bool              `json:"isActive" bson:"isActive"`
	CreatedAt    Date               `json:"createdAt" bson:"createdAt"`
	UpdatedAt    Date               `json:"updatedAt" bson:"updatedAt"`
}
