package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type TourCategory string

const (
	CategoryIndian        TourCategory = "indian"
	CategoryInternational TourCategory = "international"
)

type TourStatus string

const (
	TourActive TourStatus = "active"
	TourDraft  TourStatus = "draft"
)

type ItineraryDay struct {
	Day         int    `json:"day" bson:"day"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}

type TourImages struct {
	Hero    string   `json:"hero" bson:"hero"`
	Gallery []string `json:"gallery" bson:"gallery"`
}

type DateSlot struct {
	StartDate      Date `json:"startDate" bson:"startDate"`
	EndDate        Date `json:"endDate" bson:"endDate"`
	SpotsAvailable int  `json:"spotsAvailable" bson:"spotsAvailable"`
}

type Tour struct {
	Id             primitive.ObjectID `json:"_id" bson:"_id"`
	Title          string             `json:"title" bson:"title" validate:"notblank"`
	Slug           string             `json:"slug" bson:"slug"`
	Category       TourCategory       `json:"category" bson:"category" validate:"oneof=indian international"`
	Location       string             `json:"location" bson:"location" validate:"notblank"`
	Country        string             `json:"country" bson:"country" validate:"notblank"`
	Duration       string             `json:"duration" bson:"duration" validate:"notblank"`
	Price          Amount             `json:"price" bson:"price" validate:"gte=0,amount"`
	Currency       string             `json:"currency" bson:"currency"`
	Difficulty     string             `json:"difficulty" bson:"difficulty" validate:"oneof=Easy Moderate Challenging"`
	GroupSize      string             `json:"groupSize" bson:"groupSize"`
	Rating         float64            `json:"rating" bson:"rating"`
	Reviews        int                `json:"reviews" bson:"reviews"`
	Description    string             `json:"description" bson:"description" validate:"notblank"`
	Highlights     []string           `json:"highlights" bson:"highlights"`
	Itinerary      []ItineraryDay     `json:"itinerary" bson:"itinerary"`
	Inclusions     []string           `json:"inclusions" bson:"inclusions"`
	Exclusions     []string           `json:"exclusions" bson:"exclusions"`
	Images         TourImages         `json:"images" bson:"images"`
	AvailableDates []DateSlot         `json:"availableDates" bson:"availableDates"`
	Featured       bool               `json:"featured" bson:"featured"`
	Status         TourStatus         `json:"status" bson:"status" validate:"oneof=active draft"`
	CreatedAt      Date               `json:"createdAt" bson:"createdAt"`
	UpdatedAt      Date               `json:"updatedAt" bson:"updatedAt"`
}

// TourFilter narrows the public tours listing. Empty fields match everything.
type TourFilter struct {
	Category TourCategory
	Status   TourStatus
}
