package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	Id                     primitive.ObjectID `json:"_id" bson:"_id"`
	BookingId              string             `json:"bookingId" bson:"bookingId"`
	Name                   string             `json:"name" bson:"name"`
	Phone                  string             `json:"phone" bson:"phone"`
	TravelDate             Date               `json:"travelDate" bson:"travelDate"`
	VehicleType            string             `json:"vehicleType" bson:"vehicleType"`
	AdditionalRequirements string             `json:"additionalRequirements" bson:"additionalRequirements"`
	Status                 BookingStatus      `json:"status" bson:"status"`
	CreatedAt              Date               `json:"createdAt" bson:"createdAt"`
	UpdatedAt              Date               `json:"updatedAt" bson:"updatedAt"`
}

// BookingUpdate carries the admin-editable booking fields; nil means unchanged.
type BookingUpdate struct {
	Name                   *string        `json:"name"`
	Phone                  *string        `json:"phone"`
	TravelDate             *Date          `json:"travelDate"`
	VehicleType            *string        `json:"vehicleType"`
	AdditionalRequirements *string        `json:"additionalRequirements"`
	Status                 *BookingStatus `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
}
