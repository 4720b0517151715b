package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Bill struct {
	Id            primitive.ObjectID `json:"_id" bson:"_id"`
	BillNo        FlexString         `json:"billNo" bson:"billNo" validate:"notblank"`
	Date          Date               `json:"date" bson:"date" validate:"required"`
	Seats         int                `json:"seats" bson:"seats" validate:"gte=1"`
	VehicleNo     string             `json:"vehicleNo" bson:"vehicleNo" validate:"notblank"`
	CustomerName  string             `json:"customerName" bson:"customerName" validate:"notblank"`
	ContactNo     string             `json:"contactNo" bson:"contactNo" validate:"notblank"`
	CustomerEmail string             `json:"customerEmail" bson:"customerEmail"`
	Address       string             `json:"address" bson:"address" validate:"notblank"`
	Destination   string             `json:"destination" bson:"destination" validate:"notblank"`
	DateFrom      Date               `json:"dateFrom" bson:"dateFrom" validate:"required"`
	DateTo        Date               `json:"dateTo" bson:"dateTo" validate:"required"`
	RatePerKm     Amount             `json:"ratePerKm" bson:"ratePerKm" validate:"gte=0,amount"`
	TotalAmount   Amount             `json:"totalAmount" bson:"totalAmount" validate:"amount"`
	AmountWords   string             `json:"amountWords" bson:"amountWords"`
	Advance       Amount             `json:"advance" bson:"advance" validate:"amount"`
	Balance       Amount             `json:"balance" bson:"balance"`
	DriverBatta   Amount             `json:"driverBatta" bson:"driverBatta" validate:"amount"`
	ExtraCharges  Amount             `json:"extraCharges" bson:"extraCharges" validate:"amount"`
	GrandTotal    Amount             `json:"grandTotal" bson:"grandTotal"`
	RouteDetails  string             `json:"routeDetails" bson:"routeDetails"`
	CreatedAt     Date               `json:"createdAt" bson:"createdAt"`
}

type TourBill struct {
	Id              primitive.ObjectID `json:"_id" bson:"_id"`
	BillNo          FlexString         `json:"billNo" bson:"billNo" validate:"notblank"`
	Date            Date               `json:"date" bson:"date" validate:"required"`
	CustomerName    string             `json:"customerName" bson:"customerName" validate:"notblank"`
	ContactNo       string             `json:"contactNo" bson:"contactNo" validate:"notblank"`
	CustomerEmail   string             `json:"customerEmail" bson:"customerEmail"`
	Address         string             `json:"address" bson:"address" validate:"notblank"`
	NumberOfPersons Amount             `json:"numberOfPersons" bson:"numberOfPersons" validate:"gt=0,amount"`
	TourId          string             `json:"tourId,omitempty" bson:"tourId,omitempty"`
	TourName        string             `json:"tourName" bson:"tourName" validate:"notblank"`
	Destination     string             `json:"destination" bson:"destination" validate:"notblank"`
	Duration        string             `json:"duration" bson:"duration" validate:"notblank"`
	DateFrom        Date               `json:"dateFrom" bson:"dateFrom" validate:"required"`
	DateTo          Date               `json:"dateTo" bson:"dateTo" validate:"required"`
	Itinerary       []ItineraryDay     `json:"itinerary" bson:"itinerary"`
	PricePerPerson  Amount             `json:"pricePerPerson" bson:"pricePerPerson" validate:"gte=0,amount"`
	TotalAmount     Amount             `json:"totalAmount" bson:"totalAmount"`
	AmountWords     string             `json:"amountWords" bson:"amountWords"`
	Advance         Amount             `json:"advance" bson:"advance" validate:"amount"`
	Balance         Amount             `json:"balance" bson:"balance"`
	ExtraCharges    Amount             `json:"extraCharges" bson:"extraCharges" validate:"amount"`
	GrandTotal      Amount             `json:"grandTotal" bson:"grandTotal"`
	Inclusions      []string           `json:"inclusions" bson:"inclusions"`
	Exclusions      []string           `json:"exclusions" bson:"exclusions"`
	RouteDetails    string             `json:"routeDetails" bson:"routeDetails"`
	CreatedAt       Date               `json:"createdAt" bson:"createdAt"`
}
