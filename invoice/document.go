// Package invoice lays out travel and tour bills as PDF documents.
package invoice

import (
	"fmt"
	"strings"
	"time"

	"travel-cms/billing"
	"travel-cms/model"
)

type Kind string

const (
	KindTravel Kind = "travel"
	KindTour   Kind = "tour"
)

type Field struct {
	Label string
	Value string
}

type SummaryLine struct {
	Label  string
	Amount float64
}

// Document is the printable view shared by travel and tour bills.
type Document struct {
	Kind         Kind
	BillNo       string
	Date         time.Time
	Customer     []Field
	Details      []Field
	DetailsTitle string
	Itinerary    []model.ItineraryDay
	Summary      []SummaryLine
	GrandTotal   float64
	AmountWords  string
	RouteDetails string
	TotalAmount  float64
	Advance      float64
}

// Title returns the band heading and, for settled bills, the badge text.
// A bill counts as settled when the advance covers the total amount.
func (d Document) Title() (string, string) {
	noun := "TRAVEL"
	if d.Kind == KindTour {
		noun = "TOUR"
	}
	if billing.PaidInFull(d.Advance, d.TotalAmount) {
		return noun + " RECEIPT", "PAID IN FULL"
	}
	return noun + " BILL", ""
}

func FromBill(b model.Bill) Document {
	return Document{
		Kind:   KindTravel,
		BillNo: b.BillNo.String(),
		Date:   b.Date.Time,
		Customer: []Field{
			{"Name", b.CustomerName},
			{"Contact", b.ContactNo},
			{"Address", b.Address},
		},
		DetailsTitle: "Vehicle & Travel Details",
		Details: []Field{
			{"Vehicle No", b.VehicleNo},
			{"Seats", fmt.Sprint(b.Seats)},
			{"Destination", b.Destination},
			{"From", billing.FormatDate(b.DateFrom.Time)},
			{"To", billing.FormatDate(b.DateTo.Time)},
		},
		Summary: []SummaryLine{
			{"Rate per KM", b.RatePerKm.Float()},
			{"Total Amount", b.TotalAmount.Float()},
			{"Advance Paid", b.Advance.Float()},
			{"Balance", b.Balance.Float()},
			{"Driver Batta", b.DriverBatta.Float()},
			{"Extra Charges", b.ExtraCharges.Float()},
		},
		GrandTotal:   b.GrandTotal.Float(),
		AmountWords:  b.AmountWords,
		RouteDetails: strings.TrimSpace(b.RouteDetails),
		TotalAmount:  b.TotalAmount.Float(),
		Advance:      b.Advance.Float(),
	}
}

func FromTourBill(b model.TourBill) Document {
	return Document{
		Kind:   KindTour,
		BillNo: b.BillNo.String(),
		Date:   b.Date.Time,
		Customer: []Field{
			{"Name", b.CustomerName},
			{"Contact", b.ContactNo},
			{"Address", b.Address},
			{"Persons", billing.FormatINR(b.NumberOfPersons.Float())},
		},
		DetailsTitle: "Tour Details",
		Details: []Field{
			{"Tour", b.TourName},
			{"Destination", b.Destination},
			{"Duration", b.Duration},
			{"From", billing.FormatDate(b.DateFrom.Time)},
			{"To", billing.FormatDate(b.DateTo.Time)},
		},
		Itinerary: b.Itinerary,
		Summary: []SummaryLine{
			{"Price per Person", b.PricePerPerson.Float()},
			{"Total Amount", b.TotalAmount.Float()},
			{"Advance Paid", b.Advance.Float()},
			{"Balance", b.Balance.Float()},
			{"Extra Charges", b.ExtraCharges.Float()},
		},
		GrandTotal:   b.GrandTotal.Float(),
		AmountWords:  b.AmountWords,
		RouteDetails: strings.TrimSpace(b.RouteDetails),
		TotalAmount:  b.TotalAmount.Float(),
		Advance:      b.Advance.Float(),
	}
}
