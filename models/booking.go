package models

import "time"

// Booking is one row in the bookings ledger. Every completed flow ends with exactly
// one of these.
type Booking struct {
	ID             string                 `bson:"id" json:"bookingId"`
	BookingType    string                 `bson:"bookingType" json:"bookingType"`
	UserID         string                 `bson:"userId" json:"userId"`
	ItemID         string                 `bson:"itemId" json:"itemId"`
	BookingDetails map[string]interface{} `bson:"bookingDetails" json:"bookingDetails"`
	PaymentStatus  string                 `bson:"paymentStatus" json:"paymentStatus"`
	TotalPrice     float64                `bson:"totalPrice" json:"totalPrice"`
	Currency       string                 `bson:"currency" json:"currency"`
	BookingDate    time.Time              `bson:"bookingDate" json:"bookingDate"`
	StartDate      string                 `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate        string                 `bson:"endDate,omitempty" json:"endDate,omitempty"`
	CreatedAt      time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time              `bson:"updatedAt" json:"updatedAt"`
}
