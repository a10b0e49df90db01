package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingDelivered BookingStatus = "delivered"
	BookingCollected BookingStatus = "collected"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Booking is the durable record written when a customer submits the final step.
type Booking struct {
	BookingID         string            `bson:"bookingId" json:"bookingId"`
	UserID            string            `bson:"userId" json:"userId"`
	Address           Address           `bson:"address" json:"address"`
	WasteTypes        []string          `bson:"wasteTypes" json:"wasteTypes"`
	SelectedSkip      *SkipSnapshot     `bson:"selectedSkip,omitempty" json:"selectedSkip"`
	Placement         Placement         `bson:"placement" json:"placement"`
	DeliveryDate      *time.Time        `bson:"deliveryDate,omitempty" json:"deliveryDate"`
	CollectionDate    *time.Time        `bson:"collectionDate,omitempty" json:"collectionDate"`
	PermitRequired    bool              `bson:"permitRequired" json:"permitRequired"`
	AdditionalCharges AdditionalCharges `bson:"additionalCharges" json:"additionalCharges"`
	TotalAmount       Money             `bson:"totalAmount" json:"totalAmount"`
	Status            BookingStatus     `bson:"status" json:"status"`
	PaymentStatus     PaymentStatus     `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt         time.Time         `bson:"createdAt" json:"createdAt"`
}

// BookingInput is the client payload for POST /api/bookings. Server-owned fields
// (ids, status, totals, derived dates) are not accepted from the client.
type BookingInput struct {
	Address           Address           `json:"address"`
	WasteTypes        []string          `json:"wasteTypes"`
	SelectedSkip      *SkipSnapshot     `json:"selectedSkip"`
	Placement         Placement         `json:"placement"`
	DeliveryDate      *time.Time        `json:"deliveryDate"`
	AdditionalCharges AdditionalCharges `json:"additionalCharges"`
}
