package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string
type PaymentStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusAccepted  BookingStatus = "accepted"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCompleted BookingStatus = "completed"

	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// bookingTransitions is the legal status graph. rejected and completed
// are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:  {BookingStatusAccepted, BookingStatusRejected},
	BookingStatusAccepted: {BookingStatusCompleted},
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AllowedSourceStatuses returns every status from which target is
// reachable. Repositories use this as the precondition filter on
// status updates so that racing transitions cannot both win.
func AllowedSourceStatuses(target BookingStatus) []BookingStatus {
	var sources []BookingStatus
	for from, nexts := range bookingTransitions {
		for _, next := range nexts {
			if next == target {
				sources = append(sources, from)
			}
		}
	}
	return sources
}

type Booking struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VehicleID       primitive.ObjectID `json:"vehicle_id" bson:"vehicle_id" validate:"required"`
	RenterID        primitive.ObjectID `json:"renter_id" bson:"renter_id" validate:"required"`
	StartDate       time.Time          `json:"start_date" bson:"start_date" validate:"required"`
	EndDate         time.Time          `json:"end_date" bson:"end_date" validate:"required"`
	TotalAmount     float64            `json:"total_amount" bson:"total_amount" default:"0"`
	Status          BookingStatus      `json:"status" bson:"status" default:"pending"`
	OwnerResponseAt *time.Time         `json:"owner_response_at" bson:"owner_response_at"`
	CompletedAt     *time.Time         `json:"completed_at" bson:"completed_at"`
	PaymentStatus   PaymentStatus      `json:"payment_status" bson:"payment_status" default:"unpaid"`
	UTRNumber       string             `json:"utr_number" bson:"utr_number"`
	Review          string             `json:"review" bson:"review"`
	Rating          int                `json:"rating" bson:"rating"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}
