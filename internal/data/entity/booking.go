package entity

import (
	"encoding/json"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusFailed    BookingStatus = "failed"
)

// ContactInfo is stored as jsonb; email and phone are searchable.
type ContactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Booking is created by the checkout flow and only read here.
type Booking struct {
	Base
	Reference     string          `db:"reference"`
	UserID        string          `db:"user_id"`
	Status        BookingStatus   `db:"status"`
	TotalAmount   float64         `db:"total_amount"`
	Currency      string          `db:"currency"`
	ContactInfo   ContactInfo     `db:"contact_info"`
	FlightDetails json.RawMessage `db:"flight_details"`

	Payments []PaymentSummary `db:"-"`
}
