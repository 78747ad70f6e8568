package entity

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type Payment struct {
	BaseSimple
	BookingID       uuid.UUID     `db:"booking_id"`
	Amount          float64       `db:"amount"`
	Currency        string        `db:"currency"`
	Status          PaymentStatus `db:"status"`
	PaymentIntentID string        `db:"payment_intent_id"`
}

// PaymentSummary is the narrow projection attached to listed bookings.
type PaymentSummary struct {
	BookingID       uuid.UUID     `db:"booking_id"`
	Status          PaymentStatus `db:"status"`
	PaymentIntentID string        `db:"payment_intent_id"`
}
