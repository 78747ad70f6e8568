package response

import (
	"encoding/json"
	"time"

	"flight-booking/internal/data/entity"
)

type ContactInfoResponse struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PaymentSummaryResponse exposes only status and intent id, never full payment detail
type PaymentSummaryResponse struct {
	Status          entity.PaymentStatus `json:"status"`
	PaymentIntentID string               `json:"paymentIntentId"`
}

type BookingResponse struct {
	ID            string                   `json:"id"`
	Reference     string                   `json:"reference"`
	UserID        string                   `json:"userId"`
	Status        entity.BookingStatus     `json:"status"`
	TotalAmount   float64                  `json:"totalAmount"`
	Currency      string                   `json:"currency"`
	ContactInfo   ContactInfoResponse      `json:"contactInfo"`
	FlightDetails json.RawMessage          `json:"flightDetails,omitempty"`
	Payments      []PaymentSummaryResponse `json:"payments"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Meta     PaginationMeta    `json:"meta"`
}

// Helper converters
func BookingToResponse(b *entity.Booking) BookingResponse {
	payments := make([]PaymentSummaryResponse, 0, len(b.Payments))
	for _, p := range b.Payments {
		payments = append(payments, PaymentSummaryResponse{
			Status:          p.Status,
			PaymentIntentID: p.PaymentIntentID,
		})
	}

	return BookingResponse{
		ID:          b.ID.String(),
		Reference:   b.Reference,
		UserID:      b.UserID,
		Status:      b.Status,
		TotalAmount: b.TotalAmount,
		Currency:    b.Currency,
		ContactInfo: ContactInfoResponse{
			Email: b.ContactInfo.Email,
			Phone: b.ContactInfo.Phone,
		},
		FlightDetails: b.FlightDetails,
		Payments:      payments,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingToResponse(b))
	}
	return out
}
