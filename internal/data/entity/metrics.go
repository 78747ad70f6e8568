package entity

// BookingCounts aggregates bookings created inside a time window.
type BookingCounts struct {
	Total     int64
	Pending   int64
	Confirmed int64
	Cancelled int64
}

// RevenueTotals aggregates payments created inside a time window.
type RevenueTotals struct {
	Total              float64
	SuccessfulPayments int64
	FailedPayments     int64
}
