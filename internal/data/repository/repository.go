package repository

import (
	"flight-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Booking BookingRepository
	Payment PaymentRepository
	Metrics MetricsRepository
	Health  HealthRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Booking: NewBookingRepository(db, log),
		Payment: NewPaymentRepository(db, log),
		Metrics: NewMetricsRepository(db, log),
		Health:  NewHealthRepository(db, log),
	}
}
