package usecase

import (
	"flight-booking/internal/data/repository"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Booking   BookingService
	Dashboard DashboardService
	Health    HealthService
	Flight    FlightService
}

func NewService(repo *repository.Repository, backend FlightBackend, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Booking:   NewBookingService(repo, log),
		Dashboard: NewDashboardService(repo, log),
		Health:    NewHealthService(repo.Health, config.Presence(), log),
		Flight:    NewFlightService(backend, log),
	}
}
