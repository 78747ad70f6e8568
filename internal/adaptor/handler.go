package adaptor

import (
	"errors"
	"net/http"

	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Booking   *BookingHandler
	Dashboard *DashboardHandler
	Health    *HealthHandler
	Flight    *FlightHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking:   NewBookingHandler(service.Booking, log),
		Dashboard: NewDashboardHandler(service.Dashboard, log),
		Health:    NewHealthHandler(service.Health, log),
		Flight:    NewFlightHandler(service.Flight, log),
	}
}

// handleServiceError maps the usecase error taxonomy onto the fixed error body.
// Internal detail goes to the log only.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, "Authentication required")

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "Admin access required")

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Not found")

	case errors.Is(err, usecase.ErrInvalidInput):
		log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrUnavailable):
		log.Error(operation+" failed - unavailable", zap.Error(err))
		utils.ResponseUnavailable(w, "Service unavailable")

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w)
	}
}
