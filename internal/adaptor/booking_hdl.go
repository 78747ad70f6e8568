package adaptor

import (
	"net/http"

	"flight-booking/internal/dto/request"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// ListBookings handles GET /api/admin/bookings (admin)
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	query, validationErrors := request.ParseListBookingsQuery(r.URL.Query())
	if len(validationErrors) > 0 {
		h.log.Warn("Booking query validation failed",
			zap.String("errors", utils.FormatValidationErrors(validationErrors)))
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	bookings, err := h.service.ListBookings(r.Context(), query)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, bookings)
}

// GetBooking handles GET /api/admin/bookings/{reference} (admin)
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	booking, err := h.service.GetBooking(r.Context(), reference)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, booking)
}

// ListUserBookings handles GET /api/bookings (protected)
func (h *BookingHandler) ListUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query, validationErrors := request.ParseListBookingsQuery(r.URL.Query())
	if len(validationErrors) > 0 {
		h.log.Warn("Booking query validation failed",
			zap.String("errors", utils.FormatValidationErrors(validationErrors)))
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	bookings, err := h.service.ListUserBookings(r.Context(), userID, query)
	if err != nil {
		handleServiceError(w, h.log, err, "list user bookings")
		return
	}

	utils.ResponseSuccess(w, bookings)
}

// GetUserBooking handles GET /api/bookings/{reference} (protected)
func (h *BookingHandler) GetUserBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	booking, err := h.service.GetUserBooking(r.Context(), userID, chi.URLParam(r, "reference"))
	if err != nil {
		handleServiceError(w, h.log, err, "get user booking")
		return
	}

	utils.ResponseSuccess(w, booking)
}
