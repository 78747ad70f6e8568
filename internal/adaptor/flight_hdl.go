package adaptor

import (
	"errors"
	"io"
	"net/http"

	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxForwardBodyBytes = 10 << 20

type FlightHandler struct {
	service usecase.FlightService
	log     *zap.Logger
}

func NewFlightHandler(service usecase.FlightService, log *zap.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		log:     log.With(zap.String("handler", "flight")),
	}
}

// Forward handles POST /api/verteil/{operation} (public)
func (h *FlightHandler) Forward(w http.ResponseWriter, r *http.Request) {
	operation := chi.URLParam(r, "operation")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxForwardBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.ResponseError(w, http.StatusRequestEntityTooLarge, "Request body too large", nil)
			return
		}
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.Forward(r.Context(), operation, body)
	if err != nil {
		handleServiceError(w, h.log, err, "forward "+operation)
		return
	}

	utils.ResponseRaw(w, result.StatusCode, result.Body)
}
