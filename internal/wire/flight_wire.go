package wire

import (
	"flight-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFlight(r chi.Router, flightHandler *adaptor.FlightHandler) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/verteil/{operation} - Forward JSON to the flight backend
	r.Post("/api/verteil/{operation}", flightHandler.Forward)
}

func wireHealth(r chi.Router, healthHandler *adaptor.HealthHandler) {
	// GET /api/health - Data store probe plus configuration presence
	r.Get("/api/health", healthHandler.Check)
}
