package adaptor

import (
	"net/http"

	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

type HealthHandler struct {
	service usecase.HealthService
	log     *zap.Logger
}

func NewHealthHandler(service usecase.HealthService, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		service: service,
		log:     log.With(zap.String("handler", "health")),
	}
}

// Check handles GET /api/health (public)
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	health, err := h.service.Check(r.Context())
	if err != nil {
		h.log.Warn("Health check failed", zap.Error(err))
		utils.ResponseUnavailable(w, "Database connection failed")
		return
	}

	utils.ResponseSuccess(w, health)
}
