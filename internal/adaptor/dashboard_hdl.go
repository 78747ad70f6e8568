package adaptor

import (
	"net/http"

	"flight-booking/internal/dto/request"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log.With(zap.String("handler", "dashboard")),
	}
}

// GetDashboard handles GET /api/admin/dashboard?timeRange=day|week|month|year (admin)
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	timeRange := request.ParseTimeRange(r.URL.Query().Get("timeRange"))

	dashboard, err := h.service.GetDashboard(r.Context(), timeRange)
	if err != nil {
		handleServiceError(w, h.log, err, "get dashboard")
		return
	}

	utils.ResponseSuccess(w, dashboard)
}
