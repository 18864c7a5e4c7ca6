package adaptor

import (
	"net/http"

	"marketplace-admin/internal/usecase"
	"marketplace-admin/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log,
	}
}

// GetStats handles GET /api/dashboard/stats. Always answers 200; a backend
// failure degrades to zeroed stats inside the service.
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := h.service.GetDashboardStats(r.Context())
	utils.ResponseSuccess(w, "Dashboard stats retrieved successfully", stats)
}

// GetOrderStats handles GET /api/dashboard/order-stats
func (h *DashboardHandler) GetOrderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetOrderStats(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get order stats")
		return
	}

	utils.ResponseSuccess(w, "Order stats retrieved successfully", stats)
}
