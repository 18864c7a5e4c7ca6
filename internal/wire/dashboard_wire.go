package wire

import (
	"marketplace-admin/internal/adaptor"
	"marketplace-admin/internal/data/repository"
	"marketplace-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireDashboard configures the reporting routes
func wireDashboard(
	r chi.Router,
	dashboardHandler *adaptor.DashboardHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(session(repo, config, log)).Route("/api/dashboard", func(r chi.Router) {
		r.Get("/stats", dashboardHandler.GetStats)
		r.Get("/order-stats", dashboardHandler.GetOrderStats)
	})
}
