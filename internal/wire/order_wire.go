package wire

import (
	"marketplace-admin/internal/adaptor"
	"marketplace-admin/internal/data/repository"
	"marketplace-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireOrder configures order management routes
func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(session(repo, config, log)).Route("/api/orders", func(r chi.Router) {
		r.Get("/", orderHandler.GetOrders)
		r.Get("/{id}", orderHandler.GetOrderDetail)
		r.Patch("/{id}/status", orderHandler.UpdateOrderStatus)
		r.Patch("/{id}/payment", orderHandler.UpdatePaymentStatus)
		r.Delete("/{id}", orderHandler.DeleteOrder)
	})
}
