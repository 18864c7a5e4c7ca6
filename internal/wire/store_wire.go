package wire

import (
	"marketplace-admin/internal/adaptor"
	"marketplace-admin/internal/data/repository"
	"marketplace-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireStore configures store management routes
func wireStore(
	r chi.Router,
	storeHandler *adaptor.StoreHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(session(repo, config, log)).Route("/api/stores", func(r chi.Router) {
		r.Get("/", storeHandler.GetStores)
		r.Get("/{id}", storeHandler.GetStoreDetail)
		r.Patch("/{id}/status", storeHandler.UpdateStoreStatus)
		r.Delete("/{id}", storeHandler.DeleteStore)
	})
}
