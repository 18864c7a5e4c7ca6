package wire

import (
	"marketplace-admin/internal/adaptor"
	"marketplace-admin/internal/data/repository"
	"marketplace-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireMenu configures menu management routes
func wireMenu(
	r chi.Router,
	menuHandler *adaptor.MenuHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(session(repo, config, log)).Route("/api/menus", func(r chi.Router) {
		r.Get("/", menuHandler.GetMenus)
		r.Patch("/{id}/availability", menuHandler.UpdateMenuAvailability)
		r.Delete("/{id}", menuHandler.DeleteMenu)
	})
}
