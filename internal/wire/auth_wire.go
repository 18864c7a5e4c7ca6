package wire

import (
	"marketplace-admin/internal/adaptor"
	"marketplace-admin/internal/data/repository"
	"marketplace-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireAuth configures the public login/logout routes and the session probe
func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public
	r.Post("/api/login", authHandler.Login)
	r.Post("/api/logout", authHandler.Logout)

	// Requires a valid session cookie
	r.With(session(repo, config, log)).Get("/api/me", authHandler.Me)
}
