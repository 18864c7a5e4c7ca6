package wire

import (
	"net/http"

	"marketplace-admin/internal/adaptor"
	"marketplace-admin/internal/data/repository"
	"marketplace-admin/internal/usecase"
	"marketplace-admin/pkg/broker"
	"marketplace-admin/pkg/cache"
	"marketplace-admin/pkg/middleware"
	"marketplace-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers, and routes
func Wiring(repo *repository.Repository, config *utils.Config, publisher broker.Publisher, stats *cache.StatsCache, logger *zap.Logger) *App {
	service := usecase.NewService(repo, publisher, stats, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.FrontendOrigin))

	// Routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireDashboard(r, handler.Dashboard, repo, config, logger)
	wireUser(r, handler.User, repo, config, logger)
	wireStore(r, handler.Store, repo, config, logger)
	wireOrder(r, handler.Order, repo, config, logger)
	wireMenu(r, handler.Menu, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

// session returns the admin-session middleware shared by protected routes.
func session(repo *repository.Repository, config *utils.Config, logger *zap.Logger) func(http.Handler) http.Handler {
	return middleware.AdminSession(repo.Admin, config.Session.CookieName, logger)
}
