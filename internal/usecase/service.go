package usecase

import (
	"context"

	"marketplace-admin/internal/data/repository"
	"marketplace-admin/pkg/broker"
	"marketplace-admin/pkg/cache"

	"go.uber.org/zap"
)

// StatsStore is the dashboard-cache surface the services use.
// *cache.StatsCache implements it; a nil StatsStore disables caching.
type StatsStore interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, keys ...string) error
}

type Service struct {
	Auth      AuthService
	User      UserService
	Store     StoreService
	Menu      MenuService
	Order     OrderService
	Dashboard DashboardService
}

// NewService wires the services. publisher and stats may be nil when the
// broker or cache is not configured.
func NewService(repo *repository.Repository, publisher broker.Publisher, stats *cache.StatsCache, log *zap.Logger) *Service {
	var statsStore StatsStore
	if stats != nil {
		statsStore = stats
	}

	return &Service{
		Auth:      NewAuthService(repo, log),
		User:      NewUserService(repo, statsStore, log),
		Store:     NewStoreService(repo, publisher, statsStore, log),
		Menu:      NewMenuService(repo, log),
		Order:     NewOrderService(repo, publisher, statsStore, log),
		Dashboard: NewDashboardService(repo, statsStore, log),
	}
}
