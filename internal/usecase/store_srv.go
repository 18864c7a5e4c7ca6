package usecase

import (
	"context"
	"fmt"
	"time"

	"marketplace-admin/internal/data/repository"
	"marketplace-admin/internal/dto/response"
	"marketplace-admin/pkg/broker"
	"marketplace-admin/pkg/cache"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// storeDetailOrderLimit caps the recent orders shown on a store detail.
const storeDetailOrderLimit = 20

type StoreService interface {
	GetStores(ctx context.Context) ([]response.StoreListResponse, error)
	GetStoreDetail(ctx context.Context, storeID string) (*response.StoreDetailResponse, error)
	UpdateStoreStatus(ctx context.Context, storeID string, isActive bool) (*response.StoreResponse, error)
	DeleteStore(ctx context.Context, storeID string) error
}

type storeService struct {
	repo      *repository.Repository
	publisher broker.Publisher
	stats     StatsStore
	log       *zap.Logger
}

func NewStoreService(repo *repository.Repository, publisher broker.Publisher, stats StatsStore, log *zap.Logger) StoreService {
	return &storeService{
		repo:      repo,
		publisher: publisher,
		stats:     stats,
		log:       log.With(zap.String("service", "store")),
	}
}

func (s *storeService) GetStores(ctx context.Context) ([]response.StoreListResponse, error) {
	stores, err := s.repo.Store.FindAllWithMerchant(ctx)
	if err != nil {
		s.log.Error("Failed to get stores", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch stores")
	}

	storeResponses := make([]response.StoreListResponse, len(stores))
	for i, store := range stores {
		storeResponses[i] = response.StoreToListResponse(store)
	}

	s.log.Info("Stores retrieved", zap.Int("count", len(stores)))
	return storeResponses, nil
}

func (s *storeService) GetStoreDetail(ctx context.Context, storeID string) (*response.StoreDetailResponse, error) {
	id, err := uuid.Parse(storeID)
	if err != nil {
		s.log.Warn("Invalid store ID format", zap.String("store_id", storeID), zap.Error(err))
		return nil, fmt.Errorf("invalid store id")
	}

	store, err := s.repo.Store.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get store detail", zap.Error(err), zap.String("store_id", storeID))
		return nil, fmt.Errorf("failed to fetch store")
	}
	if store == nil {
		return nil, fmt.Errorf("store not found")
	}

	merchant, err := s.repo.User.FindByID(ctx, store.MerchantID)
	if err != nil {
		s.log.Error("Failed to get store merchant", zap.Error(err), zap.String("store_id", storeID))
		return nil, fmt.Errorf("failed to fetch store")
	}
	if merchant == nil {
		// Orphaned store; the schema's foreign key should prevent this.
		return nil, fmt.Errorf("store merchant not found")
	}

	menus, err := s.repo.Menu.FindByStore(ctx, id)
	if err != nil {
		s.log.Error("Failed to get store menus", zap.Error(err), zap.String("store_id", storeID))
		return nil, fmt.Errorf("failed to fetch store")
	}

	orders, err := s.repo.Order.FindRecentByStore(ctx, id, storeDetailOrderLimit)
	if err != nil {
		s.log.Error("Failed to get store orders", zap.Error(err), zap.String("store_id", storeID))
		return nil, fmt.Errorf("failed to fetch store")
	}

	return response.StoreToDetailResponse(store, merchant, menus, orders), nil
}

func (s *storeService) UpdateStoreStatus(ctx context.Context, storeID string, isActive bool) (*response.StoreResponse, error) {
	id, err := uuid.Parse(storeID)
	if err != nil {
		s.log.Warn("Invalid store ID format", zap.String("store_id", storeID), zap.Error(err))
		return nil, fmt.Errorf("invalid store id")
	}

	store, err := s.repo.Store.UpdateStatus(ctx, id, isActive)
	if err != nil {
		s.log.Error("Failed to update store status", zap.Error(err), zap.String("store_id", storeID))
		return nil, fmt.Errorf("failed to update store")
	}
	if store == nil {
		return nil, fmt.Errorf("store not found")
	}

	s.log.Info("Store status updated",
		zap.String("store_id", storeID),
		zap.Bool("is_active", isActive))

	s.publishStatusEvent(ctx, broker.KeyStoreStatusChanged, storeID, statusLabel(isActive))

	resp := response.StoreToResponse(store)
	return &resp, nil
}

func (s *storeService) DeleteStore(ctx context.Context, storeID string) error {
	id, err := uuid.Parse(storeID)
	if err != nil {
		s.log.Warn("Invalid store ID format", zap.String("store_id", storeID), zap.Error(err))
		return fmt.Errorf("invalid store id")
	}

	if err := s.repo.Store.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete store", zap.Error(err), zap.String("store_id", storeID))
		return err
	}

	// Cascaded order rows change the revenue totals.
	invalidateStats(ctx, s.stats, s.log)
	return nil
}

// publishStatusEvent emits a status-change event. Best-effort: broker
// failures are logged and never fail the request.
func (s *storeService) publishStatusEvent(ctx context.Context, key, entityID, status string) {
	if s.publisher == nil {
		return
	}

	event := broker.StatusChangedEvent{
		EntityID:  entityID,
		Status:    status,
		ChangedAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, key, event); err != nil {
		s.log.Warn("Failed to publish status event",
			zap.Error(err),
			zap.String("routing_key", key),
			zap.String("entity_id", entityID))
	}
}

func statusLabel(isActive bool) string {
	if isActive {
		return "active"
	}
	return "inactive"
}

// invalidateStats drops the cached dashboard snapshot after a mutation that
// changes the aggregates. Best-effort.
func invalidateStats(ctx context.Context, stats StatsStore, log *zap.Logger) {
	if stats == nil {
		return
	}
	if err := stats.Invalidate(ctx, cache.KeyDashboardStats, cache.KeyOrderStats); err != nil {
		log.Warn("Failed to invalidate stats cache", zap.Error(err))
	}
}
