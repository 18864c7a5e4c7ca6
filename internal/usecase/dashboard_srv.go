package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"marketplace-admin/internal/data/entity"
	"marketplace-admin/internal/data/repository"
	"marketplace-admin/internal/dto/response"
	"marketplace-admin/pkg/cache"

	"go.uber.org/zap"
)

// recentOrderLimit caps the latest-orders card on the dashboard.
const recentOrderLimit = 5

// revenueTrendFactors produce the 7-point sparkline series from the total
// revenue. Display-only synthesis, not a historical query; each factor is
// scaled down by 10.
var revenueTrendFactors = [7]float64{0.8, 0.85, 0.9, 0.88, 0.95, 0.92, 1.0}

type DashboardService interface {
	GetDashboardStats(ctx context.Context) *response.DashboardStatsResponse
	GetOrderStats(ctx context.Context) (*response.OrderStatsResponse, error)
}

type dashboardService struct {
	repo  *repository.Repository
	stats StatsStore
	log   *zap.Logger
}

func NewDashboardService(repo *repository.Repository, stats StatsStore, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo:  repo,
		stats: stats,
		log:   log.With(zap.String("service", "dashboard")),
	}
}

// GetDashboardStats fans out the independent dashboard queries concurrently.
// The queries are not wrapped in a transaction, so a write landing between
// them can skew revenue against counts; accepted for a dashboard. Any query
// failure degrades to fully zeroed stats, never a partial result.
func (s *dashboardService) GetDashboardStats(ctx context.Context) *response.DashboardStatsResponse {
	if cached, ok := s.cachedStats(ctx); ok {
		return cached
	}

	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	firstOfNextMonth := firstOfMonth.AddDate(0, 1, 0)

	var (
		totalRevenue   float64
		monthlyRevenue float64
		totalUsers     int64
		totalOrders    int64
		recentOrders   []*entity.OrderWithRelations

		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	fail := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	wg.Add(5)
	go func() {
		defer wg.Done()
		sum, err := s.repo.Order.SumRevenue(ctx)
		if err != nil {
			fail(err)
			return
		}
		totalRevenue = sum
	}()
	go func() {
		defer wg.Done()
		sum, err := s.repo.Order.SumRevenueBetween(ctx, firstOfMonth, firstOfNextMonth)
		if err != nil {
			fail(err)
			return
		}
		monthlyRevenue = sum
	}()
	go func() {
		defer wg.Done()
		count, err := s.repo.User.CountAll(ctx)
		if err != nil {
			fail(err)
			return
		}
		totalUsers = count
	}()
	go func() {
		defer wg.Done()
		count, err := s.repo.Order.CountAll(ctx)
		if err != nil {
			fail(err)
			return
		}
		totalOrders = count
	}()
	go func() {
		defer wg.Done()
		orders, err := s.repo.Order.FindRecentWithCustomer(ctx, recentOrderLimit)
		if err != nil {
			fail(err)
			return
		}
		recentOrders = orders
	}()
	wg.Wait()

	if len(errs) > 0 {
		s.log.Error("Failed to fetch dashboard stats", zap.Errors("errors", errs))
		return emptyDashboardStats()
	}

	stats := &response.DashboardStatsResponse{
		TotalRevenue:   totalRevenue,
		MonthlyRevenue: monthlyRevenue,
		TotalUsers:     totalUsers,
		TotalOrders:    totalOrders,
		RecentOrders:   response.RecentOrdersToResponse(recentOrders),
		RevenueTrend:   RevenueTrend(totalRevenue),
	}

	s.cacheStats(ctx, stats)
	return stats
}

// GetOrderStats counts orders per status by exact string match and sums
// revenue over completed orders only. Same fan-out, no transaction.
func (s *dashboardService) GetOrderStats(ctx context.Context) (*response.OrderStatsResponse, error) {
	var cached response.OrderStatsResponse
	if s.stats != nil {
		if ok, err := s.stats.Get(ctx, cache.KeyOrderStats, &cached); err != nil {
			s.log.Warn("Failed to read order stats cache", zap.Error(err))
		} else if ok {
			return &cached, nil
		}
	}

	var (
		total, pending, completed, cancelled int64
		revenue                              float64

		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	fail := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	count := func(dest *int64, query func(context.Context) (int64, error)) {
		defer wg.Done()
		n, err := query(ctx)
		if err != nil {
			fail(err)
			return
		}
		*dest = n
	}

	wg.Add(5)
	go count(&total, s.repo.Order.CountAll)
	go count(&pending, func(ctx context.Context) (int64, error) {
		return s.repo.Order.CountByStatus(ctx, entity.OrderStatusPending)
	})
	go count(&completed, func(ctx context.Context) (int64, error) {
		return s.repo.Order.CountByStatus(ctx, entity.OrderStatusCompleted)
	})
	go count(&cancelled, func(ctx context.Context) (int64, error) {
		return s.repo.Order.CountByStatus(ctx, entity.OrderStatusCancelled)
	})
	go func() {
		defer wg.Done()
		sum, err := s.repo.Order.SumRevenueByStatus(ctx, entity.OrderStatusCompleted)
		if err != nil {
			fail(err)
			return
		}
		revenue = sum
	}()
	wg.Wait()

	if len(errs) > 0 {
		s.log.Error("Failed to fetch order stats", zap.Errors("errors", errs))
		return nil, fmt.Errorf("failed to fetch order stats")
	}

	stats := &response.OrderStatsResponse{
		TotalOrders:     total,
		PendingOrders:   pending,
		CompletedOrders: completed,
		CancelledOrders: cancelled,
		TotalRevenue:    revenue,
	}

	if s.stats != nil {
		if err := s.stats.Set(ctx, cache.KeyOrderStats, stats); err != nil {
			s.log.Warn("Failed to write order stats cache", zap.Error(err))
		}
	}

	return stats, nil
}

// RevenueTrend derives the sparkline series from the total revenue. Pure
// function, exported for the reporting consumers.
func RevenueTrend(totalRevenue float64) []float64 {
	trend := make([]float64, len(revenueTrendFactors))
	for i, factor := range revenueTrendFactors {
		trend[i] = totalRevenue * factor / 10
	}
	return trend
}

func emptyDashboardStats() *response.DashboardStatsResponse {
	return &response.DashboardStatsResponse{
		RecentOrders: []response.RecentOrderResponse{},
		RevenueTrend: []float64{},
	}
}

func (s *dashboardService) cachedStats(ctx context.Context) (*response.DashboardStatsResponse, bool) {
	if s.stats == nil {
		return nil, false
	}

	var cached response.DashboardStatsResponse
	ok, err := s.stats.Get(ctx, cache.KeyDashboardStats, &cached)
	if err != nil {
		s.log.Warn("Failed to read dashboard stats cache", zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return &cached, true
}

func (s *dashboardService) cacheStats(ctx context.Context, stats *response.DashboardStatsResponse) {
	if s.stats == nil {
		return
	}
	if err := s.stats.Set(ctx, cache.KeyDashboardStats, stats); err != nil {
		s.log.Warn("Failed to write dashboard stats cache", zap.Error(err))
	}
}
