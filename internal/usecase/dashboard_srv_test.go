package usecase

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"marketplace-admin/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func seedOrder(total float64, status string, createdAt time.Time) *entity.OrderWithRelations {
	return &entity.OrderWithRelations{
		Order: entity.Order{
			Base:          entity.Base{ID: uuid.New(), CreatedAt: createdAt},
			CustomerID:    uuid.New(),
			StoreID:       uuid.New(),
			TotalPrice:    total,
			OrderStatus:   status,
			PaymentStatus: entity.PaymentStatusPaid,
		},
		CustomerUsername: "budi",
		StoreName:        "Warung Sederhana",
	}
}

func TestGetDashboardStats(t *testing.T) {
	repos := newFakeRepos()
	now := time.Now()
	repos.order.orders = []*entity.OrderWithRelations{
		seedOrder(100000, entity.OrderStatusCompleted, now),
		seedOrder(500, entity.OrderStatusCancelled, now.AddDate(0, -2, 0)),
	}
	repos.user.users = []*entity.UserWithCounts{
		{User: entity.User{Base: entity.Base{ID: uuid.New()}, Username: "budi", UserType: entity.UserTypeCustomer}},
	}

	svc := NewDashboardService(repos.repository(), nil, zap.NewNop())
	stats := svc.GetDashboardStats(context.Background())

	// Total revenue sums every order regardless of status; cancelled orders
	// are included.
	if stats.TotalRevenue != 100500 {
		t.Errorf("TotalRevenue = %v, want 100500", stats.TotalRevenue)
	}
	if stats.MonthlyRevenue != 100000 {
		t.Errorf("MonthlyRevenue = %v, want 100000", stats.MonthlyRevenue)
	}
	if stats.TotalUsers != 1 {
		t.Errorf("TotalUsers = %d, want 1", stats.TotalUsers)
	}
	if stats.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, want 2", stats.TotalOrders)
	}
	if len(stats.RecentOrders) != 2 {
		t.Fatalf("RecentOrders = %d entries, want 2", len(stats.RecentOrders))
	}
	if stats.RecentOrders[0].Customer.Username != "budi" {
		t.Errorf("RecentOrders[0].Customer.Username = %q, want %q", stats.RecentOrders[0].Customer.Username, "budi")
	}
	if len(stats.RevenueTrend) != 7 {
		t.Fatalf("RevenueTrend = %d points, want 7", len(stats.RevenueTrend))
	}
}

func TestGetDashboardStatsRecentOrderLimit(t *testing.T) {
	repos := newFakeRepos()
	for i := 0; i < 8; i++ {
		repos.order.orders = append(repos.order.orders, seedOrder(1000, entity.OrderStatusPending, time.Now()))
	}

	svc := NewDashboardService(repos.repository(), nil, zap.NewNop())
	stats := svc.GetDashboardStats(context.Background())

	if len(stats.RecentOrders) != recentOrderLimit {
		t.Errorf("RecentOrders = %d entries, want %d", len(stats.RecentOrders), recentOrderLimit)
	}
	if stats.TotalOrders != 8 {
		t.Errorf("TotalOrders = %d, want 8", stats.TotalOrders)
	}
}

func TestGetDashboardStatsZeroedOnFailure(t *testing.T) {
	repos := newFakeRepos()
	repos.order.orders = []*entity.OrderWithRelations{
		seedOrder(100000, entity.OrderStatusCompleted, time.Now()),
	}
	// One failing query zeroes everything, never a partial snapshot.
	repos.user.err = fmt.Errorf("connection refused")

	svc := NewDashboardService(repos.repository(), nil, zap.NewNop())
	stats := svc.GetDashboardStats(context.Background())

	if stats.TotalRevenue != 0 || stats.MonthlyRevenue != 0 || stats.TotalUsers != 0 || stats.TotalOrders != 0 {
		t.Errorf("expected zeroed stats, got %+v", stats)
	}
	if stats.RecentOrders == nil || len(stats.RecentOrders) != 0 {
		t.Errorf("RecentOrders = %v, want empty slice", stats.RecentOrders)
	}
	if stats.RevenueTrend == nil || len(stats.RevenueTrend) != 0 {
		t.Errorf("RevenueTrend = %v, want empty slice", stats.RevenueTrend)
	}
}

func TestRevenueTrend(t *testing.T) {
	trend := RevenueTrend(1000)

	want := []float64{80, 85, 90, 88, 95, 92, 100}
	if len(trend) != len(want) {
		t.Fatalf("trend has %d points, want %d", len(trend), len(want))
	}
	for i := range want {
		if math.Abs(trend[i]-want[i]) > 1e-9 {
			t.Errorf("trend[%d] = %v, want %v", i, trend[i], want[i])
		}
	}

	// The last point is always a tenth of the total.
	if trend[6] != 100 {
		t.Errorf("trend[6] = %v, want 100", trend[6])
	}
}

func TestRevenueTrendZeroRevenue(t *testing.T) {
	for i, point := range RevenueTrend(0) {
		if point != 0 {
			t.Errorf("trend[%d] = %v, want 0", i, point)
		}
	}
}

func TestGetOrderStats(t *testing.T) {
	repos := newFakeRepos()
	now := time.Now()
	repos.order.orders = []*entity.OrderWithRelations{
		seedOrder(25000, entity.OrderStatusCompleted, now),
		seedOrder(15000, entity.OrderStatusCompleted, now),
		seedOrder(5000, entity.OrderStatusPending, now),
		seedOrder(7000, entity.OrderStatusCancelled, now),
		seedOrder(9000, "banana", now),
	}

	svc := NewDashboardService(repos.repository(), nil, zap.NewNop())
	stats, err := svc.GetOrderStats(context.Background())
	if err != nil {
		t.Fatalf("GetOrderStats() error = %v", err)
	}

	if stats.TotalOrders != 5 {
		t.Errorf("TotalOrders = %d, want 5", stats.TotalOrders)
	}
	if stats.PendingOrders != 1 {
		t.Errorf("PendingOrders = %d, want 1", stats.PendingOrders)
	}
	if stats.CompletedOrders != 2 {
		t.Errorf("CompletedOrders = %d, want 2", stats.CompletedOrders)
	}
	if stats.CancelledOrders != 1 {
		t.Errorf("CancelledOrders = %d, want 1", stats.CancelledOrders)
	}
	// Revenue here counts completed orders only; the unknown status order
	// still shows up in the total count.
	if stats.TotalRevenue != 40000 {
		t.Errorf("TotalRevenue = %v, want 40000", stats.TotalRevenue)
	}
}

func TestGetOrderStatsFailure(t *testing.T) {
	repos := newFakeRepos()
	repos.order.err = fmt.Errorf("connection refused")

	svc := NewDashboardService(repos.repository(), nil, zap.NewNop())
	if _, err := svc.GetOrderStats(context.Background()); err == nil {
		t.Fatal("GetOrderStats() error = nil, want error")
	}
}
