package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace-admin/internal/dto/response"

	"go.uber.org/zap"
)

type fakeDashboardService struct {
	stats         *response.DashboardStatsResponse
	orderStats    *response.OrderStatsResponse
	orderStatsErr error
}

func (f *fakeDashboardService) GetDashboardStats(ctx context.Context) *response.DashboardStatsResponse {
	return f.stats
}

func (f *fakeDashboardService) GetOrderStats(ctx context.Context) (*response.OrderStatsResponse, error) {
	return f.orderStats, f.orderStatsErr
}

func TestGetStatsAlwaysOK(t *testing.T) {
	// Zeroed stats from a degraded backend still answer 200.
	svc := &fakeDashboardService{
		stats: &response.DashboardStatsResponse{
			RecentOrders: []response.RecentOrderResponse{},
			RevenueTrend: []float64{},
		},
	}
	h := NewDashboardHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	h.GetStats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Success {
		t.Error("success = false, want true")
	}

	var stats response.DashboardStatsResponse
	if err := json.Unmarshal(body.Data, &stats); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if stats.RecentOrders == nil || stats.RevenueTrend == nil {
		t.Error("degraded stats must keep empty arrays, not null")
	}
}

func TestGetOrderStats(t *testing.T) {
	svc := &fakeDashboardService{
		orderStats: &response.OrderStatsResponse{
			TotalOrders:     10,
			PendingOrders:   2,
			CompletedOrders: 7,
			CancelledOrders: 1,
			TotalRevenue:    125000,
		},
	}
	h := NewDashboardHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/order-stats", nil)
	rec := httptest.NewRecorder()
	h.GetOrderStats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	var stats response.OrderStatsResponse
	if err := json.Unmarshal(body.Data, &stats); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if stats.TotalRevenue != 125000 {
		t.Errorf("TotalRevenue = %v, want 125000", stats.TotalRevenue)
	}
}

func TestGetOrderStatsFailure(t *testing.T) {
	svc := &fakeDashboardService{orderStatsErr: errors.New("failed to fetch order stats")}
	h := NewDashboardHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/order-stats", nil)
	rec := httptest.NewRecorder()
	h.GetOrderStats(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
