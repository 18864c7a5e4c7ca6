package response

import (
	"time"

	"marketplace-admin/internal/data/entity"
)

// RecentOrderResponse is one of the latest orders on the dashboard card.
type RecentOrderResponse struct {
	OrderID     string                `json:"order_id"`
	TotalPrice  float64               `json:"total_price"`
	OrderStatus string                `json:"order_status"`
	CreatedAt   time.Time             `json:"created_at"`
	Customer    OrderCustomerResponse `json:"customer"`
}

type DashboardStatsResponse struct {
	TotalRevenue   float64               `json:"total_revenue"`
	MonthlyRevenue float64               `json:"monthly_revenue"`
	TotalUsers     int64                 `json:"total_users"`
	TotalOrders    int64                 `json:"total_orders"`
	RecentOrders   []RecentOrderResponse `json:"recent_orders"`
	RevenueTrend   []float64             `json:"revenue_trend"`
}

type OrderStatsResponse struct {
	TotalOrders     int64   `json:"total_orders"`
	PendingOrders   int64   `json:"pending_orders"`
	CompletedOrders int64   `json:"completed_orders"`
	CancelledOrders int64   `json:"cancelled_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
}

func RecentOrdersToResponse(orders []*entity.OrderWithRelations) []RecentOrderResponse {
	responses := make([]RecentOrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = RecentOrderResponse{
			OrderID:     order.ID.String(),
			TotalPrice:  order.TotalPrice,
			OrderStatus: order.OrderStatus,
			CreatedAt:   order.CreatedAt,
			Customer: OrderCustomerResponse{
				Username: order.CustomerUsername,
				FullName: order.CustomerFullName,
			},
		}
	}
	return responses
}
