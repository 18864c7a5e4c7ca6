package response

import (
	"time"

	"marketplace-admin/internal/data/entity"
)

type MerchantResponse struct {
	UserID   string  `json:"user_id"`
	Username string  `json:"username"`
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

type StoreResponse struct {
	StoreID     string    `json:"store_id"`
	StoreName   string    `json:"store_name"`
	Description *string   `json:"description"`
	Address     *string   `json:"address"`
	City        *string   `json:"city"`
	Phone       *string   `json:"phone"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Category    *string   `json:"category"`
	OpeningTime *string   `json:"opening_time"`
	ClosingTime *string   `json:"closing_time"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// StoreListResponse is a store row on the listing view.
type StoreListResponse struct {
	StoreResponse
	Merchant  MerchantResponse `json:"merchant"`
	MenuCount int64            `json:"menu_count"`
}

// StoreOrderResponse is a recent order on the store detail view.
type StoreOrderResponse struct {
	OrderID          string    `json:"order_id"`
	TotalPrice       float64   `json:"total_price"`
	OrderStatus      string    `json:"order_status"`
	PaymentStatus    string    `json:"payment_status"`
	CreatedAt        time.Time `json:"created_at"`
	CustomerUsername string    `json:"customer_username"`
	CustomerFullName *string   `json:"customer_full_name"`
	ItemCount        int64     `json:"item_count"`
}

type StoreDetailResponse struct {
	StoreResponse
	Merchant MerchantResponse     `json:"merchant"`
	Menus    []MenuResponse       `json:"menus"`
	Orders   []StoreOrderResponse `json:"orders"`
}

func StoreToResponse(store *entity.Store) StoreResponse {
	return StoreResponse{
		StoreID:     store.ID.String(),
		StoreName:   store.StoreName,
		Description: store.Description,
		Address:     store.Address,
		City:        store.City,
		Phone:       store.Phone,
		Latitude:    store.Latitude,
		Longitude:   store.Longitude,
		Category:    store.Category,
		OpeningTime: store.OpeningTime,
		ClosingTime: store.ClosingTime,
		IsActive:    store.IsActive,
		CreatedAt:   store.CreatedAt,
	}
}

func StoreToListResponse(store *entity.StoreWithMerchant) StoreListResponse {
	return StoreListResponse{
		StoreResponse: StoreToResponse(&store.Store),
		Merchant: MerchantResponse{
			UserID:   store.MerchantID.String(),
			Username: store.MerchantUsername,
			FullName: store.MerchantFullName,
			Email:    store.MerchantEmail,
		},
		MenuCount: store.MenuCount,
	}
}

func StoreToDetailResponse(store *entity.Store, merchant *entity.User, menus []*entity.Menu, orders []*entity.StoreOrder) *StoreDetailResponse {
	orderResponses := make([]StoreOrderResponse, len(orders))
	for i, order := range orders {
		orderResponses[i] = StoreOrderResponse{
			OrderID:          order.ID.String(),
			TotalPrice:       order.TotalPrice,
			OrderStatus:      order.OrderStatus,
			PaymentStatus:    order.PaymentStatus,
			CreatedAt:        order.CreatedAt,
			CustomerUsername: order.CustomerUsername,
			CustomerFullName: order.CustomerFullName,
			ItemCount:        order.ItemCount,
		}
	}

	return &StoreDetailResponse{
		StoreResponse: StoreToResponse(store),
		Merchant: MerchantResponse{
			UserID:   merchant.ID.String(),
			Username: merchant.Username,
			FullName: merchant.FullName,
			Email:    merchant.Email,
			Phone:    merchant.Phone,
		},
		Menus:  MenusToResponse(menus),
		Orders: orderResponses,
	}
}
