package response

import (
	"time"

	"marketplace-admin/internal/data/entity"
)

type UserResponse struct {
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	FullName   *string   `json:"full_name"`
	Email      *string   `json:"email"`
	Phone      *string   `json:"phone"`
	UserType   string    `json:"user_type"`
	CreatedAt  time.Time `json:"created_at"`
	StoreCount int64     `json:"store_count"`
	OrderCount int64     `json:"order_count"`
}

// UserStoreResponse is a store owned by the user on the detail view.
type UserStoreResponse struct {
	StoreID    string  `json:"store_id"`
	StoreName  string  `json:"store_name"`
	Category   *string `json:"category"`
	City       *string `json:"city"`
	IsActive   bool    `json:"is_active"`
	MenuCount  int64   `json:"menu_count"`
	OrderCount int64   `json:"order_count"`
}

// UserOrderResponse is an order placed by the user on the detail view.
type UserOrderResponse struct {
	OrderID     string    `json:"order_id"`
	TotalPrice  float64   `json:"total_price"`
	OrderStatus string    `json:"order_status"`
	CreatedAt   time.Time `json:"created_at"`
	StoreName   string    `json:"store_name"`
}

type UserDetailResponse struct {
	UserID    string              `json:"user_id"`
	Username  string              `json:"username"`
	FullName  *string             `json:"full_name"`
	Email     *string             `json:"email"`
	Phone     *string             `json:"phone"`
	UserType  string              `json:"user_type"`
	CreatedAt time.Time           `json:"created_at"`
	Stores    []UserStoreResponse `json:"stores"`
	Orders    []UserOrderResponse `json:"orders"`
}

func UserToResponse(user *entity.UserWithCounts) UserResponse {
	return UserResponse{
		UserID:     user.ID.String(),
		Username:   user.Username,
		FullName:   user.FullName,
		Email:      user.Email,
		Phone:      user.Phone,
		UserType:   string(user.UserType),
		CreatedAt:  user.CreatedAt,
		StoreCount: user.StoreCount,
		OrderCount: user.OrderCount,
	}
}

func UserToDetailResponse(user *entity.User, stores []*entity.StoreSummary, orders []*entity.OrderSummary) *UserDetailResponse {
	storeResponses := make([]UserStoreResponse, len(stores))
	for i, store := range stores {
		storeResponses[i] = UserStoreResponse{
			StoreID:    store.ID.String(),
			StoreName:  store.StoreName,
			Category:   store.Category,
			City:       store.City,
			IsActive:   store.IsActive,
			MenuCount:  store.MenuCount,
			OrderCount: store.OrderCount,
		}
	}

	orderResponses := make([]UserOrderResponse, len(orders))
	for i, order := range orders {
		orderResponses[i] = UserOrderResponse{
			OrderID:     order.ID.String(),
			TotalPrice:  order.TotalPrice,
			OrderStatus: order.OrderStatus,
			CreatedAt:   order.CreatedAt,
			StoreName:   order.StoreName,
		}
	}

	return &UserDetailResponse{
		UserID:    user.ID.String(),
		Username:  user.Username,
		FullName:  user.FullName,
		Email:     user.Email,
		Phone:     user.Phone,
		UserType:  string(user.UserType),
		CreatedAt: user.CreatedAt,
		Stores:    storeResponses,
		Orders:    orderResponses,
	}
}
