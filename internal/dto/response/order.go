package response

import (
	"time"

	"marketplace-admin/internal/data/entity"
)

type OrderItemResponse struct {
	MenuName string  `json:"menu_name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderCustomerResponse struct {
	Username string  `json:"username"`
	FullName *string `json:"full_name"`
}

// OrderResponse is an order row on the listing view.
type OrderResponse struct {
	OrderID       string                `json:"order_id"`
	TotalPrice    float64               `json:"total_price"`
	OrderStatus   string                `json:"order_status"`
	PaymentStatus string                `json:"payment_status"`
	CreatedAt     time.Time             `json:"created_at"`
	Customer      OrderCustomerResponse `json:"customer"`
	StoreName     string                `json:"store_name"`
	Items         []OrderItemResponse   `json:"order_items"`
}

// OrderDetailResponse adds the full customer and store profiles.
type OrderDetailResponse struct {
	OrderID       string              `json:"order_id"`
	TotalPrice    float64             `json:"total_price"`
	OrderStatus   string              `json:"order_status"`
	PaymentStatus string              `json:"payment_status"`
	CreatedAt     time.Time           `json:"created_at"`
	Customer      UserDetailProfile   `json:"customer"`
	Store         StoreResponse       `json:"store"`
	Items         []OrderItemResponse `json:"order_items"`
}

// UserDetailProfile is the customer profile embedded in an order detail.
type UserDetailProfile struct {
	UserID   string  `json:"user_id"`
	Username string  `json:"username"`
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

func OrderToResponse(order *entity.OrderWithRelations) OrderResponse {
	return OrderResponse{
		OrderID:       order.ID.String(),
		TotalPrice:    order.TotalPrice,
		OrderStatus:   order.OrderStatus,
		PaymentStatus: order.PaymentStatus,
		CreatedAt:     order.CreatedAt,
		Customer: OrderCustomerResponse{
			Username: order.CustomerUsername,
			FullName: order.CustomerFullName,
		},
		StoreName: order.StoreName,
		Items:     itemsToResponse(order.Items),
	}
}

func OrderToDetailResponse(order *entity.Order, customer *entity.User, store *entity.Store, items []*entity.OrderItem) *OrderDetailResponse {
	itemResponses := make([]OrderItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = OrderItemResponse{
			MenuName: item.MenuName,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	return &OrderDetailResponse{
		OrderID:       order.ID.String(),
		TotalPrice:    order.TotalPrice,
		OrderStatus:   order.OrderStatus,
		PaymentStatus: order.PaymentStatus,
		CreatedAt:     order.CreatedAt,
		Customer: UserDetailProfile{
			UserID:   customer.ID.String(),
			Username: customer.Username,
			FullName: customer.FullName,
			Email:    customer.Email,
			Phone:    customer.Phone,
		},
		Store: StoreToResponse(store),
		Items: itemResponses,
	}
}

// OrderStatusResponse is returned by the status update endpoints.
type OrderStatusResponse struct {
	OrderID       string    `json:"order_id"`
	TotalPrice    float64   `json:"total_price"`
	OrderStatus   string    `json:"order_status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

func OrderToStatusResponse(order *entity.Order) *OrderStatusResponse {
	return &OrderStatusResponse{
		OrderID:       order.ID.String(),
		TotalPrice:    order.TotalPrice,
		OrderStatus:   order.OrderStatus,
		PaymentStatus: order.PaymentStatus,
		CreatedAt:     order.CreatedAt,
	}
}

func itemsToResponse(items []entity.OrderItem) []OrderItemResponse {
	responses := make([]OrderItemResponse, len(items))
	for i, item := range items {
		responses[i] = OrderItemResponse{
			MenuName: item.MenuName,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}
	return responses
}
