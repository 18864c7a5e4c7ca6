package entity

import "github.com/google/uuid"

// Known order status values. Updates deliberately accept any string, so
// these are display/reporting constants, not a closed set.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

const (
	PaymentStatusUnpaid   = "unpaid"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

type Order struct {
	Base
	CustomerID    uuid.UUID `db:"customer_id"`
	StoreID       uuid.UUID `db:"store_id"`
	TotalPrice    float64   `db:"total_price"`
	OrderStatus   string    `db:"order_status"`
	PaymentStatus string    `db:"payment_status"`
}

type OrderItem struct {
	Base
	OrderID  uuid.UUID `db:"order_id"`
	MenuName string    `db:"menu_name"`
	Quantity int       `db:"quantity"`
	Price    float64   `db:"price"`
}

// OrderWithRelations is the listing projection: order row plus customer and
// store display names and the item lines.
type OrderWithRelations struct {
	Order
	CustomerUsername string
	CustomerFullName *string
	StoreName        string
	Items            []OrderItem
}

// OrderSummary carries the fields shown for an order on the user detail
// view (store name instead of customer).
type OrderSummary struct {
	Order
	StoreName string
}

// StoreOrder carries the fields shown for a recent order on the store
// detail view.
type StoreOrder struct {
	Order
	CustomerUsername string
	CustomerFullName *string
	ItemCount        int64
}
