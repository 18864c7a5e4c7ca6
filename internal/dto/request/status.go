package request

// UpdateOrderStatusRequest carries the new order status. Any non-empty
// string is accepted and persisted as-is.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdatePaymentStatusRequest carries the new payment status, same open
// contract as order status.
type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type UpdateStoreStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type UpdateMenuAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}
