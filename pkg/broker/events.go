package broker

import "time"

// Routing keys on the admin events exchange.
const (
	KeyOrderStatusChanged  = "order.status_changed"
	KeyOrderPaymentChanged = "order.payment_changed"
	KeyStoreStatusChanged  = "store.status_changed"
)

// StatusChangedEvent is emitted after a successful status update.
type StatusChangedEvent struct {
	EntityID  string    `json:"entity_id"`
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
}
