package entity

import "github.com/google/uuid"

type Store struct {
	Base
	MerchantID  uuid.UUID `db:"merchant_id"`
	StoreName   string    `db:"store_name"`
	Description *string   `db:"description"`
	Address     *string   `db:"address"`
	City        *string   `db:"city"`
	Phone       *string   `db:"phone"`
	Latitude    *float64  `db:"latitude"`
	Longitude   *float64  `db:"longitude"`
	Category    *string   `db:"category"`
	OpeningTime *string   `db:"opening_time"`
	ClosingTime *string   `db:"closing_time"`
	IsActive    bool      `db:"is_active"`
}

// StoreWithMerchant is the listing projection: store row plus the owning
// merchant's display fields and the number of menu items.
type StoreWithMerchant struct {
	Store
	MerchantUsername string
	MerchantFullName *string
	MerchantEmail    *string
	MenuCount        int64
}

// StoreSummary carries the fields shown for a store owned by a user on the
// user detail view.
type StoreSummary struct {
	Store
	MenuCount  int64
	OrderCount int64
}
