package entity

import "github.com/google/uuid"

type Menu struct {
	Base
	StoreID     uuid.UUID `db:"store_id"`
	MenuName    string    `db:"menu_name"`
	Description *string   `db:"description"`
	Price       float64   `db:"price"`
	Category    *string   `db:"category"`
	IsAvailable bool      `db:"is_available"`
	ImageURL    *string   `db:"image_url"`
}
