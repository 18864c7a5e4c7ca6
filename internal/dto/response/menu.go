package response

import (
	"time"

	"marketplace-admin/internal/data/entity"
)

type MenuResponse struct {
	MenuID      string    `json:"menu_id"`
	StoreID     string    `json:"store_id"`
	MenuName    string    `json:"menu_name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Category    *string   `json:"category"`
	IsAvailable bool      `json:"is_available"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func MenuToResponse(menu *entity.Menu) MenuResponse {
	return MenuResponse{
		MenuID:      menu.ID.String(),
		StoreID:     menu.StoreID.String(),
		MenuName:    menu.MenuName,
		Description: menu.Description,
		Price:       menu.Price,
		Category:    menu.Category,
		IsAvailable: menu.IsAvailable,
		ImageURL:    menu.ImageURL,
		CreatedAt:   menu.CreatedAt,
	}
}

func MenusToResponse(menus []*entity.Menu) []MenuResponse {
	responses := make([]MenuResponse, len(menus))
	for i, menu := range menus {
		responses[i] = MenuToResponse(menu)
	}
	return responses
}
