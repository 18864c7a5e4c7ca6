package adaptor

import (
	"encoding/json"
	"net/http"

	"marketplace-admin/internal/dto/request"
	"marketplace-admin/internal/usecase"
	"marketplace-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MenuHandler struct {
	service usecase.MenuService
	log     *zap.Logger
}

func NewMenuHandler(service usecase.MenuService, log *zap.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		log:     log,
	}
}

// GetMenus handles GET /api/menus?store_id={id}
func (h *MenuHandler) GetMenus(w http.ResponseWriter, r *http.Request) {
	var storeID *string
	if value := r.URL.Query().Get("store_id"); value != "" {
		storeID = &value
	}

	menus, err := h.service.GetMenus(r.Context(), storeID)
	if err != nil {
		handleServiceError(h.log, w, err, "get menus")
		return
	}

	utils.ResponseSuccess(w, "Menus retrieved successfully", menus)
}

// UpdateMenuAvailability handles PATCH /api/menus/{id}/availability
func (h *MenuHandler) UpdateMenuAvailability(w http.ResponseWriter, r *http.Request) {
	menuID := chi.URLParam(r, "id")
	if menuID == "" {
		utils.ResponseBadRequest(w, "Menu ID is required", nil)
		return
	}

	var req request.UpdateMenuAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	menu, err := h.service.UpdateMenuAvailability(r.Context(), menuID, *req.IsAvailable)
	if err != nil {
		handleServiceError(h.log, w, err, "update menu availability")
		return
	}

	utils.ResponseSuccess(w, "Menu availability updated successfully", menu)
}

// DeleteMenu handles DELETE /api/menus/{id}
func (h *MenuHandler) DeleteMenu(w http.ResponseWriter, r *http.Request) {
	menuID := chi.URLParam(r, "id")
	if menuID == "" {
		utils.ResponseBadRequest(w, "Menu ID is required", nil)
		return
	}

	if err := h.service.DeleteMenu(r.Context(), menuID); err != nil {
		handleServiceError(h.log, w, err, "delete menu")
		return
	}

	utils.ResponseSuccess(w, "Menu deleted successfully", nil)
}
