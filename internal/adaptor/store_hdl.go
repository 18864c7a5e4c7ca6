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

type StoreHandler struct {
	service usecase.StoreService
	log     *zap.Logger
}

func NewStoreHandler(service usecase.StoreService, log *zap.Logger) *StoreHandler {
	return &StoreHandler{
		service: service,
		log:     log,
	}
}

// GetStores handles GET /api/stores
func (h *StoreHandler) GetStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.service.GetStores(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get stores")
		return
	}

	utils.ResponseSuccess(w, "Stores retrieved successfully", stores)
}

// GetStoreDetail handles GET /api/stores/{id}
func (h *StoreHandler) GetStoreDetail(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "id")
	if storeID == "" {
		utils.ResponseBadRequest(w, "Store ID is required", nil)
		return
	}

	store, err := h.service.GetStoreDetail(r.Context(), storeID)
	if err != nil {
		handleServiceError(h.log, w, err, "get store detail")
		return
	}

	utils.ResponseSuccess(w, "Store retrieved successfully", store)
}

// UpdateStoreStatus handles PATCH /api/stores/{id}/status
func (h *StoreHandler) UpdateStoreStatus(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "id")
	if storeID == "" {
		utils.ResponseBadRequest(w, "Store ID is required", nil)
		return
	}

	var req request.UpdateStoreStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	store, err := h.service.UpdateStoreStatus(r.Context(), storeID, *req.IsActive)
	if err != nil {
		handleServiceError(h.log, w, err, "update store status")
		return
	}

	utils.ResponseSuccess(w, "Store status updated successfully", store)
}

// DeleteStore handles DELETE /api/stores/{id}
func (h *StoreHandler) DeleteStore(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "id")
	if storeID == "" {
		utils.ResponseBadRequest(w, "Store ID is required", nil)
		return
	}

	if err := h.service.DeleteStore(r.Context(), storeID); err != nil {
		handleServiceError(h.log, w, err, "delete store")
		return
	}

	utils.ResponseSuccess(w, "Store deleted successfully", nil)
}
