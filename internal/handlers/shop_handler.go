package handlers

import (
	"fmt"
	"net/http"

	"wordrobe/internal/models"
	"wordrobe/internal/service"
)

// ShopHandler handles the cosmetic shop
type ShopHandler struct {
	shop *service.ShopService
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shop *service.ShopService) *ShopHandler {
	return &ShopHandler{shop: shop}
}

// ListItems returns the catalog, optionally filtered by ?type=
func (h *ShopHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	itemType := models.ItemType(r.URL.Query().Get("type"))
	switch itemType {
	case "", models.ItemAvatar, models.ItemBackground:
	default:
		handleServiceError(w, fmt.Errorf("unknown item type %q: %w", itemType, models.ErrInvalidInput))
		return
	}

	entries, err := h.shop.Catalog(r.Context(), PlayerIDFromContext(r.Context()), itemType)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

// Purchase buys the item in the path
func (h *ShopHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	result, err := h.shop.Purchase(r.Context(), PlayerIDFromContext(r.Context()), r.PathValue("id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Equip wears the item in the path
func (h *ShopHandler) Equip(w http.ResponseWriter, r *http.Request) {
	result, err := h.shop.Equip(r.Context(), PlayerIDFromContext(r.Context()), r.PathValue("id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
