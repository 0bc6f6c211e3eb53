package handler

import (
	"net/http"

	"btyesteem/internal/catalog"
)

// CatalogHandler exposes the static questionnaire configuration so the
// rendering layer can cite item text by evidence index.
type CatalogHandler struct {
	cat *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{cat: cat}
}

// Items handles GET /v1/catalog/items
func (h *CatalogHandler) Items(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cat.Items)
}

// Strengths handles GET /v1/catalog/strengths
func (h *CatalogHandler) Strengths(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cat.Strengths)
}

// Themes handles GET /v1/catalog/themes
func (h *CatalogHandler) Themes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cat.ProfileThemes)
}
