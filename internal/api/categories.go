package api

import (
	"net/http"

	"github.com/rewearhq/rewear/internal/store"
)

// CategoriesHandler serves the static category taxonomy.
type CategoriesHandler struct {
	Store *store.Store
}

// List handles GET /api/categories.
func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Store.GetAllCategories())
}

// Get handles GET /api/categories/{id}.
func (h *CategoriesHandler) Get(w http.ResponseWriter, r *http.Request) {
	category := h.Store.GetCategoryByID(r.PathValue("id"))
	if category == nil {
		jsonError(w, http.StatusNotFound, "category not found")
		return
	}
	jsonResponse(w, http.StatusOK, category)
}
