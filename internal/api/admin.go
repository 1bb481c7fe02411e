package api

import (
	"io"
	"net/http"
	"time"

	"github.com/rewearhq/rewear/internal/query"
	"github.com/rewearhq/rewear/internal/store"
)

// AdminHandler handles analytics and bulk data endpoints (admin only).
type AdminHandler struct {
	Store *store.Store
}

// Analytics handles GET /api/admin/analytics.
func (h *AdminHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	report := query.Analytics(
		h.Store.GetAllUsers(),
		h.Store.GetAllItems(),
		h.Store.GetAllSwaps(),
		time.Now(),
	)
	jsonResponse(w, http.StatusOK, report)
}

// Export handles GET /api/admin/export: the full state tree, pretty-printed.
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.Store.ExportData()
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to export data")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="rewear-export.json"`)
	w.Write(data)
}

// Import handles POST /api/admin/import: replaces the whole tree. Malformed
// input leaves the current state untouched.
func (h *AdminHandler) Import(w http.ResponseWriter, r *http.Request) {
	// Limit to 10 MB.
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 10<<20))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := h.Store.ImportData(r.Context(), data); err != nil {
		jsonError(w, http.StatusBadRequest, "malformed import data")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "data imported"})
}

// Reset handles POST /api/admin/reset: wipes everything and re-seeds the
// demo dataset.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to reset data")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "data reset to seed state"})
}
