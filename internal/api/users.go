package api

import (
	"net/http"

	"github.com/rewearhq/rewear/internal/model"
	"github.com/rewearhq/rewear/internal/store"
)

// UsersHandler handles user endpoints.
type UsersHandler struct {
	Store *store.Store
}

type awardPointsRequest struct {
	Amount int    `json:"amount"`
	Reason string `json:"reason"`
}

// List handles GET /api/users (admin only).
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users := h.Store.GetAllUsers()
	out := make([]model.User, 0, len(users))
	for i := range users {
		users[i].PasswordHash = ""
		out = append(out, users[i])
	}
	jsonResponse(w, http.StatusOK, out)
}

// Get handles GET /api/users/{id}. Users can read themselves; admins anyone.
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	claims := GetClaims(r.Context())
	if claims.UserID != id && !model.RoleAtLeast(claims.Role, model.RoleAdmin) {
		jsonError(w, http.StatusForbidden, "insufficient permissions")
		return
	}

	user := h.Store.GetUserByID(id)
	if user == nil {
		jsonError(w, http.StatusNotFound, "user not found")
		return
	}
	jsonResponse(w, http.StatusOK, sanitizeUser(user))
}

// Update handles PUT /api/users/{id}: a profile patch for self or admin.
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	claims := GetClaims(r.Context())
	if claims.UserID != id && !model.RoleAtLeast(claims.Role, model.RoleAdmin) {
		jsonError(w, http.StatusForbidden, "insufficient permissions")
		return
	}

	var patch model.UserPatch
	if err := decodeJSON(r, &patch); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user := h.Store.UpdateUser(r.Context(), id, patch)
	if user == nil {
		jsonError(w, http.StatusNotFound, "user not found")
		return
	}
	jsonResponse(w, http.StatusOK, sanitizeUser(user))
}

// AwardPoints handles POST /api/users/{id}/points (admin only).
func (h *UsersHandler) AwardPoints(w http.ResponseWriter, r *http.Request) {
	var req awardPointsRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Amount <= 0 {
		jsonError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	balance, ok := h.Store.AwardPoints(r.Context(), r.PathValue("id"), req.Amount, req.Reason)
	if !ok {
		jsonError(w, http.StatusNotFound, "user not found")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]int{"points": balance})
}

// GetItems handles GET /api/users/{id}/items: the user's own listings.
func (h *UsersHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	items := h.Store.GetUserItems(r.PathValue("id"))
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}
