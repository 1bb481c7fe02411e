package api

import (
	"net/http"

	"github.com/rewearhq/rewear/internal/model"
	"github.com/rewearhq/rewear/internal/store"
)

// SwapsHandler handles swap proposal and transition endpoints.
type SwapsHandler struct {
	Store *store.Store
}

type createSwapRequest struct {
	ToUserID   string `json:"to_user_id"`
	FromItemID string `json:"from_item_id"`
	ToItemID   string `json:"to_item_id"`
}

type updateSwapRequest struct {
	Status string `json:"status"`
}

// Create handles POST /api/swaps: the caller proposes a swap.
func (h *SwapsHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req createSwapRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ToUserID == "" || req.FromItemID == "" || req.ToItemID == "" {
		jsonError(w, http.StatusBadRequest, "to_user_id, from_item_id and to_item_id required")
		return
	}
	if req.ToUserID == claims.UserID {
		jsonError(w, http.StatusBadRequest, "cannot propose a swap with yourself")
		return
	}

	swap := h.Store.CreateSwap(r.Context(), store.NewSwap{
		FromUserID: claims.UserID,
		ToUserID:   req.ToUserID,
		FromItemID: req.FromItemID,
		ToItemID:   req.ToItemID,
	})

	jsonResponse(w, http.StatusCreated, swap)
}

// List handles GET /api/swaps: the caller's swaps; admins see everything.
func (h *SwapsHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var swaps []model.Swap
	if model.RoleAtLeast(claims.Role, model.RoleAdmin) {
		swaps = h.Store.GetAllSwaps()
	} else {
		swaps = h.Store.GetUserSwaps(claims.UserID)
	}

	if swaps == nil {
		swaps = []model.Swap{}
	}
	jsonResponse(w, http.StatusOK, swaps)
}

// UpdateStatus handles PUT /api/swaps/{id}/status. Only a participant or an
// admin may transition a swap.
func (h *SwapsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	claims := GetClaims(r.Context())

	var req updateSwapRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	existing := h.Store.GetSwapByID(id)
	if existing == nil {
		jsonError(w, http.StatusNotFound, "swap not found")
		return
	}
	isParticipant := existing.FromUserID == claims.UserID || existing.ToUserID == claims.UserID
	if !isParticipant && !model.RoleAtLeast(claims.Role, model.RoleAdmin) {
		jsonError(w, http.StatusForbidden, "not a swap participant")
		return
	}

	swap, err := h.Store.UpdateSwapStatus(r.Context(), id, req.Status)
	if err == store.ErrInvalidStatus {
		jsonError(w, http.StatusBadRequest, "invalid status")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update swap")
		return
	}
	if swap == nil {
		jsonError(w, http.StatusNotFound, "swap not found")
		return
	}
	jsonResponse(w, http.StatusOK, swap)
}
