package api

import (
	"net/http"

	"github.com/rewearhq/rewear/internal/model"
	"github.com/rewearhq/rewear/internal/query"
	"github.com/rewearhq/rewear/internal/store"
)

// ItemsHandler handles item listing, search and moderation endpoints.
type ItemsHandler struct {
	Store *store.Store
}

type createItemRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Gender          string   `json:"gender"`
	Size            string   `json:"size"`
	Condition       string   `json:"condition"`
	Brand           string   `json:"brand"`
	Color           string   `json:"color"`
	Material        string   `json:"material"`
	Points          int      `json:"points"`
	Tags            []string `json:"tags"`
	Images          []string `json:"images"`
	ExchangeOptions []string `json:"exchange_options"`
}

type rejectItemRequest struct {
	Reason string `json:"reason"`
}

type flagItemRequest struct {
	Reason string `json:"reason"`
}

// List handles GET /api/items: search over approved listings.
// Query params: query, category, gender, size, condition, color, min_points,
// max_points, sort.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	items := query.Search(h.Store.GetAllItems(), q.Get("query"), query.Filters{
		Category:  q.Get("category"),
		Gender:    q.Get("gender"),
		Size:      q.Get("size"),
		Condition: q.Get("condition"),
		Color:     q.Get("color"),
		MinPoints: q.Get("min_points"),
		MaxPoints: q.Get("max_points"),
	})
	items = query.Sort(items, q.Get("sort"))

	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Get handles GET /api/items/{id}. Every read counts as a view.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	item := h.Store.GetItemByID(id)
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	views, _ := h.Store.IncrementItemViews(r.Context(), id)
	item.Views = views
	jsonResponse(w, http.StatusOK, item)
}

// Create handles POST /api/items. The listing belongs to the caller and
// starts in the moderation queue.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title == "" {
		jsonError(w, http.StatusBadRequest, "title required")
		return
	}
	if req.Condition != "" && !model.ValidCondition(req.Condition) {
		jsonError(w, http.StatusBadRequest, "invalid condition")
		return
	}

	item := h.Store.CreateItem(r.Context(), store.NewItem{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Gender:          req.Gender,
		Size:            req.Size,
		Condition:       req.Condition,
		Brand:           req.Brand,
		Color:           req.Color,
		Material:        req.Material,
		Points:          req.Points,
		Tags:            req.Tags,
		Images:          req.Images,
		ExchangeOptions: req.ExchangeOptions,
		UserID:          claims.UserID,
	})

	jsonResponse(w, http.StatusCreated, item)
}

// Update handles PUT /api/items/{id}: an owner (or admin) edit.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.canManage(w, r, id) {
		return
	}

	var patch model.ItemPatch
	if err := decodeJSON(r, &patch); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if patch.Condition != nil && !model.ValidCondition(*patch.Condition) {
		jsonError(w, http.StatusBadRequest, "invalid condition")
		return
	}

	item := h.Store.UpdateItem(r.Context(), id, patch)
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}: owner or admin, hard delete.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.canManage(w, r, id) {
		return
	}

	if h.Store.DeleteItem(r.Context(), id) == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// Approve handles POST /api/items/{id}/approve (admin only).
func (h *ItemsHandler) Approve(w http.ResponseWriter, r *http.Request) {
	item := h.Store.ApproveItem(r.Context(), r.PathValue("id"))
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Reject handles POST /api/items/{id}/reject (admin only).
func (h *ItemsHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req rejectItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item := h.Store.RejectItem(r.Context(), r.PathValue("id"), req.Reason)
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Flag handles POST /api/items/{id}/flag: any member can report a listing.
func (h *ItemsHandler) Flag(w http.ResponseWriter, r *http.Request) {
	var req flagItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Reason == "" {
		jsonError(w, http.StatusBadRequest, "reason required")
		return
	}

	item := h.Store.FlagItem(r.Context(), r.PathValue("id"), req.Reason)
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Redeem handles POST /api/items/{id}/redeem: the caller exchanges points
// for the listing.
func (h *ItemsHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	item, err := h.Store.RedeemItem(r.Context(), r.PathValue("id"), claims.UserID)
	switch {
	case err == store.ErrItemUnavailable:
		jsonError(w, http.StatusConflict, "item not available")
		return
	case err == store.ErrInsufficientPoints:
		jsonError(w, http.StatusPaymentRequired, "insufficient points")
		return
	case err != nil:
		jsonError(w, http.StatusInternalServerError, "failed to redeem item")
		return
	case item == nil:
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// canManage writes an error response and returns false unless the caller
// owns the item or is an admin.
func (h *ItemsHandler) canManage(w http.ResponseWriter, r *http.Request, id string) bool {
	claims := GetClaims(r.Context())
	if model.RoleAtLeast(claims.Role, model.RoleAdmin) {
		return true
	}

	item := h.Store.GetItemByID(id)
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return false
	}
	if item.UserID != claims.UserID {
		jsonError(w, http.StatusForbidden, "not the item owner")
		return false
	}
	return true
}
