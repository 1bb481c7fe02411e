package api

import (
	"net/http"

	"github.com/rewearhq/rewear/internal/model"
	"github.com/rewearhq/rewear/internal/store"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(st *store.Store, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{Store: st, JWTSecret: jwtSecret}
	usersHandler := &UsersHandler{Store: st}
	itemsHandler := &ItemsHandler{Store: st}
	swapsHandler := &SwapsHandler{Store: st}
	categoriesHandler := &CategoriesHandler{Store: st}
	adminHandler := &AdminHandler{Store: st}

	authMW := AuthMiddleware(jwtSecret)
	requireAdmin := RequireRole(model.RoleAdmin)

	// Public: registration, login, browsing.
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("GET /api/categories", categoriesHandler.List)
	mux.HandleFunc("GET /api/categories/{id}", categoriesHandler.Get)

	// Users: self or admin, except listing (admin only).
	mux.Handle("GET /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.List))))
	mux.Handle("GET /api/users/{id}", authMW(http.HandlerFunc(usersHandler.Get)))
	mux.Handle("PUT /api/users/{id}", authMW(http.HandlerFunc(usersHandler.Update)))
	mux.Handle("GET /api/users/{id}/items", authMW(http.HandlerFunc(usersHandler.GetItems)))
	mux.Handle("POST /api/users/{id}/points", authMW(requireAdmin(http.HandlerFunc(usersHandler.AwardPoints))))

	// Items: members list and manage their own; moderation is admin only.
	mux.Handle("POST /api/items", authMW(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("PUT /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Update)))
	mux.Handle("DELETE /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Delete)))
	mux.Handle("POST /api/items/{id}/approve", authMW(requireAdmin(http.HandlerFunc(itemsHandler.Approve))))
	mux.Handle("POST /api/items/{id}/reject", authMW(requireAdmin(http.HandlerFunc(itemsHandler.Reject))))
	mux.Handle("POST /api/items/{id}/flag", authMW(http.HandlerFunc(itemsHandler.Flag)))
	mux.Handle("POST /api/items/{id}/redeem", authMW(http.HandlerFunc(itemsHandler.Redeem)))

	// Swaps (participants; admins see all).
	mux.Handle("POST /api/swaps", authMW(http.HandlerFunc(swapsHandler.Create)))
	mux.Handle("GET /api/swaps", authMW(http.HandlerFunc(swapsHandler.List)))
	mux.Handle("PUT /api/swaps/{id}/status", authMW(http.HandlerFunc(swapsHandler.UpdateStatus)))

	// Admin: analytics and bulk data.
	mux.Handle("GET /api/admin/analytics", authMW(requireAdmin(http.HandlerFunc(adminHandler.Analytics))))
	mux.Handle("GET /api/admin/export", authMW(requireAdmin(http.HandlerFunc(adminHandler.Export))))
	mux.Handle("POST /api/admin/import", authMW(requireAdmin(http.HandlerFunc(adminHandler.Import))))
	mux.Handle("POST /api/admin/reset", authMW(requireAdmin(http.HandlerFunc(adminHandler.Reset))))

	return mux
}
