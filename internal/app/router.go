package app

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	adminAPI "mines_backend/internal/api/admin"
	"mines_backend/internal/middleware"
)

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", adminAPI.SecretHeader},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		authHandler := sp.AuthHandler(ctx)
		minesHandler := sp.MinesHandler(ctx)
		accountHandler := sp.AccountHandler(ctx)
		withdrawalHandler := sp.WithdrawalHandler(ctx)
		adminHandler := sp.AdminHandler(ctx)
		settingsHandler := sp.SettingsHandler(ctx)

		r.Route("/api", func(api chi.Router) {
			// Auth endpoints
			api.Route("/auth", func(rr chi.Router) {
				rr.Post("/register", authHandler.Register)
				rr.Post("/login", authHandler.Login)
				rr.Post("/refresh", authHandler.Refresh)
				rr.Post("/logout", authHandler.Logout)
			})

			api.Get("/settings", settingsHandler.Get)

			// Endpoints for signed in users
			api.Group(func(rr chi.Router) {
				rr.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey()))

				rr.Post("/mines/start", minesHandler.Start)
				rr.Post("/mines/result", minesHandler.Result)

				rr.Get("/account", accountHandler.Me)
				rr.Get("/account/history", accountHandler.History)

				rr.Post("/withdrawals", withdrawalHandler.Create)
				rr.Get("/withdrawals", withdrawalHandler.List)
			})

			// Admin endpoints, secret in X-Admin-Secret
			api.Route("/admin", func(rr chi.Router) {
				rr.Post("/add-credits", adminHandler.AddCredits)
				rr.Put("/settings", adminHandler.UpdateSettings)
				rr.Get("/withdrawals", adminHandler.PendingWithdrawals)
				rr.Post("/withdrawals/{id}/approve", adminHandler.ApproveWithdrawal)
				rr.Get("/accounts", adminHandler.Accounts)
			})
		})

		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		sp.router = r
	}

	return sp.router
}
