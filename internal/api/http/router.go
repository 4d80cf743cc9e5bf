package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/campus-alert-service/internal/api/http/handlers"
	"github.com/spec-kit/campus-alert-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Accounts       *handlers.AccountsHandler
	Notifications  *handlers.NotificationsHandler
	Evacuation     *handlers.EvacuationHandler
	Stats          *handlers.StatsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Accounts.Register)
	authGroup.Post("/login", cfg.Accounts.Login)
	authGroup.Post("/password/reset/request", cfg.Accounts.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Accounts.ConfirmPasswordReset)
	authGroup.Post("/password/change", cfg.AuthMiddleware.Handle, auth.RequireAccount(), cfg.Accounts.ChangePassword)

	api := app.Group("/api", cfg.AuthMiddleware.Handle, auth.RequireAccount())
	api.Get("/profile", cfg.Accounts.Me)
	api.Put("/profile", cfg.Accounts.UpdateProfile)
	api.Get("/notifications", cfg.Notifications.List)
	api.Get("/dashboard", cfg.Notifications.Dashboard)

	admin := api.Group("", auth.RequireAdmin())
	admin.Get("/evacuation/:category", cfg.Evacuation.Status)
	admin.Post("/evacuation/:category", cfg.Evacuation.Trigger)
	admin.Post("/broadcast", cfg.Evacuation.Announce)
	admin.Post("/notifications", cfg.Evacuation.SendDirect)
	admin.Get("/stats", cfg.Stats.Aggregate)
	admin.Post("/accounts", cfg.Accounts.Create)
	admin.Delete("/accounts/:id", cfg.Accounts.Deactivate)
}
