package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mitrokit/ventures-api/internal/api/http/handlers"
	"github.com/mitrokit/ventures-api/internal/auth"
	"github.com/mitrokit/ventures-api/internal/domain"
)

// PublicPrefixes are the path prefixes that bypass the route gate.
var PublicPrefixes = []string{
	"/login",
	"/api/auth/login",
	"/api/contact",
	"/api/subscribe",
	"/api/repos",
	"/health",
}

// ProtectedPrefixes are the path prefixes the route gate intercepts.
var ProtectedPrefixes = []string{
	"/admin",
	"/api/admin",
}

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	Contact       *handlers.ContactHandler
	Subscribe     *handlers.SubscribeHandler
	Repos         *handlers.ReposHandler
	Admin         *handlers.AdminHandler
	Gate          *auth.RouteGate
	Authenticator *auth.Authenticator
}

// RegisterRoutes wires HTTP routes. The route gate runs before routing;
// protected handlers additionally run the authenticator themselves, so the
// gate stays a first-line check rather than the authority.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.Gate.Handle)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/login", cfg.Auth.LoginPage)
	app.Post("/api/auth/login", cfg.Auth.Login)
	app.Post("/api/auth/logout", cfg.Auth.Logout)

	app.Get("/api/contact", cfg.Contact.Describe)
	app.Post("/api/contact", cfg.Contact.Submit)

	app.Get("/api/subscribe", cfg.Subscribe.Describe)
	app.Post("/api/subscribe", cfg.Subscribe.Subscribe)

	app.Get("/api/repos", cfg.Repos.List)

	adminPage := app.Group("/admin", cfg.Authenticator.Handle, auth.RequireRole(domain.RoleAdmin))
	adminPage.Get("/", cfg.Admin.Dashboard)

	adminAPI := app.Group("/api/admin", cfg.Authenticator.Handle, auth.RequireRole(domain.RoleAdmin))
	adminAPI.Get("/messages", cfg.Admin.ListMessages)
	adminAPI.Patch("/messages/:id/read", cfg.Admin.MarkMessageRead)
	adminAPI.Get("/subscribers", cfg.Admin.ListSubscribers)
	adminAPI.Get("/stats", cfg.Admin.Stats)
}
