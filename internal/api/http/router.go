package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/commerce-api/internal/api/dto"
	"github.com/spec-kit/commerce-api/internal/api/http/handlers"
	"github.com/spec-kit/commerce-api/internal/auth"
	"github.com/spec-kit/commerce-api/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Customers      *handlers.CrudHandler[dto.CustomerDTO, domain.Customer]
	Users          *handlers.CrudHandler[dto.UserDTO, domain.User]
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Login and the health probes are the
// explicit allow-list; every other route passes the authenticator first.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/users/login", cfg.Auth.Login)

	customers := api.Group("/customers", cfg.AuthMiddleware.Handle)
	customers.Post("/", cfg.Customers.Insert)
	customers.Put("/", cfg.Customers.Update)
	customers.Get("/", cfg.Customers.GetAll)
	customers.Get("/:customerId", cfg.Customers.Get)
	customers.Delete("/:customerId", cfg.Customers.Delete)

	users := api.Group("/users", cfg.AuthMiddleware.Handle)
	users.Post("/", cfg.Users.Insert)
	users.Put("/", cfg.Users.Update)
	users.Get("/", cfg.Users.GetAll)
	users.Get("/:userId", cfg.Users.Get)
	users.Delete("/:userId", cfg.Users.Delete)
}
