package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/myflix-service/internal/api/http/handlers"
	"github.com/spec-kit/myflix-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Movies         *handlers.MoviesHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Everything below the login and
// registration endpoints requires a bearer token; profile and favorites
// mutations additionally require the path username to match the principal.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to myFlix!")
	})

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/login", cfg.Auth.Login)
	app.Post("/users", cfg.Users.Register)

	protected := app.Group("", cfg.AuthMiddleware.Handle)

	movies := protected.Group("/movies")
	movies.Get("/", cfg.Movies.List)
	movies.Get("/genre/:genreName", cfg.Movies.GetGenre)
	movies.Get("/directors/:directorName", cfg.Movies.GetDirector)
	movies.Get("/:title", cfg.Movies.GetByTitle)

	account := protected.Group("/users/:username", auth.RequireSelf("username"))
	account.Get("/", cfg.Users.GetProfile)
	account.Put("/", cfg.Users.Update)
	account.Delete("/", cfg.Users.Delete)
	account.Post("/movies/:movieID", cfg.Users.AddFavorite)
	account.Delete("/movies/:movieID", cfg.Users.RemoveFavorite)
}
