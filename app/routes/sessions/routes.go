package sessions

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Thhaokip/school-management/app/models"
	"github.com/Thhaokip/school-management/app/routes/auth"
)

// SetupSessionsRoutes sets up the academic session routes. Reads are open to
// both roles (the payment form needs the session list); writes are
// admin-only.
func SetupSessionsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/academic-sessions")
	api.Use(auth.AuthMiddleware)

	api.Get("/", auth.RequireRole(models.RoleAccountant), func(c *fiber.Ctx) error {
		return GetSessionsAPI(c, db)
	})

	api.Get("/active", auth.RequireRole(models.RoleAccountant), func(c *fiber.Ctx) error {
		return GetActiveSessionAPI(c, db)
	})

	api.Get("/:id", auth.RequireRole(models.RoleAccountant), func(c *fiber.Ctx) error {
		return GetSessionAPI(c, db)
	})

	api.Post("/", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return CreateSessionAPI(c, db)
	})

	api.Put("/", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return UpdateSessionAPI(c, db)
	})

	api.Put("/:id", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return UpdateSessionAPI(c, db)
	})

	api.Put("/:id/activate", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return ActivateSessionAPI(c, db)
	})

	api.Delete("/", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return DeleteSessionAPI(c, db)
	})

	api.Delete("/:id", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return DeleteSessionAPI(c, db)
	})
}
