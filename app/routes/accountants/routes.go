package accountants

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Thhaokip/school-management/app/models"
	"github.com/Thhaokip/school-management/app/routes/auth"
)

// SetupAccountantsRoutes sets up the accountants routes. The payment form
// lists accountants, so reads are open to both roles.
func SetupAccountantsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/accountants")
	api.Use(auth.AuthMiddleware)

	api.Get("/", auth.RequireRole(models.RoleAccountant), func(c *fiber.Ctx) error {
		return GetAccountantsAPI(c, db)
	})

	api.Post("/", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return CreateAccountantAPI(c, db)
	})

	api.Put("/", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return UpdateAccountantAPI(c, db)
	})

	api.Put("/:id", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return UpdateAccountantAPI(c, db)
	})
}
