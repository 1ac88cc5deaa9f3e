package profile

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Thhaokip/school-management/app/models"
	"github.com/Thhaokip/school-management/app/routes/auth"
)

// SetupProfileRoutes sets up the school profile routes
func SetupProfileRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/school-profile")
	api.Use(auth.AuthMiddleware)

	api.Get("/", auth.RequireRole(models.RoleAccountant), func(c *fiber.Ctx) error {
		return GetProfileAPI(c, db)
	})

	api.Post("/", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return SaveProfileAPI(c, db)
	})
}
