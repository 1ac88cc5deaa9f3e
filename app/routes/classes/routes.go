package classes

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Thhaokip/school-management/app/models"
	"github.com/Thhaokip/school-management/app/routes/auth"
)

// SetupClassesRoutes sets up the classes routes
func SetupClassesRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)

	api.Get("/", auth.RequireRole(models.RoleAccountant), func(c *fiber.Ctx) error {
		return GetClassesAPI(c, db)
	})

	api.Post("/", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return CreateClassAPI(c, db)
	})

	api.Put("/", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return UpdateClassAPI(c, db)
	})

	api.Put("/:id", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return UpdateClassAPI(c, db)
	})

	api.Delete("/", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return DeleteClassAPI(c, db)
	})

	api.Delete("/:id", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return DeleteClassAPI(c, db)
	})
}
