package students

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Thhaokip/school-management/app/models"
	"github.com/Thhaokip/school-management/app/routes/auth"
)

// SetupStudentsRoutes sets up the students routes
func SetupStudentsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", auth.RequireRole(models.RoleAccountant), func(c *fiber.Ctx) error {
		return GetStudentsAPI(c, db)
	})

	api.Post("/", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return CreateStudentAPI(c, db)
	})

	api.Put("/", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return UpdateStudentAPI(c, db)
	})

	api.Put("/:id", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return UpdateStudentAPI(c, db)
	})

	api.Delete("/", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return DeleteStudentAPI(c, db)
	})

	api.Delete("/:id", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return DeleteStudentAPI(c, db)
	})
}
