package feeheads

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Thhaokip/school-management/app/models"
	"github.com/Thhaokip/school-management/app/routes/auth"
)

// SetupFeeHeadsRoutes sets up the fee heads routes. Accountants need read
// access to populate the payment form.
func SetupFeeHeadsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/fee-heads")
	api.Use(auth.AuthMiddleware)

	api.Get("/", auth.RequireRole(models.RoleAccountant), func(c *fiber.Ctx) error {
		return GetFeeHeadsAPI(c, db)
	})

	api.Post("/", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return CreateFeeHeadAPI(c, db)
	})

	api.Put("/", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return UpdateFeeHeadAPI(c, db)
	})

	api.Put("/:id", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return UpdateFeeHeadAPI(c, db)
	})
}
