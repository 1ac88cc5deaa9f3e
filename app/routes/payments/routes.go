package payments

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Thhaokip/school-management/app/models"
	"github.com/Thhaokip/school-management/app/routes/auth"
)

// SetupPaymentsRoutes sets up the fee payment routes. Collecting payments is
// the accountant's day job, so the whole group is open to both roles.
func SetupPaymentsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/payments")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RequireRole(models.RoleAccountant))

	api.Get("/", func(c *fiber.Ctx) error {
		return GetPaymentsAPI(c, db)
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return RecordPaymentAPI(c, db)
	})

	api.Get("/:id/receipt", func(c *fiber.Ctx) error {
		return GetReceiptAPI(c, db)
	})
}
