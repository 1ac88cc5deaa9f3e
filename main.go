package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/Thhaokip/school-management/app/config"
	"github.com/Thhaokip/school-management/app/database"
	"github.com/Thhaokip/school-management/app/routes/accountants"
	"github.com/Thhaokip/school-management/app/routes/auth"
	"github.com/Thhaokip/school-management/app/routes/classes"
	"github.com/Thhaokip/school-management/app/routes/feeheads"
	"github.com/Thhaokip/school-management/app/routes/payments"
	"github.com/Thhaokip/school-management/app/routes/profile"
	"github.com/Thhaokip/school-management/app/routes/sessions"
	"github.com/Thhaokip/school-management/app/routes/students"
	"github.com/Thhaokip/school-management/app/services"
)

// customErrorHandler keeps every error response on the API's JSON shape
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func main() {
	// Load environment configuration and open the database pool
	config.Load()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Initialize template engine (printable receipts)
	engine := html.New("./app/templates", ".html")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Uploaded student photos
	app.Static("/uploads", config.AppConfig.UploadDir)

	db := config.GetDB()

	// Setup auth routes
	auth.SetupUsersRoutes(app, db)

	// Setup school profile routes
	profile.SetupProfileRoutes(app, db)

	// Setup academic sessions routes
	sessions.SetupSessionsRoutes(app, db)

	// Setup classes routes
	classes.SetupClassesRoutes(app, db)

	// Setup students routes
	students.SetupStudentsRoutes(app, db)

	// Setup accountants routes
	accountants.SetupAccountantsRoutes(app, db)

	// Setup fee heads routes
	feeheads.SetupFeeHeadsRoutes(app, db)

	// Setup payments routes
	payments.SetupPaymentsRoutes(app, db)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	log.Println("Server starting on :" + config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
