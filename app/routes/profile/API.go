package profile

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Thhaokip/school-management/app/database"
	"github.com/Thhaokip/school-management/app/models"
	"github.com/Thhaokip/school-management/app/validation"
)

// GetProfileAPI returns the school profile singleton
func GetProfileAPI(c *fiber.Ctx, db *sql.DB) error {
	profile, err := database.GetSchoolProfile(db)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"message": "No school profile found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch school profile"})
	}
	return c.JSON(profile)
}

// SaveProfileAPI creates or replaces the school profile. The profile is a
// singleton, so repeated saves always land on the same row.
func SaveProfileAPI(c *fiber.Ctx, db *sql.DB) error {
	profile := &models.SchoolProfile{}
	if err := c.BodyParser(profile); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validation.Struct(profile); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validation.Message(err)})
	}

	if err := database.SaveSchoolProfile(db, profile); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save school profile"})
	}

	return c.JSON(fiber.Map{"message": "School profile saved successfully"})
}
