package sessions

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Thhaokip/school-management/app/database"
	"github.com/Thhaokip/school-management/app/models"
	"github.com/Thhaokip/school-management/app/validation"
)

// GetSessionsAPI returns all academic sessions
func GetSessionsAPI(c *fiber.Ctx, db *sql.DB) error {
	sessions, err := database.GetAllAcademicSessions(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to retrieve academic sessions"})
	}
	return c.JSON(sessions)
}

// GetActiveSessionAPI returns the currently active session; the payment form
// preselects it
func GetActiveSessionAPI(c *fiber.Ctx, db *sql.DB) error {
	session, err := database.GetActiveAcademicSession(db)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "No active academic session"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to retrieve active academic session"})
	}
	return c.JSON(session)
}

// GetSessionAPI returns one academic session by id
func GetSessionAPI(c *fiber.Ctx, db *sql.DB) error {
	session, err := database.GetAcademicSessionByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Academic session not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to retrieve academic session"})
	}
	return c.JSON(session)
}

// CreateSessionAPI creates a new academic session
func CreateSessionAPI(c *fiber.Ctx, db *sql.DB) error {
	var session models.AcademicSession
	if err := c.BodyParser(&session); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validation.Struct(&session); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validation.Message(err)})
	}
	if session.EndDate.Time.Before(session.StartDate.Time) {
		return c.Status(400).JSON(fiber.Map{"error": "End date must be after start date"})
	}

	if err := database.CreateAcademicSession(db, &session); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create academic session: " + err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"id":      session.ID,
		"message": "Academic session created successfully",
	})
}

// UpdateSessionAPI updates an existing academic session
func UpdateSessionAPI(c *fiber.Ctx, db *sql.DB) error {
	var session models.AcademicSession
	if err := c.BodyParser(&session); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if id := c.Params("id"); id != "" {
		session.ID = id
	}
	if session.ID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Academic session ID is required"})
	}

	if err := validation.Struct(&session); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validation.Message(err)})
	}
	if session.EndDate.Time.Before(session.StartDate.Time) {
		return c.Status(400).JSON(fiber.Map{"error": "End date must be after start date"})
	}

	if err := database.UpdateAcademicSession(db, &session); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Academic session not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update academic session"})
	}

	return c.JSON(fiber.Map{"message": "Academic session updated successfully"})
}

// DeleteSessionAPI deletes an academic session. The id comes from the JSON
// body, or from the path when provided.
func DeleteSessionAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")
	if id == "" {
		var req struct {
			ID string `json:"id"`
		}
		if err := c.BodyParser(&req); err != nil || req.ID == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Academic session ID is required"})
		}
		id = req.ID
	}

	if err := database.DeleteAcademicSession(db, id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Academic session not found"})
		}
		if errors.Is(err, database.ErrBadReference) {
			return c.Status(422).JSON(fiber.Map{"error": "Academic session has recorded payments and cannot be deleted"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete academic session"})
	}

	return c.JSON(fiber.Map{"message": "Academic session deleted successfully"})
}

// ActivateSessionAPI activates one session and deactivates all others in a
// single atomic statement
func ActivateSessionAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")

	if err := database.SetActiveAcademicSession(db, id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Academic session not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to activate academic session"})
	}

	return c.JSON(fiber.Map{"message": "Academic session activated successfully"})
}
