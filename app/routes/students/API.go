package students

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Thhaokip/school-management/app/config"
	"github.com/Thhaokip/school-management/app/database"
	"github.com/Thhaokip/school-management/app/models"
	"github.com/Thhaokip/school-management/app/validation"
)

// GetStudentsAPI returns all active students
func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	students, err := database.GetAllStudents(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}
	return c.JSON(students)
}

// CreateStudentAPI creates a new student. The request is either JSON or a
// multipart form carrying an optional image file.
func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := parseStudentRequest(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validation.Struct(student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validation.Message(err)})
	}

	if err := database.CreateStudent(db, student); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return c.Status(409).JSON(fiber.Map{"error": fmt.Sprintf("A student with ID %s already exists", student.StudentID)})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(201).JSON(fiber.Map{
		"id":      student.ID,
		"message": "Student created successfully",
	})
}

// UpdateStudentAPI updates an existing student
func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := parseStudentRequest(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if id := c.Params("id"); id != "" {
		student.ID = id
	}
	if student.ID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Student ID is required"})
	}

	if err := validation.Struct(student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validation.Message(err)})
	}

	if err := database.UpdateStudent(db, student); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{"message": "Student updated successfully"})
}

// DeleteStudentAPI deactivates a student; payment history keeps referencing
// the row.
func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")
	if id == "" {
		var req struct {
			ID string `json:"id"`
		}
		if err := c.BodyParser(&req); err != nil || req.ID == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Student ID is required"})
		}
		id = req.ID
	}

	if err := database.DeleteStudent(db, id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}

	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}

// parseStudentRequest decodes a student from JSON or multipart form data.
// Multipart requests may include an image file, saved under the upload
// directory with a generated name.
func parseStudentRequest(c *fiber.Ctx) (*models.Student, error) {
	contentType := c.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		student := &models.Student{}
		if err := c.BodyParser(student); err != nil {
			return nil, err
		}
		return student, nil
	}

	student := &models.Student{
		ID:            c.FormValue("id"),
		StudentID:     c.FormValue("studentId"),
		Name:          c.FormValue("name"),
		Class:         c.FormValue("class"),
		Section:       c.FormValue("section"),
		RollNumber:    c.FormValue("rollNumber"),
		ParentName:    c.FormValue("parentName"),
		ContactNumber: c.FormValue("contactNumber"),
	}
	if v := c.FormValue("email"); v != "" {
		student.Email = &v
	}
	if v := c.FormValue("address"); v != "" {
		student.Address = &v
	}
	if v := c.FormValue("dateOfBirth"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			student.DateOfBirth = &models.CustomDate{Time: t}
		}
	}
	if v := c.FormValue("joinDate"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			student.JoinDate = &models.CustomDate{Time: t}
		}
	}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		uploadDir := filepath.Join(config.AppConfig.UploadDir, "students")
		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			return nil, err
		}
		filename := uuid.New().String() + filepath.Ext(file.Filename)
		dest := filepath.Join(uploadDir, filename)
		if err := c.SaveFile(file, dest); err != nil {
			return nil, err
		}
		imagePath := "/uploads/students/" + filename
		student.Image = &imagePath
	}

	return student, nil
}
