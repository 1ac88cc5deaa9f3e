package students

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(db *sql.DB) *fiber.App {
	app := fiber.New()
	app.Post("/api/students", func(c *fiber.Ctx) error {
		return CreateStudentAPI(c, db)
	})
	return app
}

func postStudent(t *testing.T, app *fiber.App, body fiber.Map) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest("POST", "/api/students", bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func studentBody() fiber.Map {
	return fiber.Map{
		"studentId":     "STU-001",
		"name":          "Asha Rao",
		"class":         "VII",
		"section":       "B",
		"rollNumber":    "14",
		"parentName":    "Meera Rao",
		"contactNumber": "+91 98600 00000",
	}
}

func TestCreateStudent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO students`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "join_date", "is_active", "created_at", "updated_at"}).
			AddRow("s-1", time.Now(), true, time.Now(), time.Now()))

	resp := postStudent(t, newTestApp(db), studentBody())
	assert.Equal(t, 201, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateStudentDuplicateCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO students`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "students_student_id_key"})

	resp := postStudent(t, newTestApp(db), studentBody())
	assert.Equal(t, 409, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "STU-001")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateStudentMissingFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	resp := postStudent(t, newTestApp(db), fiber.Map{"name": "Asha Rao"})
	assert.Equal(t, 400, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
