package auth

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(db *sql.DB) *fiber.App {
	app := fiber.New()
	app.Post("/api/users", func(c *fiber.Ctx) error {
		return UsersAPI(c, db)
	})
	return app
}

func postUsers(t *testing.T, app *fiber.App, body fiber.Map) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest("POST", "/api/users", bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func expectUserByEmail(mock sqlmock.Sqlmock, email, passwordHash string) {
	mock.ExpectQuery(`SELECT id, name, email, password, role`).
		WithArgs(email).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "email", "password", "role", "is_active", "created_at", "updated_at"}).
			AddRow("u-1", "Admin User", email, passwordHash, "admin", true, time.Now(), time.Now()))
}

func TestLogin(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	hash, err := HashPassword("Secret123!")
	require.NoError(t, err)
	expectUserByEmail(mock, "admin@school.local", hash)

	resp := postUsers(t, newTestApp(db), fiber.Map{
		"email":    "admin@school.local",
		"password": "Secret123!",
	})
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "admin", body.User.Role)

	// the issued token round-trips through the validator
	claims, err := ValidateJWT(body.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	hash, err := HashPassword("Secret123!")
	require.NoError(t, err)
	expectUserByEmail(mock, "admin@school.local", hash)

	resp := postUsers(t, newTestApp(db), fiber.Map{
		"email":    "admin@school.local",
		"password": "wrong",
	})
	assert.Equal(t, 401, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid credentials", body["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUnknownEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, email, password, role`).
		WithArgs("nobody@school.local").
		WillReturnError(sql.ErrNoRows)

	resp := postUsers(t, newTestApp(db), fiber.Map{
		"email":    "nobody@school.local",
		"password": "whatever",
	})
	assert.Equal(t, 401, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChangePasswordTooShort(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	resp := postUsers(t, newTestApp(db), fiber.Map{
		"action":          "changePassword",
		"userId":          "u-1",
		"currentPassword": "Secret123!",
		"newPassword":     "short",
	})
	assert.Equal(t, 400, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
