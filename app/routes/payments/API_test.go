package payments

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thhaokip/school-management/app/models"
)

// newTestApp wires the payment handlers without the auth middleware so the
// tests exercise the handlers themselves.
func newTestApp(db *sql.DB) *fiber.App {
	app := fiber.New()
	app.Get("/api/payments", func(c *fiber.Ctx) error {
		return GetPaymentsAPI(c, db)
	})
	app.Post("/api/payments", func(c *fiber.Ctx) error {
		return RecordPaymentAPI(c, db)
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest("POST", path, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, out))
}

func expectFeeHead(mock sqlmock.Sqlmock, id, name string, isOneTime bool) {
	mock.ExpectQuery(`SELECT id, name, description, amount, is_one_time`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "description", "amount", "is_one_time", "is_active", "created_at", "updated_at"}).
			AddRow(id, name, nil, 1500.0, isOneTime, true, time.Now(), time.Now()))
	mock.ExpectQuery(`SELECT class_id FROM fee_class_mapping`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"class_id"}))
}

func TestRecordPaymentRejectsMissingFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	app := newTestApp(db)

	// amount missing: rejected before any query runs
	resp := postJSON(t, app, "/api/payments", fiber.Map{
		"studentId":     "s-1",
		"feeHeadId":     "f-1",
		"accountantId":  "a-1",
		"paymentMethod": "Cash",
	})
	assert.Equal(t, 400, resp.StatusCode)

	// accountant is mandatory on every payment
	resp = postJSON(t, app, "/api/payments", fiber.Map{
		"studentId":     "s-1",
		"feeHeadId":     "f-1",
		"amount":        100,
		"paymentMethod": "Cash",
	})
	assert.Equal(t, 400, resp.StatusCode)

	// unrecognised payment method
	resp = postJSON(t, app, "/api/payments", fiber.Map{
		"studentId":         "s-1",
		"feeHeadId":         "f-1",
		"accountantId":      "a-1",
		"academicSessionId": "sess-1",
		"amount":            100,
		"paymentMethod":     "Barter",
	})
	assert.Equal(t, 400, resp.StatusCode)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPaymentRequiresMonthForRecurringFee(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectFeeHead(mock, "f-1", "Tuition Fee", false)

	app := newTestApp(db)
	resp := postJSON(t, app, "/api/payments", fiber.Map{
		"studentId":         "s-1",
		"feeHeadId":         "f-1",
		"accountantId":      "a-1",
		"academicSessionId": "sess-1",
		"amount":            1500,
		"paymentMethod":     "Cash",
	})
	assert.Equal(t, 400, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Contains(t, body["error"], "Month is required")

	// no insert was attempted
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPaymentHappyPath(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectFeeHead(mock, "f-1", "Admission Fee", true)

	yearPrefix := time.Now().Format("06")
	receipt := "RCPT-" + yearPrefix + "-0001"
	paidAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT receipt_number FROM fee_payments WHERE receipt_number LIKE`).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO fee_payments`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "paid_date", "status"}).
			AddRow("p-1", paidAt, "paid"))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT p\.id, p\.student_id`).
		WithArgs("p-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "student_id", "fee_head_id", "accountant_id", "academic_session_id",
			"amount", "paid_date", "month", "receipt_number", "payment_method", "status",
			"student_name", "student_code", "fee_head_name", "accountant_name"}).
			AddRow("p-1", "s-1", "f-1", "a-1", "sess-1",
				1500.0, paidAt, nil, receipt, "Cash", "paid",
				"Asha Rao", "STU-001", "Admission Fee", "R. Gupta"))

	app := newTestApp(db)
	resp := postJSON(t, app, "/api/payments", fiber.Map{
		"studentId":         "s-1",
		"feeHeadId":         "f-1",
		"accountantId":      "a-1",
		"academicSessionId": "sess-1",
		"amount":            1500,
		"paymentMethod":     "Cash",
	})
	assert.Equal(t, 201, resp.StatusCode)

	var body struct {
		Payment models.FeePayment `json:"payment"`
		Message string            `json:"message"`
	}
	decodeBody(t, resp, &body)

	assert.Equal(t, "Payment recorded successfully", body.Message)
	assert.Regexp(t, regexp.MustCompile(`^RCPT-\d{2}-\d{4}$`), body.Payment.ReceiptNumber)
	assert.Equal(t, models.PaymentStatusPaid, body.Payment.Status)
	assert.Equal(t, "Asha Rao", body.Payment.StudentName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPaymentsAPI(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT p\.id, p\.student_id`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "student_id", "fee_head_id", "accountant_id", "academic_session_id",
			"amount", "paid_date", "month", "receipt_number", "payment_method", "status",
			"student_name", "student_code", "fee_head_name", "accountant_name"}).
			AddRow("p-1", "s-1", "f-1", "a-1", "sess-1",
				1500.0, time.Now(), "July", "RCPT-25-0001", "Cash", "paid",
				"Asha Rao", "STU-001", "Tuition Fee", "R. Gupta"))

	app := newTestApp(db)
	req, err := http.NewRequest("GET", "/api/payments", nil)
	require.NoError(t, err)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var payments []models.FeePayment
	decodeBody(t, resp, &payments)
	require.Len(t, payments, 1)
	assert.Equal(t, "RCPT-25-0001", payments[0].ReceiptNumber)
	require.NotNil(t, payments[0].Month)
	assert.Equal(t, "July", *payments[0].Month)
	assert.NoError(t, mock.ExpectationsWereMet())
}
