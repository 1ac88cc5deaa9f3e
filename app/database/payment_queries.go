package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Thhaokip/school-management/app/models"
)

const (
	receiptPrefix = "RCPT"

	// Concurrent submissions in the same year can allocate the same receipt
	// number; the unique constraint rejects the loser and the whole
	// read-increment-insert transaction is retried.
	maxReceiptAttempts = 3
)

// FormatReceiptNumber renders a receipt number for the given two-digit year
// prefix and sequence value, e.g. RCPT-24-0007. Suffixes past 9999 widen
// beyond four digits rather than rolling over.
func FormatReceiptNumber(yearPrefix string, seq int) string {
	return fmt.Sprintf("%s-%s-%04d", receiptPrefix, yearPrefix, seq)
}

// ParseReceiptSuffix extracts the numeric sequence from a receipt number.
func ParseReceiptSuffix(receiptNumber string) (int, error) {
	idx := strings.LastIndex(receiptNumber, "-")
	if idx < 0 || idx == len(receiptNumber)-1 {
		return 0, fmt.Errorf("malformed receipt number %q", receiptNumber)
	}
	return strconv.Atoi(receiptNumber[idx+1:])
}

// nextReceiptNumber computes the next year-scoped receipt number from the
// highest existing one. Suffixes widen past four digits, so ordering by
// length first keeps the comparison numeric where plain varchar ordering
// would rank 9999 above 10000.
func nextReceiptNumber(tx *sql.Tx, now time.Time) (string, error) {
	yearPrefix := now.Format("06")
	pattern := receiptPrefix + "-" + yearPrefix + "-%"

	var last string
	err := tx.QueryRow(
		`SELECT receipt_number FROM fee_payments WHERE receipt_number LIKE $1
		 ORDER BY length(receipt_number) DESC, receipt_number DESC LIMIT 1`,
		pattern,
	).Scan(&last)

	seq := 1
	switch {
	case err == nil:
		n, perr := ParseReceiptSuffix(last)
		if perr != nil {
			return "", fmt.Errorf("failed to parse last receipt number: %v", perr)
		}
		seq = n + 1
	case errors.Is(err, sql.ErrNoRows):
		// first payment of the year
	default:
		return "", err
	}

	return FormatReceiptNumber(yearPrefix, seq), nil
}

// RecordPayment durably records a fee payment with a freshly allocated
// receipt number. paid_date and status are server-assigned; callers cannot
// influence either. On a receipt-number collision the allocation is retried.
func RecordPayment(db *sql.DB, p *models.FeePayment) error {
	var lastErr error
	for attempt := 0; attempt < maxReceiptAttempts; attempt++ {
		err := insertPayment(db, p)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrDuplicate) {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("failed to allocate a receipt number after %d attempts: %w", maxReceiptAttempts, lastErr)
}

func insertPayment(db *sql.DB, p *models.FeePayment) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	receiptNumber, err := nextReceiptNumber(tx, time.Now())
	if err != nil {
		return normalizeError("allocate receipt number", err)
	}

	query := `INSERT INTO fee_payments
			  (student_id, fee_head_id, accountant_id, academic_session_id, amount, paid_date, month, receipt_number, payment_method, status)
			  VALUES ($1, $2, $3, $4, $5, NOW(), $6, $7, $8, 'paid')
			  RETURNING id, paid_date, status`

	err = tx.QueryRow(query,
		p.StudentID, p.FeeHeadID, p.AccountantID, p.AcademicSessionID,
		p.Amount, p.Month, receiptNumber, p.PaymentMethod,
	).Scan(&p.ID, &p.PaidDate, &p.Status)
	if err != nil {
		return normalizeError("insert payment", err)
	}

	if err = tx.Commit(); err != nil {
		return normalizeError("insert payment", err)
	}

	p.ReceiptNumber = receiptNumber
	return nil
}

const paymentSelect = `SELECT p.id, p.student_id, p.fee_head_id, p.accountant_id, p.academic_session_id,
			  p.amount, p.paid_date, p.month, p.receipt_number, p.payment_method, p.status,
			  s.name AS student_name, s.student_id AS student_code,
			  f.name AS fee_head_name, a.name AS accountant_name
			  FROM fee_payments p
			  LEFT JOIN students s ON p.student_id = s.id
			  LEFT JOIN fee_heads f ON p.fee_head_id = f.id
			  LEFT JOIN accountants a ON p.accountant_id = a.id`

func scanPayment(scan func(dest ...interface{}) error) (*models.FeePayment, error) {
	p := &models.FeePayment{}
	var month, studentName, studentCode, feeHeadName, accountantName sql.NullString
	err := scan(
		&p.ID, &p.StudentID, &p.FeeHeadID, &p.AccountantID, &p.AcademicSessionID,
		&p.Amount, &p.PaidDate, &month, &p.ReceiptNumber, &p.PaymentMethod, &p.Status,
		&studentName, &studentCode, &feeHeadName, &accountantName,
	)
	if err != nil {
		return nil, err
	}
	if month.Valid {
		p.Month = &month.String
	}
	p.StudentName = studentName.String
	p.StudentCode = studentCode.String
	p.FeeHeadName = feeHeadName.String
	p.AccountantName = accountantName.String
	return p, nil
}

// GetAllPayments returns all payments enriched with student, fee head and
// accountant names, newest first.
func GetAllPayments(db *sql.DB) ([]*models.FeePayment, error) {
	rows, err := db.Query(paymentSelect + ` ORDER BY p.paid_date DESC`)
	if err != nil {
		return nil, normalizeError("list payments", err)
	}
	defer rows.Close()

	payments := []*models.FeePayment{}
	for rows.Next() {
		p, err := scanPayment(rows.Scan)
		if err != nil {
			continue
		}
		payments = append(payments, p)
	}
	return payments, nil
}

// GetPaymentWithDetails returns one payment with its display names attached.
func GetPaymentWithDetails(db *sql.DB, id string) (*models.FeePayment, error) {
	row := db.QueryRow(paymentSelect+` WHERE p.id = $1`, id)
	return scanPayment(row.Scan)
}
