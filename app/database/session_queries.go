package database

import (
	"database/sql"

	"github.com/Thhaokip/school-management/app/models"
)

func GetAllAcademicSessions(db *sql.DB) ([]*models.AcademicSession, error) {
	query := `SELECT id, name, start_date, end_date, is_active, created_at, updated_at
			  FROM academic_sessions ORDER BY start_date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, normalizeError("list academic sessions", err)
	}
	defer rows.Close()

	sessions := []*models.AcademicSession{}
	for rows.Next() {
		s := &models.AcademicSession{}
		err := rows.Scan(&s.ID, &s.Name, &s.StartDate.Time, &s.EndDate.Time,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func GetAcademicSessionByID(db *sql.DB, id string) (*models.AcademicSession, error) {
	query := `SELECT id, name, start_date, end_date, is_active, created_at, updated_at
			  FROM academic_sessions WHERE id = $1`

	s := &models.AcademicSession{}
	err := db.QueryRow(query, id).Scan(&s.ID, &s.Name, &s.StartDate.Time, &s.EndDate.Time,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetActiveAcademicSession returns the currently active session, or
// sql.ErrNoRows when none is active.
func GetActiveAcademicSession(db *sql.DB) (*models.AcademicSession, error) {
	query := `SELECT id, name, start_date, end_date, is_active, created_at, updated_at
			  FROM academic_sessions WHERE is_active LIMIT 1`

	s := &models.AcademicSession{}
	err := db.QueryRow(query).Scan(&s.ID, &s.Name, &s.StartDate.Time, &s.EndDate.Time,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateAcademicSession inserts a session. When the new session is created
// active, all others are deactivated in the same transaction so the
// single-active invariant holds even if the commit races another writer.
func CreateAcademicSession(db *sql.DB, s *models.AcademicSession) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if s.IsActive {
		if _, err = tx.Exec(`UPDATE academic_sessions SET is_active = false WHERE is_active`); err != nil {
			return normalizeError("create academic session", err)
		}
	}

	insertQuery := `INSERT INTO academic_sessions (name, start_date, end_date, is_active)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at, updated_at`

	err = tx.QueryRow(insertQuery, s.Name, s.StartDate.Time, s.EndDate.Time, s.IsActive).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return normalizeError("create academic session", err)
	}

	return tx.Commit()
}

func UpdateAcademicSession(db *sql.DB, s *models.AcademicSession) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if s.IsActive {
		if _, err = tx.Exec(`UPDATE academic_sessions SET is_active = false WHERE id != $1 AND is_active`, s.ID); err != nil {
			return normalizeError("update academic session", err)
		}
	}

	updateQuery := `UPDATE academic_sessions
			  SET name = $1, start_date = $2, end_date = $3, is_active = $4, updated_at = NOW()
			  WHERE id = $5`

	result, err := tx.Exec(updateQuery, s.Name, s.StartDate.Time, s.EndDate.Time, s.IsActive, s.ID)
	if err != nil {
		return normalizeError("update academic session", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}

func DeleteAcademicSession(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM academic_sessions WHERE id = $1`, id)
	if err != nil {
		return normalizeError("delete academic session", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetActiveAcademicSession activates one session and deactivates every other
// in a single conditional statement, so a crash can never leave two sessions
// active or none mid-switch.
func SetActiveAcademicSession(db *sql.DB, sessionID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	if err = tx.QueryRow(`SELECT EXISTS (SELECT 1 FROM academic_sessions WHERE id = $1)`, sessionID).Scan(&exists); err != nil {
		return normalizeError("set active academic session", err)
	}
	if !exists {
		return sql.ErrNoRows
	}

	if _, err = tx.Exec(`UPDATE academic_sessions SET is_active = (id = $1), updated_at = NOW()`, sessionID); err != nil {
		return normalizeError("set active academic session", err)
	}

	return tx.Commit()
}

// DeactivateExpiredSessions clears the active flag on sessions whose end
// date has passed. It only ever deactivates, so the single-active invariant
// is preserved. Returns the number of sessions swept.
func DeactivateExpiredSessions(db *sql.DB) (int64, error) {
	query := `UPDATE academic_sessions SET is_active = false, updated_at = NOW()
			  WHERE is_active AND end_date < CURRENT_DATE`

	result, err := db.Exec(query)
	if err != nil {
		return 0, normalizeError("deactivate expired sessions", err)
	}
	n, _ := result.RowsAffected()
	return n, nil
}
