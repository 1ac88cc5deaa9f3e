package database

import (
	"database/sql"

	"github.com/Thhaokip/school-management/app/models"
)

func GetAllFeeHeads(db *sql.DB) ([]*models.FeeHead, error) {
	query := `SELECT id, name, description, amount, is_one_time, is_active, created_at, updated_at
			  FROM fee_heads ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, normalizeError("list fee heads", err)
	}
	defer rows.Close()

	feeHeads := []*models.FeeHead{}
	for rows.Next() {
		f := &models.FeeHead{}
		err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.Amount,
			&f.IsOneTime, &f.IsActive, &f.CreatedAt, &f.UpdatedAt)
		if err != nil {
			continue
		}
		feeHeads = append(feeHeads, f)
	}

	// Attach class mappings; an empty list means the head applies to all
	// classes.
	for _, f := range feeHeads {
		classIDs, err := getFeeHeadClassIDs(db, f.ID)
		if err != nil {
			return nil, err
		}
		f.ClassIDs = classIDs
	}

	return feeHeads, nil
}

func GetFeeHeadByID(db *sql.DB, id string) (*models.FeeHead, error) {
	query := `SELECT id, name, description, amount, is_one_time, is_active, created_at, updated_at
			  FROM fee_heads WHERE id = $1`

	f := &models.FeeHead{}
	err := db.QueryRow(query, id).Scan(&f.ID, &f.Name, &f.Description, &f.Amount,
		&f.IsOneTime, &f.IsActive, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}

	classIDs, err := getFeeHeadClassIDs(db, f.ID)
	if err != nil {
		return nil, err
	}
	f.ClassIDs = classIDs
	return f, nil
}

func getFeeHeadClassIDs(db *sql.DB, feeHeadID string) ([]string, error) {
	rows, err := db.Query(`SELECT class_id FROM fee_class_mapping WHERE fee_head_id = $1`, feeHeadID)
	if err != nil {
		return nil, normalizeError("list fee head classes", err)
	}
	defer rows.Close()

	classIDs := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			continue
		}
		classIDs = append(classIDs, id)
	}
	return classIDs, nil
}

// CreateFeeHead inserts a fee head and its class mappings in one
// transaction.
func CreateFeeHead(db *sql.DB, f *models.FeeHead) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO fee_heads (name, description, amount, is_one_time, is_active)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`

	err = tx.QueryRow(query, f.Name, f.Description, f.Amount, f.IsOneTime, f.IsActive).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return normalizeError("create fee head", err)
	}

	if err = insertClassMappings(tx, f.ID, f.ClassIDs); err != nil {
		return err
	}

	return tx.Commit()
}

// UpdateFeeHead updates a fee head and replaces its class mappings
// (delete-all, then bulk insert) in one transaction.
func UpdateFeeHead(db *sql.DB, f *models.FeeHead) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `UPDATE fee_heads SET
			  name = $1, description = $2, amount = $3, is_one_time = $4, is_active = $5, updated_at = NOW()
			  WHERE id = $6`

	result, err := tx.Exec(query, f.Name, f.Description, f.Amount, f.IsOneTime, f.IsActive, f.ID)
	if err != nil {
		return normalizeError("update fee head", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}

	if _, err = tx.Exec(`DELETE FROM fee_class_mapping WHERE fee_head_id = $1`, f.ID); err != nil {
		return normalizeError("update fee head mappings", err)
	}
	if err = insertClassMappings(tx, f.ID, f.ClassIDs); err != nil {
		return err
	}

	return tx.Commit()
}

func insertClassMappings(tx *sql.Tx, feeHeadID string, classIDs []string) error {
	for _, classID := range classIDs {
		_, err := tx.Exec(`INSERT INTO fee_class_mapping (fee_head_id, class_id) VALUES ($1, $2)`, feeHeadID, classID)
		if err != nil {
			return normalizeError("insert class mapping", err)
		}
	}
	return nil
}
