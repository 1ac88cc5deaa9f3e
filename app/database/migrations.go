package database

import (
	"database/sql"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if _, err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`); err != nil {
		log.Printf("Failed to ensure pgcrypto extension: %v", err)
		return err
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Failed to run schema migration: %v", err)
			return err
		}
	}

	if err := addReceiptNumberConstraint(db); err != nil {
		return err
	}

	if err := seedAdminUser(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(100) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL CHECK (role IN ('admin', 'accountant')),
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS school_profile (
		id INTEGER PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		name VARCHAR(255) NOT NULL,
		address TEXT NOT NULL,
		city VARCHAR(100) NOT NULL,
		state VARCHAR(100) NOT NULL,
		zip_code VARCHAR(20) NOT NULL,
		phone VARCHAR(30) NOT NULL,
		email VARCHAR(255) NOT NULL,
		website VARCHAR(255),
		logo TEXT,
		established VARCHAR(20),
		description TEXT,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS academic_sessions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(100) NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS classes (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(100) NOT NULL,
		description TEXT,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS students (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		student_id VARCHAR(50) UNIQUE NOT NULL,
		name VARCHAR(100) NOT NULL,
		class VARCHAR(50) NOT NULL,
		section VARCHAR(20) NOT NULL,
		roll_number VARCHAR(20) NOT NULL,
		parent_name VARCHAR(100) NOT NULL,
		contact_number VARCHAR(30) NOT NULL,
		email VARCHAR(255),
		address TEXT,
		date_of_birth DATE,
		join_date DATE,
		image TEXT,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS accountants (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(30) NOT NULL,
		address TEXT,
		join_date DATE NOT NULL DEFAULT CURRENT_DATE,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS fee_heads (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(100) NOT NULL,
		description TEXT,
		amount NUMERIC(10,2) NOT NULL CHECK (amount > 0),
		is_one_time BOOLEAN NOT NULL DEFAULT false,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS fee_class_mapping (
		fee_head_id UUID NOT NULL REFERENCES fee_heads(id) ON DELETE CASCADE,
		class_id UUID NOT NULL REFERENCES classes(id) ON DELETE CASCADE,
		PRIMARY KEY (fee_head_id, class_id)
	)`,
	`CREATE TABLE IF NOT EXISTS fee_payments (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		student_id UUID NOT NULL REFERENCES students(id),
		fee_head_id UUID NOT NULL REFERENCES fee_heads(id),
		accountant_id UUID NOT NULL REFERENCES accountants(id),
		academic_session_id UUID NOT NULL REFERENCES academic_sessions(id),
		amount NUMERIC(10,2) NOT NULL CHECK (amount > 0),
		paid_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		month VARCHAR(30),
		receipt_number VARCHAR(20) NOT NULL,
		payment_method VARCHAR(30) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'paid' CHECK (status IN ('paid', 'pending', 'overdue'))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_fee_payments_student ON fee_payments(student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_fee_payments_paid_date ON fee_payments(paid_date)`,
}

// addReceiptNumberConstraint backfills the uniqueness guarantee the receipt
// allocator relies on for its retry-on-conflict loop.
func addReceiptNumberConstraint(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM pg_constraint
				WHERE conname = 'fee_payments_receipt_number_key'
			) THEN
				ALTER TABLE fee_payments ADD CONSTRAINT fee_payments_receipt_number_key UNIQUE (receipt_number);
				RAISE NOTICE 'Added unique constraint on fee_payments.receipt_number';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for receipt_number constraint: %v", err)
		return err
	}
	return nil
}

// seedAdminUser creates the initial admin account when the users table is
// empty so a fresh install is reachable.
func seedAdminUser(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), 14)
	if err != nil {
		return err
	}

	_, err = db.Exec(
		`INSERT INTO users (name, email, password, role) VALUES ($1, $2, $3, 'admin')`,
		"Administrator", "admin@school.local", string(hash),
	)
	if err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return err
	}
	log.Println("Seeded default admin user (admin@school.local) - change the password immediately")
	return nil
}
