package database

import (
	"database/sql"
	"strconv"

	"github.com/Thhaokip/school-management/app/models"
)

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, name, email, password, role, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password,
		&user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, name, email, password, role, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password,
		&user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return normalizeError("update user password", err)
}

// Students

func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT id, student_id, name, class, section, roll_number, parent_name, contact_number,
			  email, address, date_of_birth, join_date, image, is_active, created_at, updated_at
			  FROM students WHERE is_active = true
			  ORDER BY class, section, roll_number`

	rows, err := db.Query(query)
	if err != nil {
		return nil, normalizeError("list students", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s := &models.Student{}
		var dob, joinDate sql.NullTime
		err := rows.Scan(
			&s.ID, &s.StudentID, &s.Name, &s.Class, &s.Section, &s.RollNumber,
			&s.ParentName, &s.ContactNumber, &s.Email, &s.Address,
			&dob, &joinDate, &s.Image, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			continue
		}
		if dob.Valid {
			s.DateOfBirth = &models.CustomDate{Time: dob.Time}
		}
		if joinDate.Valid {
			s.JoinDate = &models.CustomDate{Time: joinDate.Time}
		}
		students = append(students, s)
	}
	return students, nil
}

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := `SELECT id, student_id, name, class, section, roll_number, parent_name, contact_number,
			  email, address, date_of_birth, join_date, image, is_active, created_at, updated_at
			  FROM students WHERE id = $1`

	s := &models.Student{}
	var dob, joinDate sql.NullTime
	err := db.QueryRow(query, id).Scan(
		&s.ID, &s.StudentID, &s.Name, &s.Class, &s.Section, &s.RollNumber,
		&s.ParentName, &s.ContactNumber, &s.Email, &s.Address,
		&dob, &joinDate, &s.Image, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if dob.Valid {
		s.DateOfBirth = &models.CustomDate{Time: dob.Time}
	}
	if joinDate.Valid {
		s.JoinDate = &models.CustomDate{Time: joinDate.Time}
	}
	return s, nil
}

// CreateStudent inserts a student row. The unique constraint on student_id
// surfaces duplicates as ErrDuplicate.
func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students
			  (student_id, name, class, section, roll_number, parent_name, contact_number,
			   email, address, date_of_birth, join_date, image)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, COALESCE($11, CURRENT_DATE), $12)
			  RETURNING id, join_date, is_active, created_at, updated_at`

	var dob, joinDate interface{}
	if s.DateOfBirth != nil {
		dob = s.DateOfBirth.Time
	}
	if s.JoinDate != nil {
		joinDate = s.JoinDate.Time
	}

	var joined sql.NullTime
	err := db.QueryRow(query,
		s.StudentID, s.Name, s.Class, s.Section, s.RollNumber,
		s.ParentName, s.ContactNumber, s.Email, s.Address, dob, joinDate, s.Image,
	).Scan(&s.ID, &joined, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return normalizeError("create student", err)
	}
	if joined.Valid {
		s.JoinDate = &models.CustomDate{Time: joined.Time}
	}
	return nil
}

func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students SET
			  name = $1, class = $2, section = $3, roll_number = $4, parent_name = $5,
			  contact_number = $6, email = $7, address = $8, date_of_birth = $9,
			  join_date = COALESCE($10, join_date), image = COALESCE($11, image), updated_at = NOW()
			  WHERE id = $12`

	var dob, joinDate, image interface{}
	if s.DateOfBirth != nil {
		dob = s.DateOfBirth.Time
	}
	if s.JoinDate != nil {
		joinDate = s.JoinDate.Time
	}
	if s.Image != nil {
		image = *s.Image
	}

	result, err := db.Exec(query,
		s.Name, s.Class, s.Section, s.RollNumber, s.ParentName,
		s.ContactNumber, s.Email, s.Address, dob, joinDate, image, s.ID,
	)
	if err != nil {
		return normalizeError("update student", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteStudent deactivates a student. Payment history references the row,
// so removal is a soft delete.
func DeleteStudent(db *sql.DB, id string) error {
	result, err := db.Exec(`UPDATE students SET is_active = false, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return normalizeError("delete student", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Accountants

func GetAllAccountants(db *sql.DB) ([]*models.Accountant, error) {
	query := `SELECT id, name, email, phone, address, join_date, is_active, created_at, updated_at
			  FROM accountants ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, normalizeError("list accountants", err)
	}
	defer rows.Close()

	accountants := []*models.Accountant{}
	for rows.Next() {
		a := &models.Accountant{}
		err := rows.Scan(
			&a.ID, &a.Name, &a.Email, &a.Phone, &a.Address,
			&a.JoinDate.Time, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			continue
		}
		accountants = append(accountants, a)
	}
	return accountants, nil
}

func GetAccountantByID(db *sql.DB, id string) (*models.Accountant, error) {
	query := `SELECT id, name, email, phone, address, join_date, is_active, created_at, updated_at
			  FROM accountants WHERE id = $1`

	a := &models.Accountant{}
	err := db.QueryRow(query, id).Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &a.Address,
		&a.JoinDate.Time, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func CreateAccountant(db *sql.DB, a *models.Accountant) error {
	query := `INSERT INTO accountants (name, email, phone, address, join_date, is_active)
			  VALUES ($1, $2, $3, $4, COALESCE($5, CURRENT_DATE), $6)
			  RETURNING id, join_date, created_at, updated_at`

	var joinDate interface{}
	if !a.JoinDate.Time.IsZero() {
		joinDate = a.JoinDate.Time
	}

	err := db.QueryRow(query, a.Name, a.Email, a.Phone, a.Address, joinDate, a.IsActive).
		Scan(&a.ID, &a.JoinDate.Time, &a.CreatedAt, &a.UpdatedAt)
	return normalizeError("create accountant", err)
}

func UpdateAccountant(db *sql.DB, a *models.Accountant) error {
	query := `UPDATE accountants SET
			  name = $1, email = $2, phone = $3, address = $4,
			  join_date = COALESCE($5, join_date), is_active = $6, updated_at = NOW()
			  WHERE id = $7`

	var joinDate interface{}
	if !a.JoinDate.Time.IsZero() {
		joinDate = a.JoinDate.Time
	}

	result, err := db.Exec(query, a.Name, a.Email, a.Phone, a.Address, joinDate, a.IsActive, a.ID)
	if err != nil {
		return normalizeError("update accountant", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Classes

func GetAllClasses(db *sql.DB) ([]*models.Class, error) {
	query := `SELECT id, name, description, is_active, created_at, updated_at
			  FROM classes ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, normalizeError("list classes", err)
	}
	defer rows.Close()

	classes := []*models.Class{}
	for rows.Next() {
		c := &models.Class{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			continue
		}
		classes = append(classes, c)
	}
	return classes, nil
}

func CreateClass(db *sql.DB, c *models.Class) error {
	query := `INSERT INTO classes (name, description, is_active)
			  VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, c.Name, c.Description, c.IsActive).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return normalizeError("create class", err)
}

func UpdateClass(db *sql.DB, c *models.Class) error {
	query := `UPDATE classes SET name = $1, description = $2, is_active = $3, updated_at = NOW()
			  WHERE id = $4`

	result, err := db.Exec(query, c.Name, c.Description, c.IsActive, c.ID)
	if err != nil {
		return normalizeError("update class", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteClass(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return normalizeError("delete class", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// School profile

func GetSchoolProfile(db *sql.DB) (*models.SchoolProfile, error) {
	query := `SELECT id, name, address, city, state, zip_code, phone, email,
			  website, logo, established, description, updated_at
			  FROM school_profile WHERE id = 1`

	p := &models.SchoolProfile{}
	var id int
	err := db.QueryRow(query).Scan(
		&id, &p.Name, &p.Address, &p.City, &p.State, &p.ZipCode,
		&p.Phone, &p.Email, &p.Website, &p.Logo, &p.Established,
		&p.Description, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.ID = strconv.Itoa(id)
	return p, nil
}

// SaveSchoolProfile upserts the singleton profile row against its fixed key,
// avoiding the count-then-branch race of a naive create-or-update.
func SaveSchoolProfile(db *sql.DB, p *models.SchoolProfile) error {
	query := `INSERT INTO school_profile
			  (id, name, address, city, state, zip_code, phone, email, website, logo, established, description)
			  VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  ON CONFLICT (id) DO UPDATE SET
			  name = EXCLUDED.name, address = EXCLUDED.address, city = EXCLUDED.city,
			  state = EXCLUDED.state, zip_code = EXCLUDED.zip_code, phone = EXCLUDED.phone,
			  email = EXCLUDED.email, website = EXCLUDED.website, logo = EXCLUDED.logo,
			  established = EXCLUDED.established, description = EXCLUDED.description,
			  updated_at = NOW()
			  RETURNING id, updated_at`

	var id int
	err := db.QueryRow(query,
		p.Name, p.Address, p.City, p.State, p.ZipCode, p.Phone, p.Email,
		p.Website, p.Logo, p.Established, p.Description,
	).Scan(&id, &p.UpdatedAt)
	if err != nil {
		return normalizeError("save school profile", err)
	}
	p.ID = strconv.Itoa(id)
	return nil
}
