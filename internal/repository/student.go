package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SulimanFURC/BE-HMS/internal/models"
)

const studentColumns = `
	id, name, cnic, to_char(admission_date, 'YYYY-MM-DD'), basic_rent, security_fee,
	contact_no, COALESCE(secondary_contact_no, ''), COALESCE(blood_group, ''),
	COALESCE(address, ''), COALESCE(email, ''), room_number, COALESCE(description, ''),
	COALESCE(picture, ''), COALESCE(cnic_front, ''), COALESCE(cnic_back, ''),
	created_at, updated_at`

func scanStudent(row interface{ Scan(...any) error }) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.Name, &s.CNIC, &s.AdmissionDate, &s.BasicRent, &s.SecurityFee,
		&s.ContactNo, &s.SecondaryContactNo, &s.BloodGroup,
		&s.Address, &s.Email, &s.RoomNumber, &s.Description,
		&s.Picture, &s.CNICFront, &s.CNICBack,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateStudent inserts a new student record
func (r *Repository) CreateStudent(ctx context.Context, s *models.Student) error {
	query := `
		INSERT INTO hms.students
			(name, cnic, admission_date, basic_rent, security_fee, contact_no,
			 secondary_contact_no, blood_group, address, email, room_number,
			 description, picture, cnic_front, cnic_back, created_at, updated_at)
		VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			 CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		s.Name, s.CNIC, s.AdmissionDate, s.BasicRent, s.SecurityFee, s.ContactNo,
		s.SecondaryContactNo, s.BloodGroup, s.Address, s.Email, s.RoomNumber,
		s.Description, s.Picture, s.CNICFront, s.CNICBack).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

// FindStudentByID retrieves a student by id
func (r *Repository) FindStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM hms.students WHERE id = $1`
	s, err := scanStudent(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find student: %w", err)
	}
	return s, nil
}

// ListStudents returns a page of students ordered by id
func (r *Repository) ListStudents(ctx context.Context, limit, offset int) ([]models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM hms.students ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read students: %w", err)
	}
	return students, nil
}

// CountStudents returns the total number of students
func (r *Repository) CountStudents(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM hms.students`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return total, nil
}

// UpdateStudent overwrites a student record
func (r *Repository) UpdateStudent(ctx context.Context, s *models.Student) error {
	query := `
		UPDATE hms.students
		SET name = $1, cnic = $2, admission_date = $3::date, basic_rent = $4,
			security_fee = $5, contact_no = $6, secondary_contact_no = $7,
			blood_group = $8, address = $9, email = $10, room_number = $11,
			description = $12, picture = $13, cnic_front = $14, cnic_back = $15,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $16`
	res, err := r.db.ExecContext(ctx, query,
		s.Name, s.CNIC, s.AdmissionDate, s.BasicRent, s.SecurityFee, s.ContactNo,
		s.SecondaryContactNo, s.BloodGroup, s.Address, s.Email, s.RoomNumber,
		s.Description, s.Picture, s.CNICFront, s.CNICBack, s.ID)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteStudent removes a student record
func (r *Repository) DeleteStudent(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM hms.students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// StudentCharges returns the billing figures the rent ledger reads
func (r *Repository) StudentCharges(ctx context.Context, id int64) (*models.StudentCharges, error) {
	c := &models.StudentCharges{}
	query := `SELECT basic_rent, security_fee FROM hms.students WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.BasicRent, &c.SecurityFee)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read student charges: %w", err)
	}
	return c, nil
}

// StudentSummary returns the reduced student view used on ledger responses
func (r *Repository) StudentSummary(ctx context.Context, id int64) (*models.StudentSummary, error) {
	s := &models.StudentSummary{}
	query := `SELECT id, name, room_number FROM hms.students WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.RoomNumber)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read student summary: %w", err)
	}
	return s, nil
}

// ReminderTarget is a student whose latest ledger entry carries dues
type ReminderTarget struct {
	StudentID int64
	Name      string
	Email     string
	Dues      models.Money
}

// StudentsWithDues returns students whose most recent rent entry has a
// positive outstanding balance and who have an email on record.
func (r *Repository) StudentsWithDues(ctx context.Context) ([]ReminderTarget, error) {
	query := `
		SELECT s.id, s.name, s.email, r.dues
		FROM hms.students s
		JOIN LATERAL (
			SELECT dues FROM hms.rent
			WHERE student_id = s.id
			ORDER BY year DESC, month DESC, id DESC
			LIMIT 1
		) r ON true
		WHERE r.dues > 0 AND COALESCE(s.email, '') <> ''`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list students with dues: %w", err)
	}
	defer rows.Close()

	var targets []ReminderTarget
	for rows.Next() {
		var t ReminderTarget
		if err := rows.Scan(&t.StudentID, &t.Name, &t.Email, &t.Dues); err != nil {
			return nil, fmt.Errorf("failed to scan reminder target: %w", err)
		}
		targets = append(targets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reminder targets: %w", err)
	}
	return targets, nil
}
